// Package userstore implements auth.CredentialStore on a MongoDB collection.
//
// Documents have the shape written by the provisioning seed:
//
//	{ _id: ObjectId | string, name: string, email: string, password: <bcrypt hash> }
//
// The _id is reported as its hex form when it is an ObjectId. Lookups are by
// exact (already normalised) email and each is bounded by Config.QueryTimeout.
package userstore

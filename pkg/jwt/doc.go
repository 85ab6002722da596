// Package jwt mints and verifies the signed session token used by the
// dashboard.
//
// A Codec owns the process-wide signing secret and the token lifetime. It
// signs an Identity with HS256 and verifies it back, reporting why a token
// was rejected through sentinel errors that all wrap ErrInvalidToken:
//
//   - ErrMalformedToken: the token does not parse or lacks required claims;
//   - ErrTamperedToken: the signature does not match the secret;
//   - ErrExpiredToken: the current time is at or past the exp claim.
//
// The codec performs no I/O and holds no mutable state, so a single Codec is
// shared by the edge gate and the application session reader.
//
// # Usage
//
//	codec, err := jwt.New([]byte(secret), 7*24*time.Hour)
//	if err != nil {
//	    // handle error
//	}
//
//	token, err := codec.Mint(jwt.Identity{Subject: "42", Name: "Ann", Email: "ann@example.com"})
//
//	id, err := codec.Verify(token)
//	if errors.Is(err, jwt.ErrInvalidToken) {
//	    // treat as unauthenticated
//	}
package jwt

package userstore

import "time"

type Config struct {
	Collection   string        `env:"USERSTORE_COLLECTION" envDefault:"users" validate:"required"`
	QueryTimeout time.Duration `env:"USERSTORE_QUERY_TIMEOUT" envDefault:"5s" validate:"gt=0"`
}

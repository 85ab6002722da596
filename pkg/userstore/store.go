package userstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/dashboard/pkg/auth"
)

// Store reads user credentials from MongoDB.
type Store struct {
	coll    *mongo.Collection
	timeout time.Duration
}

var _ auth.CredentialStore = (*Store)(nil)

func New(db *mongo.Database, cfg Config) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}
	if cfg.Collection == "" {
		cfg.Collection = "users"
	}
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 5 * time.Second
	}
	return &Store{coll: db.Collection(cfg.Collection), timeout: cfg.QueryTimeout}, nil
}

type userDocument struct {
	ID       any    `bson:"_id"`
	Name     string `bson:"name"`
	Email    string `bson:"email"`
	Password string `bson:"password"`
}

// FindByEmail returns auth.ErrUserNotFound when no document matches email.
func (s *Store) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var doc userDocument
	err := s.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}},
		options.FindOne().SetProjection(bson.D{
			{Key: "_id", Value: 1},
			{Key: "name", Value: 1},
			{Key: "email", Value: 1},
			{Key: "password", Value: 1},
		}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("userstore: find user: %w", err)
	}

	return doc.user()
}

// EnsureIndexes creates the unique email index used by FindByEmail.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("userstore: create email index: %w", err)
	}
	return nil
}

func (d userDocument) user() (*auth.User, error) {
	id, err := documentID(d.ID)
	if err != nil {
		return nil, err
	}
	return &auth.User{
		ID:           id,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
	}, nil
}

func documentID(v any) (string, error) {
	switch id := v.(type) {
	case bson.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedID, v)
	}
}

package auth

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCredentialStore is a mock implementation of CredentialStore.
type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

package account_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/dashboard/pkg/jwt"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Login(ctx context.Context, email, password string) (jwt.Identity, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(jwt.Identity), args.Error(1)
}

type recordingObserver struct {
	mu      sync.Mutex
	logins  []string
	logouts int
}

func (o *recordingObserver) ObserveLogin(result string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.logins = append(o.logins, result)
}

func (o *recordingObserver) ObserveLogout() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.logouts++
}

package environment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/dashboard/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"production", environment.Production},
		{"prod", environment.Production},
		{" PROD ", environment.Production},
		{"staging", environment.Staging},
		{"stage", environment.Staging},
		{"development", environment.Development},
		{"dev", environment.Development},
		{"", environment.Development},
		{"Preview", environment.Environment("preview")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, environment.Parse(tt.in))
		})
	}
}

func TestIsProduction(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.IsProduction())
	assert.True(t, environment.Environment("prod").IsProduction())
	assert.False(t, environment.Staging.IsProduction())
	assert.False(t, environment.IsProduction(context.Background()))
	assert.True(t, environment.IsProduction(environment.WithContext(context.Background(), environment.Production)))
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, environment.Environment(""), environment.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Equal(t, environment.Environment(""), environment.FromContext(nil))

	ctx := environment.WithContext(context.Background(), environment.Staging)
	assert.Equal(t, environment.Staging, environment.FromContext(ctx))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got environment.Environment
	h := environment.Middleware(environment.Production)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, environment.Production, got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := environment.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(environment.WithContext(context.Background(), environment.Production))
	assert.True(t, ok)
	assert.Equal(t, "env", attr.Key)
	assert.Equal(t, "production", attr.Value.String())
}

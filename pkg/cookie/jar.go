package cookie

import (
	"context"
	"net/http"
)

// Jar is a request-scoped, read-only view of the cookies sent with a request.
// When a name occurs more than once the first occurrence wins.
type Jar struct {
	values map[string]string
}

// NewJar parses the cookies of r.
func NewJar(r *http.Request) *Jar {
	cookies := r.Cookies()
	values := make(map[string]string, len(cookies))
	for _, c := range cookies {
		if _, seen := values[c.Name]; !seen {
			values[c.Name] = c.Value
		}
	}
	return &Jar{values: values}
}

// Get returns the value of the named cookie.
func (j *Jar) Get(name string) (string, bool) {
	if j == nil {
		return "", false
	}
	v, ok := j.values[name]
	return v, ok
}

type jarKey struct{}

// WithJar returns a copy of ctx carrying jar.
func WithJar(ctx context.Context, jar *Jar) context.Context {
	return context.WithValue(ctx, jarKey{}, jar)
}

// JarFromContext returns the jar installed by Middleware, if any.
func JarFromContext(ctx context.Context) (*Jar, bool) {
	jar, ok := ctx.Value(jarKey{}).(*Jar)
	return jar, ok && jar != nil
}

// Middleware parses request cookies once and installs the jar in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithJar(r.Context(), NewJar(r))))
	})
}

package cookie

import (
	"errors"
	"net/http"
	"strings"
)

// Reader returns the value of a named request cookie.
// Implementations return ErrNotFound when the cookie is absent or empty.
type Reader interface {
	Read(r *http.Request, name string) (string, error)
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(r *http.Request, name string) (string, error)

func (f ReaderFunc) Read(r *http.Request, name string) (string, error) {
	return f(r, name)
}

// JarReader reads from the jar installed by Middleware. It returns
// ErrJarUnavailable when the request context carries no jar.
type JarReader struct{}

func (JarReader) Read(r *http.Request, name string) (string, error) {
	jar, ok := JarFromContext(r.Context())
	if !ok {
		return "", ErrJarUnavailable
	}
	v, ok := jar.Get(name)
	if !ok || v == "" {
		return "", ErrNotFound
	}
	return v, nil
}

// HeaderReader scans the raw Cookie request headers.
type HeaderReader struct{}

func (HeaderReader) Read(r *http.Request, name string) (string, error) {
	v, ok := scanCookieHeader(r.Header.Values("Cookie"), name)
	if !ok || v == "" {
		return "", ErrNotFound
	}
	return v, nil
}

// FallbackReader consults Primary and falls back to Secondary only when
// Primary reports ErrJarUnavailable.
type FallbackReader struct {
	Primary   Reader
	Secondary Reader
}

// NewFallbackReader returns the jar-first, raw-header-second reader used by
// application handlers.
func NewFallbackReader() FallbackReader {
	return FallbackReader{Primary: JarReader{}, Secondary: HeaderReader{}}
}

func (f FallbackReader) Read(r *http.Request, name string) (string, error) {
	v, err := f.Primary.Read(r, name)
	if errors.Is(err, ErrJarUnavailable) {
		return f.Secondary.Read(r, name)
	}
	return v, err
}

// scanCookieHeader finds the first pair named name in the given Cookie header
// lines. Pairs are split on ';' and trimmed, the value is everything after the
// first '=' with surrounding double quotes removed. Pairs whose value net/http
// would reject are skipped so both readers see the same cookies.
func scanCookieHeader(lines []string, name string) (string, bool) {
	for _, line := range lines {
		for part := range strings.SplitSeq(line, ";") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			k, v, _ := strings.Cut(part, "=")
			if strings.TrimSpace(k) != name {
				continue
			}
			v, ok := unquoteValue(v)
			if !ok {
				continue
			}
			return v, true
		}
	}
	return "", false
}

func unquoteValue(v string) (string, bool) {
	if len(v) > 1 && v[0] == '"' && v[len(v)-1] == '"' {
		v = v[1 : len(v)-1]
	}
	for i := range len(v) {
		if !validValueByte(v[i]) {
			return "", false
		}
	}
	return v, true
}

func validValueByte(b byte) bool {
	return 0x20 <= b && b < 0x7f && b != '"' && b != ';' && b != '\\'
}

package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSONOption configures the JSON binder.
type JSONOption func(*jsonConfig)

type jsonConfig struct {
	maxSize      int64
	allowUnknown  bool
}

// WithMaxSize overrides DefaultMaxJSONSize.
func WithMaxSize(n int64) JSONOption {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// AllowUnknownFields disables strict decoding.
func AllowUnknownFields() JSONOption {
	return func(c *jsonConfig) {
		c.allowUnknown = true
	}
}

// JSON creates a binder for application/json request bodies.
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	cfg := jsonConfig{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request, v any) error {
		if err := matchMediaType(r, "application/json"); err != nil {
			return err
		}
		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, cfg.maxSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > cfg.maxSize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, cfg.maxSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		if !cfg.allowUnknown {
			decoder.DisallowUnknownFields()
		}

		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return nil
	}
}

// matchMediaType reports ErrNotApplicable unless the request media type is
// one of want. A missing Content-Type header is also not applicable.
func matchMediaType(r *http.Request, want ...string) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: %w", ErrNotApplicable, ErrMissingContentType)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %w: %s", ErrNotApplicable, ErrUnsupportedMediaType, contentType)
	}
	for _, w := range want {
		if mediaType == w {
			return nil
		}
	}
	return fmt.Errorf("%w: %w: got %s", ErrNotApplicable, ErrUnsupportedMediaType, mediaType)
}

package jwt_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dashboard/pkg/jwt"
)

var t0 = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func ann() jwt.Identity {
	return jwt.Identity{Subject: "6630f1c2", Name: "Ann", Email: "ann@example.com"}
}

// clock is a mutable time source for expiry tests.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func newCodec(t *testing.T, secret string, clk *clock) *jwt.Codec {
	t.Helper()
	codec, err := jwt.New([]byte(secret), jwt.DefaultTTL, jwt.WithClock(clk.Now))
	require.NoError(t, err)
	return codec
}

// flipSignature changes the first character of the signature segment so the
// decoded signature bytes always differ.
func flipSignature(token string) string {
	i := strings.LastIndex(token, ".") + 1
	replacement := byte('A')
	if token[i] == 'A' {
		replacement = 'B'
	}
	return token[:i] + string(replacement) + token[i+1:]
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid secret", func(t *testing.T) {
		t.Parallel()
		codec, err := jwt.New([]byte("secret"), time.Hour)
		require.NoError(t, err)
		require.NotNil(t, codec)
		assert.Equal(t, time.Hour, codec.TTL())
	})

	t.Run("empty secret", func(t *testing.T) {
		t.Parallel()
		codec, err := jwt.New(nil, time.Hour)
		require.ErrorIs(t, err, jwt.ErrMissingSecret)
		require.Nil(t, codec)
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		t.Parallel()
		codec, err := jwt.New([]byte("secret"), 0)
		require.ErrorIs(t, err, jwt.ErrInvalidTTL)
		require.Nil(t, codec)
	})

	t.Run("from config", func(t *testing.T) {
		t.Parallel()
		codec, err := jwt.NewFromConfig(jwt.Config{Secret: "secret", TTL: 2 * time.Hour})
		require.NoError(t, err)
		assert.Equal(t, 2*time.Hour, codec.TTL())
	})
}

func TestMintVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	clk := &clock{now: t0}
	codec := newCodec(t, "secret", clk)

	token, err := codec.Mint(ann())
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	got, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, ann(), got)
}

func TestMintClaims(t *testing.T) {
	t.Parallel()

	clk := &clock{now: t0}
	codec := newCodec(t, "secret", clk)

	token, err := codec.Mint(ann())
	require.NoError(t, err)

	claims := gojwt.MapClaims{}
	_, _, err = gojwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	assert.Equal(t, "6630f1c2", claims["sub"])
	assert.Equal(t, "Ann", claims["name"])
	assert.Equal(t, "ann@example.com", claims["email"])
	assert.EqualValues(t, t0.Unix(), claims["iat"])
	assert.EqualValues(t, t0.Add(jwt.DefaultTTL).Unix(), claims["exp"])
}

func TestMintMissingClaims(t *testing.T) {
	t.Parallel()

	codec := newCodec(t, "secret", &clock{now: t0})

	_, err := codec.Mint(jwt.Identity{Name: "Ann", Email: "ann@example.com"})
	require.ErrorIs(t, err, jwt.ErrMissingClaims)

	_, err = codec.Mint(jwt.Identity{Subject: "1", Name: "Ann"})
	require.ErrorIs(t, err, jwt.ErrMissingClaims)
}

// Mint at T0, verify at T0+6d and T0+8d, then flip a signature byte.
func TestSessionLifetime(t *testing.T) {
	t.Parallel()

	clk := &clock{now: t0}
	codec := newCodec(t, "secret", clk)

	token, err := codec.Mint(ann())
	require.NoError(t, err)

	clk.Set(t0.Add(6 * 24 * time.Hour))
	got, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", got.Email)

	_, err = codec.Verify(flipSignature(token))
	require.ErrorIs(t, err, jwt.ErrTamperedToken)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)

	clk.Set(t0.Add(8 * 24 * time.Hour))
	_, err = codec.Verify(token)
	require.ErrorIs(t, err, jwt.ErrExpiredToken)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestExpiryBoundary(t *testing.T) {
	t.Parallel()

	clk := &clock{now: t0}
	codec := newCodec(t, "secret", clk)
	exp := t0.Add(jwt.DefaultTTL)

	token, err := codec.Mint(ann())
	require.NoError(t, err)

	clk.Set(exp.Add(-time.Nanosecond))
	_, err = codec.Verify(token)
	require.NoError(t, err, "token must be valid strictly before exp")

	clk.Set(exp)
	_, err = codec.Verify(token)
	require.ErrorIs(t, err, jwt.ErrExpiredToken, "token must be invalid at exp")
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	clk := &clock{now: t0}
	minter := newCodec(t, "secret-a", clk)
	verifier := newCodec(t, "secret-b", clk)

	token, err := minter.Mint(ann())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwt.ErrTamperedToken)
}

func TestVerifyTamperedPayload(t *testing.T) {
	t.Parallel()

	clk := &clock{now: t0}
	codec := newCodec(t, "secret", clk)

	token, err := codec.Mint(ann())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	forged, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"sub":   "1",
		"name":  "Mallory",
		"email": "mallory@example.com",
		"iat":   t0.Unix(),
		"exp":   t0.Add(time.Hour).Unix(),
	}).SignedString([]byte("other"))
	require.NoError(t, err)
	forgedParts := strings.Split(forged, ".")

	spliced := parts[0] + "." + forgedParts[1] + "." + parts[2]
	_, err = codec.Verify(spliced)
	require.ErrorIs(t, err, jwt.ErrTamperedToken)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	codec := newCodec(t, "secret", &clock{now: t0})

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"one segment", "abc"},
		{"two segments", "abc.def"},
		{"four segments", "a.b.c.d"},
		{"undecodable header", "!!!.e30.sig"},
		{"non-json payload", "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.bm90LWpzb24.c2ln"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := codec.Verify(tt.token)
			require.ErrorIs(t, err, jwt.ErrMalformedToken)
			require.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}
}

func TestVerifyMissingRequiredClaims(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	codec := newCodec(t, string(secret), &clock{now: t0})

	tests := []struct {
		name   string
		claims gojwt.MapClaims
	}{
		{"no subject", gojwt.MapClaims{"email": "a@b.c", "iat": t0.Unix(), "exp": t0.Add(time.Hour).Unix()}},
		{"no email", gojwt.MapClaims{"sub": "1", "iat": t0.Unix(), "exp": t0.Add(time.Hour).Unix()}},
		{"no expiry", gojwt.MapClaims{"sub": "1", "email": "a@b.c", "iat": t0.Unix()}},
		{"no issued at", gojwt.MapClaims{"sub": "1", "email": "a@b.c", "exp": t0.Add(time.Hour).Unix()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, tt.claims).SignedString(secret)
			require.NoError(t, err)

			_, err = codec.Verify(token)
			require.ErrorIs(t, err, jwt.ErrMalformedToken)
		})
	}
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	codec := newCodec(t, string(secret), &clock{now: t0})
	claims := gojwt.MapClaims{"sub": "1", "email": "a@b.c", "iat": t0.Unix(), "exp": t0.Add(time.Hour).Unix()}

	t.Run("hs512", func(t *testing.T) {
		t.Parallel()
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString(secret)
		require.NoError(t, err)
		_, err = codec.Verify(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = codec.Verify(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestCodecConcurrentUse(t *testing.T) {
	t.Parallel()

	codec := newCodec(t, "secret", &clock{now: t0})

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := codec.Mint(ann())
			assert.NoError(t, err)
			_, err = codec.Verify(token)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

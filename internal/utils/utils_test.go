package utils

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	tok, err := m.Issue("user-1")
	require.NoError(t, err)

	id, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	tok, err := m.Issue("user-1")
	require.NoError(t, err)

	t.Run("empty", func(t *testing.T) {
		_, err := m.Verify("  ")
		assert.ErrorIs(t, err, ErrTokenMissing)
	})

	t.Run("other secret", func(t *testing.T) {
		_, err := NewTokenManager("other", time.Hour).Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewTokenManager("secret", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("no expiry", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{User: TokenUser{ID: "user-1"}}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = m.Verify(raw)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		claims := TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
			User:             TokenUser{ID: "user-1"},
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = m.Verify(raw)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.NoError(t, CheckPassword(hash, "secret1"))
	assert.Error(t, CheckPassword(hash, "secret2"))
}

func TestPasswordHashingPastBcryptLimit(t *testing.T) {
	long := strings.Repeat("p", 100)
	hash, err := HashPassword(long)
	require.NoError(t, err)
	assert.NoError(t, CheckPassword(hash, long))
	assert.NoError(t, CheckPassword(hash, long[:72]))
	assert.Error(t, CheckPassword(hash, long[:71]))
}

func TestGravatarURL(t *testing.T) {
	want := "https://www.gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346?s=200&r=pg&d=mm"
	assert.Equal(t, want, GravatarURL(" MyEmailAddress@example.com "))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{E(CodeInvalidArgument, "op", "bad", nil), http.StatusBadRequest},
		{E(CodeConflict, "op", "exists", nil), http.StatusBadRequest},
		{E(CodeUnauthorized, "op", "no", nil), http.StatusUnauthorized},
		{E(CodeNotFound, "op", "gone", nil), http.StatusNotFound},
		{E(CodeInternal, "op", "boom", nil), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", E(CodeNotFound, "op", "gone", nil)), http.StatusNotFound},
		{fmt.Errorf("repo: %w", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestInvalidCarriesFields(t *testing.T) {
	err := Invalid("op", FieldError{Msg: "Name is required", Param: "name"}, FieldError{Msg: "x"})
	assert.True(t, IsCode(err, CodeInvalidArgument))
	assert.Equal(t, "op: Name is required", err.Error())
}

package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/yoockh/devconnect/internal/utils"
)

type stubVerifier struct {
	got string
}

func (s *stubVerifier) VerifyToken(token string) (string, error) {
	s.got = token
	switch token {
	case "good":
		return "user-1", nil
	case "":
		return "", utils.E(utils.CodeUnauthorized, "Auth", "No token, authorization denied", nil)
	default:
		return "", errors.New("bad token")
	}
}

func newEngine(v TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", JWTAuth(v), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		value    string
		wantCode int
		wantBody string
	}{
		{"x-auth-token", TokenHeader, "good", http.StatusOK, "user-1"},
		{"bearer", "Authorization", "Bearer good", http.StatusOK, "user-1"},
		{"lowercase bearer", "Authorization", "bearer good", http.StatusOK, "user-1"},
		{"missing", "", "", http.StatusUnauthorized, `{"msg":"No token, authorization denied"}`},
		{"invalid", TokenHeader, "forged", http.StatusUnauthorized, `{"msg":"Token is not valid"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := &stubVerifier{}
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}
			w := httptest.NewRecorder()
			newEngine(v).ServeHTTP(w, req)

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantBody, w.Body.String())
		})
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})

	r := gin.New()
	r.Use(RequestLogger(l), Recovery(l))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(requestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(requestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server Error", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

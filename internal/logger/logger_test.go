package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"":         logrus.InfoLevel,
		"DEBUG":    logrus.DebugLevel,
		" warning": logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"trace":    logrus.TraceLevel,
		"verbose":  logrus.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewUsesEnvLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	l := New()
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
}

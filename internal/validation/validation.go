package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/yoockh/devconnect/internal/utils"
)

// TagName matches gin's binding tag so request types validate the same way
// in handlers and in services.
const TagName = "binding"

// Messages maps "param.tag" (or just "param") to the message shown to clients.
type Messages map[string]string

// Messenger is implemented by input types that carry their own messages.
type Messenger interface {
	Messages() Messages
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// New returns a validator configured like gin's, with our custom tags.
func New() *validator.Validate {
	v := validator.New()
	v.SetTagName(TagName)
	Register(v)
	return v
}

// Register installs json field names and the "date" tag on v.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := ParseDate(s)
		return err == nil
	})
}

// ParseDate accepts a calendar date or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FieldErrors converts validator errors into client-facing field messages.
// Errors that are not validation errors yield nil.
func FieldErrors(err error, msgs Messages) []utils.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]utils.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		param := fe.Field()
		out = append(out, utils.FieldError{
			Msg:      message(msgs, param, fe.Tag()),
			Param:    param,
			Location: "body",
		})
	}
	return out
}

func message(msgs Messages, param, tag string) string {
	if m, ok := msgs[param+"."+tag]; ok {
		return m
	}
	if m, ok := msgs[param]; ok {
		return m
	}
	return "Invalid value for " + param
}

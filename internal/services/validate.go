package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/yoockh/devconnect/internal/utils"
	"github.com/yoockh/devconnect/internal/validation"
)

// check validates in with v and returns a CodeInvalidArgument error carrying
// the input's field messages.
func check(v *validator.Validate, op string, in validation.Messenger) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	fields := validation.FieldErrors(err, in.Messages())
	if len(fields) == 0 {
		return utils.E(utils.CodeInternal, op, "validation failed", err)
	}
	return utils.Invalid(op, fields...)
}

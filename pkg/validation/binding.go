package validation

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

// Binding tags available on request structs once RegisterBindingTags has run.
const (
	TagEmailOrPhone   = "emailorphone"
	TagNationalID     = "nationalid"
	TagStrongPassword = "strongpassword"
	TagPhone          = "phone"
)

var errUnsupportedEngine = errors.New("gin validator engine is not go-playground/validator")

// RegisterBindingTags installs the field validators on gin's binding engine.
func RegisterBindingTags() error {
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		return errUnsupportedEngine
	}
	return RegisterTags(v)
}

// RegisterTags installs the field validators on v.
func RegisterTags(v *playground.Validate) error {
	tags := map[string]func(string) bool{
		TagEmailOrPhone:   IsEmailOrPhone,
		TagNationalID:     IsNationalID,
		TagStrongPassword: IsStrongPassword,
		TagPhone:          IsPhoneShapeValid,
	}
	for tag, check := range tags {
		check := check
		if err := v.RegisterValidation(tag, func(fl playground.FieldLevel) bool {
			return check(fl.Field().String())
		}); err != nil {
			return err
		}
	}
	return nil
}

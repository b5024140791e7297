package middleware

import (
	"salon-queue/internal/domain/hours"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the isodate tag to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := hours.ParseDate(fl.Field().String())
		return err == nil
	})
}

package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
)

var validatorsOnce sync.Once

// registerBindingValidators installs custom validators on gin's binding
// engine. Runs once per process.
func registerBindingValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("accountrole", func(fl validator.FieldLevel) bool {
			return domain.Role(fl.Field().String()).IsValid()
		})
	})
}

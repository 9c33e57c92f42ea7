package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"ingaa_store/internal/model"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// RegisterValidators 向 gin 的校验引擎注册自定义 tag
// order_status / payment_method / slug
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return model.IsValidOrderStatus(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case model.PaymentMethodStripe, model.PaymentMethodPayPal:
			return true
		}
		return false
	}); err != nil {
		return err
	}
	return v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
}

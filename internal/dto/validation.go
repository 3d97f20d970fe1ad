package dto

import (
	"errors"
	"math"
	"sync"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by the DTOs to gin's
// validator. It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding validator is not go-playground/validator")
			return
		}
		if err = v.RegisterValidation("currency_code", validateCurrencyCode); err != nil {
			return
		}
		err = v.RegisterValidation("finite", validateFinite)
	})
	return err
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	return len(code) <= 32 && domain.ValidateCode(domain.CurrencyCode(code)) == nil
}

// validateFinite rejects NaN and infinities, which strconv.ParseFloat accepts.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

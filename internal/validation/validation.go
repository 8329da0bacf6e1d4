// Package validation registers the domain-specific binding rules on gin's validator.
package validation

import (
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register adds the custom rules to gin's default validator engine
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

// RegisterOn adds the custom rules to v
func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("pizzasize", validatePizzaSize); err != nil {
		return err
	}
	return v.RegisterValidation("orderstatus", validateOrderStatus)
}

func validatePizzaSize(fl validator.FieldLevel) bool {
	return models.PizzaSize(fl.Field().String()).Valid()
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	return models.OrderStatus(fl.Field().String()).Valid()
}

package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest enforces the dto struct's validate tags. Failures come back
// as one 400 error listing every offending field.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	fields := make([]string, len(invalid))
	for i, fe := range invalid {
		fields[i] = fmt.Sprintf("%s is %s", fe.Field(), fe.Tag())
	}
	return fiber.NewError(fiber.StatusBadRequest, strings.Join(fields, ", "))
}

// Package validation valida los DTOs de entrada con go-playground/validator y
// traduce el primer fallo a un domain.Error de validación en español.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/tienda-api/internal/domain"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Los mensajes usan el nombre JSON del campo.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// Struct valida s según sus tags `validate`. Devuelve nil o un *domain.Error de validación.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.Validation(err.Error())
	}
	return domain.Validation(message(verrs[0]))
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es requerido", field)
	case "email":
		return fmt.Sprintf("El campo %s debe ser un email válido", field)
	case "gt":
		return fmt.Sprintf("El campo %s debe ser mayor a %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("El campo %s no puede ser menor a %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("El campo %s debe tener al menos %s caracteres", field, fe.Param())
	case "max":
		return fmt.Sprintf("El campo %s no puede superar %s caracteres", field, fe.Param())
	}
	return fmt.Sprintf("El campo %s no es válido (%s)", field, fe.Tag())
}

package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/location"
)

// validate instancia compartida del validador de structs.
// Usa el nombre del campo JSON para reportar el campo ofensivo al cliente.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Vocabulario de ubicaciones: el cliente recibe el campo ofensivo en la
	// respuesta, en vez de un rechazo genérico del caso de uso.
	_ = v.RegisterValidation("rack", func(fl validator.FieldLevel) bool {
		return location.ValidRack(fl.Field().String())
	})
	_ = v.RegisterValidation("bin", func(fl validator.FieldLevel) bool {
		return location.ValidBin(fl.Field().String())
	})
	return v
}

// validationError traduce la primera violación a un ErrorResponse con código
// VALIDATION, mensaje legible y el nombre del campo ofensivo.
func validationError(err error) dto.ErrorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: validationMessage(fe),
			Field:   fe.Field(),
		}
	}
	return dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "el campo " + fe.Field() + " es requerido"
	case "gt":
		return "el campo " + fe.Field() + " debe ser mayor que " + fe.Param()
	case "min":
		return "el campo " + fe.Field() + " debe tener al menos " + fe.Param() + " caracteres"
	case "email":
		return "el campo " + fe.Field() + " debe ser un email válido"
	case "oneof":
		return "el campo " + fe.Field() + " debe ser uno de: " + fe.Param()
	case "rack":
		return "el campo rack debe ser una letra seguida de dígitos (ej. A1)"
	case "bin":
		return "el campo bin debe ser de dos dígitos (ej. 01)"
	default:
		return "el campo " + fe.Field() + " es inválido"
	}
}

package handlers

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ValidationIssue describe una restricción violada
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type ValidationErrorResponse struct {
	Detail []ValidationIssue `json:"detail"`
}

var registerOnce sync.Once

// RegisterValidators hace que los errores del validador de gin usen el
// nombre JSON de cada campo.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
	})
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// bindingDetail arma la lista completa de campos inválidos de un binding.
// encoding/json sigue decodificando después de un error de tipo, así que el
// registro parcial se valida igual; el "required" del campo mal tipado se omite.
func bindingDetail(err error, record any) []ValidationIssue {
	issues := validationDetail(err)

	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return issues
	}

	verr := binding.Validator.ValidateStruct(record)
	if verr == nil {
		return issues
	}
	for _, issue := range validationDetail(verr) {
		if issue.Type == "required" && len(issue.Loc) > 1 && issue.Loc[1] == typeErr.Field {
			continue
		}
		issues = append(issues, issue)
	}
	return issues
}

// validationDetail convierte el error de binding en la lista de campos inválidos
func validationDetail(err error) []ValidationIssue {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		issues := make([]ValidationIssue, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			issues = append(issues, ValidationIssue{
				Loc:  []string{"body", fe.Field()},
				Msg:  ruleMessage(fe),
				Type: fe.Tag(),
			})
		}
		return issues
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []ValidationIssue{{
			Loc:  []string{"body", typeErr.Field},
			Msg:  fmt.Sprintf("must be of type %s", typeErr.Type),
			Type: "type_error",
		}}
	}

	return []ValidationIssue{{
		Loc:  []string{"body"},
		Msg:  err.Error(),
		Type: "json_invalid",
	}}
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "http_url":
		return "must be a valid http or https URL"
	case "datetime":
		return "must match format " + fe.Param()
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

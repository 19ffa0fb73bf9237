package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	faceterrors "github.com/alexisbeaulieu97/facet/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})

	return validateInst
}

// ValidateDefinition performs schema validation and then the dropdown's own cross-field checks:
// unique option values and a value that names an enabled option.
func ValidateDefinition(def *Definition) error {
	if def == nil {
		return faceterrors.NewValidationError("definition", "definition is nil", nil)
	}

	if err := validatorInstance().Struct(def); err != nil {
		return convertValidationError(err)
	}

	return def.ToProps().Validate()
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return faceterrors.NewValidationError(field, msg, err)
	}

	return faceterrors.NewValidationError("definition", err.Error(), err)
}

var fieldNames = map[string]string{
	"errormessage": "error_message",
	"maxrows":      "max_rows",
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		lowered := strings.ToLower(part)
		if mapped, ok := fieldNames[lowered]; ok {
			lowered = mapped
		}
		parts[i] = lowered
	}
	return strings.Join(parts, ".")
}

package dropdown

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	faceterrors "github.com/alexisbeaulieu97/facet/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	idPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("control_id", func(fl validator.FieldLevel) bool {
			return idPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

type catalogDocument struct {
	Options Catalog `validate:"dive"`
}

// ValidateCatalog rejects options without a value or label and duplicate values.
func ValidateCatalog(catalog Catalog) error {
	if err := validatorInstance().Struct(catalogDocument{Options: catalog}); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(catalog))
	for i, opt := range catalog {
		if first, exists := seen[opt.Value]; exists {
			return faceterrors.NewValidationError(
				fmt.Sprintf("options[%d].value", i),
				fmt.Sprintf("duplicate option value %q (first defined at options[%d])", opt.Value, first),
				nil,
			)
		}
		seen[opt.Value] = i
	}

	return nil
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

	return faceterrors.NewValidationError("dropdown", err.Error(), err)
}

// yamlishFieldName drops the root struct name and lowercases the remaining path.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

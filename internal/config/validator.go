package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	kiterrors "github.com/claykit-ui/claykit/pkg/errors"
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

// ValidateThemeFile performs schema and cross-field validation on a
// parsed theme document.
func ValidateThemeFile(tf *ThemeFile) error {
	if tf == nil {
		return kiterrors.NewValidationError("theme", "theme document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(tf); err != nil {
		return convertValidationError(err)
	}

	if err := validateScaleOrder("scales.spacing", tf.Scales.Spacing); err != nil {
		return err
	}
	if err := validateScaleOrder("scales.font_size", tf.Scales.FontSize); err != nil {
		return err
	}

	return nil
}

// validateScaleOrder rejects overrides that invert the scale. Only the
// steps actually set participate; omitted steps inherit preset values
// that are already ordered.
func validateScaleOrder(field string, steps ScaleSteps) error {
	values := []uint16{steps.XS, steps.SM, steps.MD, steps.LG, steps.XL}
	names := []string{"xs", "sm", "md", "lg", "xl"}

	prev := uint16(0)
	prevName := ""
	for i, v := range values {
		if v == 0 {
			continue
		}
		if prev != 0 && v < prev {
			msg := fmt.Sprintf("%s must not be smaller than %s", names[i], prevName)
			return kiterrors.NewValidationError(fmt.Sprintf("%s.%s", field, names[i]), msg, nil)
		}
		prev = v
		prevName = names[i]
	}

	return nil
}

// convertValidationError normalizes validator errors into kit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return kiterrors.NewValidationError(field, msg, err)
	}

	return kiterrors.NewValidationError("theme", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

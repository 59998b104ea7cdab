package utils

import (
	"context"

	"github.com/tensorcube/tensorcube-web/pkg/validation"
)

func ValidateWithContext(ctx context.Context, i interface{}) map[string]string {
	v, ok := ctx.Value(ValidatorKey).(validation.IValidator)
	if !ok {
		v = validation.InitValidator()
	}

	if errs := v.Validate(i); len(errs) > 0 {
		return errs
	}

	return nil
}

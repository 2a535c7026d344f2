package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/credalytics/deposit_analyzer/internal/apperrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateAccount checks one raw account record against the account schema.
// The first violation is returned as a *apperrors.SchemaError naming the
// conflicting key and validator.
func ValidateAccount(raw *RawAccount) error {
	return toSchemaError(validate.Struct(raw), "account")
}

// ValidateReport checks the report envelope (at least one account present).
// Per-account validation stays with ValidateAccount so one malformed account
// is reported against that account, not the whole payload.
func ValidateReport(raw *RawReport) error {
	if raw == nil || len(raw.Accounts) == 0 {
		return &apperrors.SchemaError{
			SchemaName: "report",
			Key:        "accounts",
			Validator:  "min",
			Message:    "report must contain at least one account",
		}
	}
	return nil
}

func toSchemaError(err error, schemaName string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &apperrors.SchemaError{
			SchemaName: schemaName,
			Key:        ".",
			Validator:  "struct",
			Message:    err.Error(),
		}
	}
	first := verrs[0]
	return &apperrors.SchemaError{
		SchemaName: schemaName,
		Key:        fieldKey(first),
		Validator:  first.Tag(),
		Message:    first.Error(),
	}
}

// fieldKey strips the root struct name off the namespace so the key reads
// like the payload path, e.g. "Info.Balances[0].Type".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

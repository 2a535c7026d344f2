package apperrors

import (
	"errors"
	"fmt"
)

// ErrNoValidAccount indicates that every account in the report was filtered
// out, either by account type or because it carried no posted transactions.
var ErrNoValidAccount = errors.New("no valid account found in report")

// ErrNoTransactions indicates that the accounts that survived filtering hold
// zero posted transactions between them.
var ErrNoTransactions = errors.New("no transactions found in report")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// SchemaError reports a structural problem in a raw account payload. It names
// the offending key and the validator that rejected it so callers can surface
// the failure without re-parsing the payload themselves.
type SchemaError struct {
	SchemaName string // which schema was being checked, e.g. "account"
	Key        string // the conflicting field
	Validator  string // the validator tag that failed, e.g. "required"
	Message    string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf(
		"error validating %s schema: conflicting key `%s`, conflicting validator `%s`: %s",
		e.SchemaName, e.Key, e.Validator, e.Message,
	)
}

// Unwrap lets errors.Is(err, ErrValidation) match schema errors.
func (e *SchemaError) Unwrap() error {
	return ErrValidation
}

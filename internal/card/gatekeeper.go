package card

import (
	"strings"
)

// Field names as they appear in error responses.
const (
	FieldOwner  = "Owner"
	FieldDate   = "Date"
	FieldCvv    = "Cvv"
	FieldNumber = "Number"
)

// Input is the raw, untrusted card form. A nil field was absent from the request.
type Input struct {
	Owner  *string
	Number *string
	Date   *string
	Cvv    *string
}

// FieldError is a single problem with one field.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors keeps field errors in the order they were detected.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Map groups messages by field name.
func (fe FieldErrors) Map() map[string][]string {
	out := make(map[string][]string, len(fe))
	for _, e := range fe {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

// Err returns nil when there are no field errors.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Check runs every field through its validator in the order Owner, Date, Cvv,
// Number and reports all failures.
func Check(v Checker, in Input) FieldErrors {
	fields := []struct {
		name  string
		value *string
		valid func(string) bool
	}{
		{FieldOwner, in.Owner, v.ValidateOwner},
		{FieldDate, in.Date, v.ValidateIssueDate},
		{FieldCvv, in.Cvv, v.ValidateCvc},
		{FieldNumber, in.Number, v.ValidateNumber},
	}

	var errs FieldErrors
	for _, f := range fields {
		switch {
		case f.value == nil || *f.value == "":
			errs = append(errs, FieldError{Field: f.name, Message: f.name + " is required"})
		case !f.valid(*f.value):
			errs = append(errs, FieldError{Field: f.name, Message: "Wrong " + strings.ToLower(f.name)})
		}
	}
	return errs
}

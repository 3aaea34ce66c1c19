// Package card validates the fields of a credit card form and tells which
// payment network a card number belongs to.
package card

import (
	"regexp"
	"time"

	"github.com/alovak/cardvalidation/internal/expiry"
)

var (
	// one to three words of letters in any script, single spaces between words
	ownerPattern = regexp.MustCompile(`^\p{L}+(?: \p{L}+){0,2}$`)
	cvcPattern   = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// Checker is the set of checks the request gatekeeper and the HTTP handler
// rely on. *Validator implements it.
type Checker interface {
	ValidateOwner(owner string) bool
	ValidateIssueDate(date string) bool
	ValidateCvc(cvc string) bool
	ValidateNumber(number string) bool
	Classify(number string) (Network, error)
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock replaces the clock used by ValidateIssueDate.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// Validator holds no state besides its clock and is safe for concurrent use.
type Validator struct {
	now func() time.Time
}

func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateOwner accepts up to three words made of letters only.
// Hyphens, apostrophes and periods are rejected.
func (v *Validator) ValidateOwner(owner string) bool {
	return ownerPattern.MatchString(owner)
}

// ValidateIssueDate accepts MM/YYYY, MMYYYY, MM/YY or MMYY as long as the
// month has not ended yet in UTC.
func (v *Validator) ValidateIssueDate(date string) bool {
	m, err := expiry.Parse(date)
	if err != nil {
		return false
	}
	// clock is read on every call, results may change at a month boundary
	return !expiry.IsExpired(m, v.now(), time.UTC)
}

// ValidateCvc accepts exactly 3 or 4 digits.
func (v *Validator) ValidateCvc(cvc string) bool {
	return cvcPattern.MatchString(cvc)
}

// ValidateNumber reports whether number belongs to one of the supported networks.
func (v *Validator) ValidateNumber(number string) bool {
	_, err := Classify(number)
	return err == nil
}

func (v *Validator) Classify(number string) (Network, error) {
	return Classify(number)
}

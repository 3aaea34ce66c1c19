package models

import "github.com/alovak/cardvalidation/internal/card"

// CreditCard is the request body of the validate endpoint. Every field is
// optional on the wire; missing and null values stay nil.
type CreditCard struct {
	Owner  *string `json:"owner"`
	Number *string `json:"number"`
	Date   *string `json:"date"`
	Cvv    *string `json:"cvv"`
}

func (c CreditCard) Input() card.Input {
	return card.Input{
		Owner:  c.Owner,
		Number: c.Number,
		Date:   c.Date,
		Cvv:    c.Cvv,
	}
}

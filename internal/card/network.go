package card

import (
	"errors"
	"regexp"
)

// Network is the payment network a card number belongs to.
type Network string

const (
	Visa            Network = "Visa"
	MasterCard      Network = "MasterCard"
	AmericanExpress Network = "AmericanExpress"
)

// ErrUnsupportedNetwork is returned by Classify when the number matches none of
// the supported networks.
var ErrUnsupportedNetwork = errors.New("unsupported card network")

type recognizer struct {
	network Network
	pattern *regexp.Regexp
}

// Order matters only for reporting; the prefixes do not overlap.
var recognizers = []recognizer{
	// 13 or 16 digits starting with 4
	{Visa, regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)},
	// 16 digits, 51-55 or 2221-2720
	{MasterCard, regexp.MustCompile(`^(?:5[1-5][0-9]{2}|222[1-9]|22[3-9][0-9]|2[3-6][0-9]{2}|27[01][0-9]|2720)[0-9]{12}$`)},
	// 15 digits starting with 34 or 37
	{AmericanExpress, regexp.MustCompile(`^3[47][0-9]{13}$`)},
}

// Classify returns the network of a card number made of digits only.
func Classify(number string) (Network, error) {
	for _, r := range recognizers {
		if r.pattern.MatchString(number) {
			return r.network, nil
		}
	}
	return "", ErrUnsupportedNetwork
}

func (n Network) String() string {
	return string(n)
}

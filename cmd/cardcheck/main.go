package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alovak/cardvalidation/cardvalidation/models"
	"github.com/alovak/cardvalidation/client"
	"github.com/alovak/cardvalidation/internal/card"
)

var (
	flagOwner   = flag.String("owner", "", "cardholder name")
	flagNumber  = flag.String("number", "", "card number (PAN)")
	flagDate    = flag.String("date", "", "expiry date: MM/YYYY, MMYYYY, MM/YY or MMYY")
	flagCvv     = flag.String("cvv", "", "3 or 4 digit security code")
	flagServer  = flag.String("server", "", "validation service base URL; checks locally when empty")
	flagTimeout = flag.Duration("timeout", 10*time.Second, "request timeout when -server is set")
	flagVerbose = flag.Bool("verbose", false, "print full PAN (otherwise masked)")
)

func main() {
	flag.Parse()

	creditCard := models.CreditCard{
		Owner:  flagOwner,
		Number: flagNumber,
		Date:   flagDate,
		Cvv:    flagCvv,
	}

	var (
		network card.Network
		err     error
	)
	if *flagServer == "" {
		network, err = checkLocal(creditCard)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), *flagTimeout)
		defer cancel()
		network, err = client.New(*flagServer, nil).Validate(ctx, creditCard)
	}

	printPAN := card.MaskPAN(*flagNumber)
	if *flagVerbose {
		printPAN = *flagNumber + "   (WARNING: printing full PAN)"
	}

	if err := report(os.Stdout, printPAN, network, err); err != nil {
		fail("%v", err)
	}
}

func checkLocal(creditCard models.CreditCard) (card.Network, error) {
	validator := card.NewValidator()
	if fieldErrors := card.Check(validator, creditCard.Input()); len(fieldErrors) > 0 {
		return "", fieldErrors
	}
	return validator.Classify(*creditCard.Number)
}

// report prints the outcome of a check. The returned error is non-nil when
// the card was rejected or could not be checked.
func report(w io.Writer, pan string, network card.Network, err error) error {
	fmt.Fprintf(w, "PAN: %s\n", pan)

	if err == nil {
		fmt.Fprintf(w, "NETWORK: %s\n", network)
		return nil
	}

	var fieldErrors card.FieldErrors
	var apiErr *client.Error
	switch {
	case errors.As(err, &fieldErrors):
		for _, fe := range fieldErrors {
			fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Message)
		}
	case errors.As(err, &apiErr) && len(apiErr.Fields) > 0:
		for _, field := range []string{card.FieldOwner, card.FieldDate, card.FieldCvv, card.FieldNumber} {
			for _, msg := range apiErr.Fields[field] {
				fmt.Fprintf(w, "  %s: %s\n", field, msg)
			}
		}
	default:
		return err
	}

	return errors.New("card rejected")
}

func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

package cardvalidation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alovak/cardvalidation/cardvalidation/models"
	"github.com/alovak/cardvalidation/internal/card"
	"github.com/alovak/cardvalidation/internal/errs"
	"github.com/alovak/cardvalidation/internal/middleware"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// ValidatePath is the route of the credit card validation endpoint.
const ValidatePath = "/cardvalidation/card/credit/validate"

// API is a HTTP API for the card validation service
type API struct {
	validator card.Checker
}

func NewAPI(validator card.Checker) *API {
	return &API{
		validator: validator,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/cardvalidation", func(r chi.Router) {
		r.Post("/card/credit/validate", a.validateCreditCard)
	})
}

// validateCreditCard checks every field of the card and answers with the
// network of the number.
func (a *API) validateCreditCard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	creditCard := models.CreditCard{}
	err := json.NewDecoder(r.Body).Decode(&creditCard)
	if err != nil {
		errs.Write(w, errs.NewBadRequestError("decoding request body: "+err.Error()))
		return
	}

	if fieldErrors := card.Check(a.validator, creditCard.Input()); len(fieldErrors) > 0 {
		logger.Info("credit card rejected", slog.String("reason", fieldErrors.Error()))
		errs.Write(w, errs.NewValidationError(fieldErrors.Map()))
		return
	}

	number := *creditCard.Number
	network, err := a.validator.Classify(number)
	if err != nil {
		// the gatekeeper only lets known networks through, so this is a
		// mismatch between ValidateNumber and Classify
		logger.Error("classifying card number", slog.String("pan", card.MaskPAN(number)), slog.Any("err", err))
		if errors.Is(err, card.ErrUnsupportedNetwork) {
			errs.Write(w, errs.NewUnprocessableEntityError("UNSUPPORTED_NETWORK", err.Error()))
		} else {
			errs.Write(w, err)
		}
		return
	}

	logger.Info("credit card validated",
		slog.String("pan", card.MaskPAN(number)),
		slog.String("network", network.String()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(network)
}

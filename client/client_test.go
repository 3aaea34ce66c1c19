package client_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alovak/cardvalidation/cardvalidation"
	"github.com/alovak/cardvalidation/cardvalidation/models"
	"github.com/alovak/cardvalidation/client"
	"github.com/alovak/cardvalidation/internal/card"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func str(s string) *string { return &s }

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(cardvalidation.NewApp(logger, nil).Router())
	t.Cleanup(srv.Close)
	return srv
}

func TestValidate(t *testing.T) {
	srv := newServer(t)
	c := client.New(srv.URL+"/", nil)

	network, err := c.Validate(context.Background(), models.CreditCard{
		Owner:  str("John Doe"),
		Number: str("378282246310005"),
		Date:   str(time.Now().UTC().Format("01/2006")),
		Cvv:    str("1234"),
	})
	require.NoError(t, err)
	require.Equal(t, card.AmericanExpress, network)
}

func TestValidate_FieldErrors(t *testing.T) {
	srv := newServer(t)
	c := client.New(srv.URL, srv.Client())

	_, err := c.Validate(context.Background(), models.CreditCard{
		Owner:  str("John Doe"),
		Number: str("4111111111111112222"),
		Date:   str("01/2020"),
	})

	var apiErr *client.Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "VALIDATION_FAILED", apiErr.Code)
	require.Equal(t, map[string][]string{
		"Date":   {"Wrong date"},
		"Cvv":    {"Cvv is required"},
		"Number": {"Wrong number"},
	}, apiErr.Fields)
	require.Equal(t, "status=400 code=VALIDATION_FAILED: Cvv is required; Wrong date; Wrong number", apiErr.Error())
}

func TestValidate_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.New(srv.URL, nil).Validate(context.Background(), models.CreditCard{})

	var apiErr *client.Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "upstream unavailable", apiErr.Message)
	require.Empty(t, apiErr.Fields)
}

package errs_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alovak/cardvalidation/internal/errs"
	"github.com/stretchr/testify/require"
)

func TestWrite_ValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	errs.Write(w, errs.NewValidationError(map[string][]string{"Owner": {"Owner is required"}}))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "VALIDATION_FAILED", body.Code)
	require.Equal(t, []string{"Owner is required"}, body.Errors["Owner"])
}

func TestWrite_WrappedError(t *testing.T) {
	w := httptest.NewRecorder()
	errs.Write(w, fmt.Errorf("decoding: %w", errs.NewBadRequestError("bad json")))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), `"code":"BAD_REQUEST"`)
	require.NotContains(t, w.Body.String(), `"errors"`)
}

func TestWrite_UnknownError(t *testing.T) {
	w := httptest.NewRecorder()
	errs.Write(w, errors.New("db exploded"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "db exploded")
	require.True(t, errors.Is(errs.NewInternalServerError(), &errs.HTTPError{}))
}

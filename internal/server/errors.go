package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/job-recommender/internal/ingestion"
)

// HTTPStatus maps an error from the ingestion/extraction path to the
// response code it should produce. Unknown errors are internal.
func HTTPStatus(err error) int {
	var unsupported *ingestion.ErrUnsupportedFormat
	if errors.As(err, &unsupported) {
		return http.StatusBadRequest
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

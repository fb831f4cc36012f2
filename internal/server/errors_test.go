package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-recommender/internal/ingestion"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "unsupported format",
			err:  &ingestion.ErrUnsupportedFormat{Extension: ".docx"},
			want: http.StatusBadRequest,
		},
		{
			name: "wrapped unsupported format",
			err:  fmt.Errorf("extract: %w", &ingestion.ErrUnsupportedFormat{Extension: ".pdf"}),
			want: http.StatusBadRequest,
		},
		{
			name: "body too large",
			err:  &http.MaxBytesError{Limit: 1024},
			want: http.StatusRequestEntityTooLarge,
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

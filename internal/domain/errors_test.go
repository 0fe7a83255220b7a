package domain

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kinds = []error{ErrNotFound, ErrValidation, ErrConfiguration, ErrStore, ErrUnavailable}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		msg   string
		kinds []error
	}{
		{
			name:  "not found with id",
			err:   NewNotFoundError("entity", "1474-1784"),
			msg:   `entity with id "1474-1784" not found`,
			kinds: []error{ErrNotFound},
		},
		{
			name:  "not found without id",
			err:   NewNotFoundError("journal", ""),
			msg:   "journal not found",
			kinds: []error{ErrNotFound},
		},
		{
			name:  "validation with field",
			err:   NewValidationErrorWithValue("dbPathOrUrl", "must not be empty", "  "),
			msg:   "validation failed for dbPathOrUrl: must not be empty",
			kinds: []error{ErrValidation},
		},
		{
			name:  "validation without field",
			err:   NewValidationError("", "bad input"),
			msg:   "validation failed: bad input",
			kinds: []error{ErrValidation},
		},
		{
			name:  "configuration with reason",
			err:   NewConfigurationError("relational", "database path is not set"),
			msg:   "relational store not configured: database path is not set",
			kinds: []error{ErrConfiguration},
		},
		{
			name:  "configuration without reason",
			err:   NewConfigurationError("graph", ""),
			msg:   "graph store not configured",
			kinds: []error{ErrConfiguration},
		},
		{
			name:  "store with cause",
			err:   NewStoreError("relational", "get all categories", fmt.Errorf("reading rows: %w", io.ErrUnexpectedEOF)),
			msg:   "relational store: get all categories failed: reading rows: unexpected EOF",
			kinds: []error{ErrStore},
		},
		{
			name:  "store without cause",
			err:   NewStoreError("graph", "update", nil),
			msg:   "graph store: update failed",
			kinds: []error{ErrStore},
		},
		{
			name:  "store over unavailable endpoint",
			err:   NewStoreError("graph", "query", NewUnavailableError("sparql", "circuit breaker open")),
			msg:   `graph store: query failed: service "sparql" unavailable: circuit breaker open`,
			kinds: []error{ErrStore, ErrUnavailable},
		},
		{
			name:  "unavailable without reason",
			err:   NewUnavailableError("sparql", ""),
			msg:   `service "sparql" unavailable`,
			kinds: []error{ErrUnavailable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.msg, tt.err.Error())

			for _, kind := range kinds {
				want := false
				for _, k := range tt.kinds {
					want = want || k == kind
				}

				assert.Equal(t, want, errors.Is(tt.err, kind), "errors.Is(%v)", kind)
			}
		})
	}
}

func TestErrors_As(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	wrapped := fmt.Errorf("loading: %w", NewStoreError("relational", "get all areas", cause))

	var storeErr *StoreError
	require.ErrorAs(t, wrapped, &storeErr)
	assert.Equal(t, "relational", storeErr.Store)
	assert.Equal(t, "get all areas", storeErr.Operation)
	assert.ErrorIs(t, wrapped, cause)

	var validation *ValidationError
	require.ErrorAs(t, NewValidationErrorWithValue("issn", "bad checksum", "1234-5678"), &validation)
	assert.Equal(t, "1234-5678", validation.Value)

	var notFound *NotFoundError
	require.ErrorAs(t, NewNotFoundError("entity", "0000-0000"), &notFound)
	assert.Equal(t, "0000-0000", notFound.ID)
}

func TestIsHelpers(t *testing.T) {
	helpers := map[error]func(error) bool{
		ErrNotFound:      IsNotFound,
		ErrValidation:    IsValidation,
		ErrConfiguration: IsConfiguration,
		ErrStore:         IsStore,
		ErrUnavailable:   IsUnavailable,
	}

	for kind, is := range helpers {
		assert.True(t, is(fmt.Errorf("outer: %w", kind)), "%v wrapped", kind)
		assert.False(t, is(nil), "%v nil", kind)

		for _, other := range kinds {
			if other != kind {
				assert.False(t, is(other), "%v vs %v", kind, other)
			}
		}
	}
}

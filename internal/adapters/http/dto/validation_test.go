package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/journal-catalog/internal/domain"
)

func TestBindQuery(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		query      func() any
		wantErr    error
		wantFields map[string]string
	}{
		{
			name:   "valid areas query",
			target: "/journals/in-areas?area=Medicine&area=Philosophy&license=CC+BY",
			query:  func() any { return &JournalsInAreasQuery{} },
		},
		{
			name:    "undecodable boolean",
			target:  "/journals?seal=perhaps",
			query:   func() any { return &JournalQuery{} },
			wantErr: ErrBinding,
		},
		{
			name:       "limit above maximum",
			target:     "/areas?limit=500",
			query:      func() any { return &AreasByCategoryQuery{} },
			wantErr:    ErrValidation,
			wantFields: map[string]string{"limit": "must be at most 100"},
		},
		{
			name:       "blank repeated value",
			target:     "/categories/by-area?area=Medicine&area=+",
			query:      func() any { return &CategoriesByAreaQuery{} },
			wantErr:    ErrValidation,
			wantFields: map[string]string{"area": "must not be blank"},
		},
		{
			name:       "blank quartile on diamond query",
			target:     "/journals/diamond?quartile=Q1&quartile=+",
			query:      func() any { return &DiamondJournalsQuery{} },
			wantErr:    ErrValidation,
			wantFields: map[string]string{"quartile": "must not be blank"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(tt.target)
			q := tt.query()

			err := BindQuery(c, q)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantFields, FieldErrors(err))
		})
	}
}

func TestBindQuery_CrossFieldRules(t *testing.T) {
	c, _ := newTestContext("/journals?title=drug&publisher=Nature")

	err := BindQuery(c, &JournalQuery{})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Nil(t, FieldErrors(err))
}

func TestBindQuery_RepeatedValues(t *testing.T) {
	c, _ := newTestContext("/journals/in-categories?category=Drug+Discovery&category=Philosophy&quartile=Q1")

	var q JournalsInCategoriesQuery
	require.NoError(t, BindQuery(c, &q))

	assert.Equal(t, []string{"Drug Discovery", "Philosophy"}, q.Category)
	assert.Equal(t, []string{"Q1"}, q.Quartile)
}

func TestFieldErrors_OtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(nil))
	assert.Nil(t, FieldErrors(errors.New("boom")))
}

func TestValidate_UnknownTagMessage(t *testing.T) {
	type probe struct {
		Area string `json:"area" validate:"alpha"`
	}

	err := Validate(probe{Area: "Arts and Humanities"})

	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, map[string]string{"area": "failed alpha check"}, FieldErrors(err))
}

func TestValidate_FieldNameFallback(t *testing.T) {
	type probe struct {
		Quartile string `validate:"oneof=Q1 Q2 Q3 Q4"`
	}

	err := Validate(probe{Quartile: "Q5"})

	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, map[string]string{"Quartile": "must be one of: Q1 Q2 Q3 Q4"}, FieldErrors(err))
}

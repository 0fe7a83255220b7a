package dto

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/journal-catalog/internal/domain"
)

func boolPtr(b bool) *bool { return &b }

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedField  string
	}{
		{
			name:           "nil error returns 200",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not found returns 404",
			err:            domain.NewNotFoundError("entity", "0000-0000"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   ErrorCodeNotFound,
		},
		{
			name:           "validation returns 400 with field details",
			err:            domain.NewValidationError("quartile", "unknown quartile"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCodeValidation,
			expectedField:  "quartile",
		},
		{
			name:           "configuration returns 503",
			err:            domain.NewConfigurationError("graph", "endpoint URL is not set"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   ErrorCodeUnavailable,
		},
		{
			name:           "store returns 502",
			err:            domain.NewStoreError("relational", "get all categories", errors.New("disk I/O error")),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   ErrorCodeStore,
		},
		{
			name: "unreachable store returns 503",
			err: domain.NewStoreError("graph", "get all journals",
				domain.NewUnavailableError("http://localhost:3030", "circuit breaker open")),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   ErrorCodeUnavailable,
		},
		{
			name:           "deadline returns 504",
			err:            fmt.Errorf("query: %w", context.DeadlineExceeded),
			expectedStatus: http.StatusGatewayTimeout,
			expectedCode:   ErrorCodeTimeout,
		},
		{
			name:           "unknown error returns 500",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.expectedStatus, status)

			if tt.err == nil {
				assert.Nil(t, resp)
				return
			}

			require.NotNil(t, resp)
			assert.Equal(t, tt.expectedCode, resp.Error.Code)

			if tt.expectedField != "" {
				assert.Contains(t, resp.Error.Details, tt.expectedField)
			}
		})
	}
}

func TestMapDomainError_StoreCauseNotExposed(t *testing.T) {
	err := domain.NewStoreError("relational", "get by id", errors.New("near \"SELEC\": syntax error"))

	_, resp := MapDomainError(err)

	require.NotNil(t, resp)
	assert.Equal(t, "relational store: get by id failed", resp.Error.Message)
	assert.NotContains(t, resp.Error.Message, "syntax")
}

func TestRespondWithCode(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Request-ID", "req-1")

	RespondWithCode(c, ErrorCodeBadRequest, "invalid cursor")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrorCodeBadRequest, resp.Error.Code)
	assert.Equal(t, "invalid cursor", resp.Error.Message)
	assert.Equal(t, "req-1", resp.TraceID)
}

func TestToJournalResponse(t *testing.T) {
	j := domain.Journal{
		IDs:       []string{"1474-1784", "1474-1776"},
		Title:     "Nature Reviews Drug Discovery",
		Publisher: "Nature Portfolio",
		License:   "CC BY",
		APC:       true,
	}

	resp := ToJournalResponse(j)

	assert.Equal(t, "1474-1784", resp.ID)
	assert.Equal(t, []string{"1474-1784", "1474-1776"}, resp.IDs)
	assert.Equal(t, "Nature Reviews Drug Discovery", resp.Title)
	assert.True(t, resp.APC)
	assert.NotNil(t, resp.Languages)
	assert.NotNil(t, resp.Categories)
	assert.NotNil(t, resp.Areas)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"areas":[]`)
}

func TestToEntityResponse(t *testing.T) {
	tests := []struct {
		name   string
		entity domain.Entity
		check  func(t *testing.T, resp EntityResponse)
	}{
		{
			name:   "journal",
			entity: domain.JournalEntity(domain.Journal{IDs: []string{"2083-3520"}}),
			check: func(t *testing.T, resp EntityResponse) {
				require.NotNil(t, resp.Journal)
				assert.Equal(t, "2083-3520", resp.Journal.ID)
				assert.Nil(t, resp.Category)
				assert.Nil(t, resp.Area)
			},
		},
		{
			name:   "category",
			entity: domain.CategoryEntity(domain.Category{ID: "Drug Discovery", Quartile: "Q1"}),
			check: func(t *testing.T, resp EntityResponse) {
				require.NotNil(t, resp.Category)
				assert.Equal(t, "Q1", resp.Category.Quartile)
				assert.Nil(t, resp.Journal)
			},
		},
		{
			name:   "area",
			entity: domain.AreaEntity(domain.Area{ID: "Medicine"}),
			check: func(t *testing.T, resp EntityResponse) {
				require.NotNil(t, resp.Area)
				assert.Equal(t, "Medicine", resp.Area.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ToEntityResponse(tt.entity)
			assert.Equal(t, tt.entity.Kind, resp.Kind)
			tt.check(t, resp)
		})
	}
}

func TestJournalQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   JournalQuery
		wantErr bool
	}{
		{name: "no filter", query: JournalQuery{}},
		{name: "title only", query: JournalQuery{Title: "scien"}},
		{name: "apc false only", query: JournalQuery{APC: boolPtr(false)}},
		{name: "license list only", query: JournalQuery{License: []string{"CC BY", "CC BY-SA"}}},
		{name: "title and seal", query: JournalQuery{Title: "scien", Seal: boolPtr(true)}, wantErr: true},
		{name: "publisher and license", query: JournalQuery{Publisher: "Nature", License: []string{"CC BY"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.True(t, domain.IsValidation(err))
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestJournalQuery_BindsOptionalBooleans(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/journals?apc=false&limit=5", nil)

	var q JournalQuery
	require.NoError(t, BindQuery(c, &q))

	require.NotNil(t, q.APC)
	assert.False(t, *q.APC)
	assert.Nil(t, q.Seal)
	assert.Equal(t, 5, q.GetLimit())
}

func TestMapSlice(t *testing.T) {
	areas := []domain.Area{{ID: "Medicine"}, {ID: "Philosophy"}}

	got := MapSlice(areas, ToAreaResponse)

	assert.Equal(t, []AreaResponse{{ID: "Medicine"}, {ID: "Philosophy"}}, got)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	first, err := Paginate(items, PaginationRequest{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, first.Items)
	assert.True(t, first.HasMore)
	require.NotEmpty(t, first.NextCursor)

	second, err := Paginate(items, PaginationRequest{Limit: 2, Cursor: first.NextCursor})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, second.Items)
	assert.True(t, second.HasMore)

	last, err := Paginate(items, PaginationRequest{Limit: 2, Cursor: second.NextCursor})
	require.NoError(t, err)
	assert.Equal(t, []int{5}, last.Items)
	assert.False(t, last.HasMore)
	assert.Empty(t, last.NextCursor)
}

func TestPaginate_DefaultLimitAndEmpty(t *testing.T) {
	page, err := Paginate([]string{}, PaginationRequest{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.False(t, page.HasMore)
}

func TestPaginate_RejectsForeignCursors(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{name: "garbage", cursor: "!!!"},
		{name: "not json", cursor: base64.RawURLEncoding.EncodeToString([]byte("nope"))},
		{name: "other kind", cursor: EncodeCursor(Cursor{Kind: "created_at", Offset: 2})},
		{name: "offset not a number", cursor: base64.RawURLEncoding.EncodeToString([]byte(`{"k":"offset","o":"two"}`))},
		{name: "past the end", cursor: EncodeCursor(Cursor{Kind: cursorKind, Offset: 9})},
		{name: "negative", cursor: EncodeCursor(Cursor{Kind: cursorKind, Offset: -1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Paginate([]int{1, 2, 3}, PaginationRequest{Cursor: tt.cursor})
			assert.ErrorIs(t, err, ErrInvalidCursor)
		})
	}
}

func TestPaginate_CursorAtEndIsEmptyPage(t *testing.T) {
	page, err := Paginate([]int{1, 2}, PaginationRequest{Cursor: EncodeCursor(Cursor{Kind: cursorKind, Offset: 2})})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
}

func TestPaginationRequest_GetLimit(t *testing.T) {
	tests := map[int]int{0: DefaultLimit, -3: DefaultLimit, 1: 1, 50: 50, MaxLimit: MaxLimit, 500: MaxLimit}

	for limit, want := range tests {
		p := PaginationRequest{Limit: limit}
		assert.Equal(t, want, p.GetLimit(), "limit %d", limit)
	}
}

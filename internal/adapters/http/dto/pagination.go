package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// Page size bounds.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ErrInvalidCursor is returned for a cursor this API did not issue.
var ErrInvalidCursor = errors.New("invalid cursor")

// cursorKind tags cursors so a cursor from another API is rejected rather
// than misread.
const cursorKind = "offset"

// PaginationRequest is embedded in every list query.
type PaginationRequest struct {
	// Cursor is the NextCursor of the previous page.
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns Limit clamped to [1, MaxLimit], or DefaultLimit when unset.
func (p *PaginationRequest) GetLimit() int {
	switch {
	case p.Limit <= 0:
		return DefaultLimit
	case p.Limit > MaxLimit:
		return MaxLimit
	default:
		return p.Limit
	}
}

// PaginatedResponse is one page of a list result.
type PaginatedResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// Cursor is the decoded form of NextCursor.
type Cursor struct {
	Kind   string `json:"k"`
	Offset int    `json:"o"`
}

// EncodeCursor returns the opaque form of c.
func EncodeCursor(c Cursor) string {
	raw, err := json.Marshal(c)
	if err != nil {
		return ""
	}

	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor parses a cursor issued by EncodeCursor.
func DecodeCursor(encoded string) (Cursor, error) {
	var c Cursor

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return c, ErrInvalidCursor
	}

	if err := json.Unmarshal(raw, &c); err != nil {
		return c, ErrInvalidCursor
	}

	return c, nil
}

// Paginate returns the page of items described by req. Catalog results are
// computed in full on every request, so the cursor is an offset into them.
// A cursor of another kind, or one past the end, is rejected.
func Paginate[T any](items []T, req PaginationRequest) (*PaginatedResponse[T], error) {
	offset := 0

	if req.Cursor != "" {
		c, err := DecodeCursor(req.Cursor)
		if err != nil {
			return nil, err
		}

		if c.Kind != cursorKind || c.Offset < 0 || c.Offset > len(items) {
			return nil, ErrInvalidCursor
		}

		offset = c.Offset
	}

	end := min(offset+req.GetLimit(), len(items))

	resp := &PaginatedResponse[T]{
		Items:   make([]T, end-offset),
		HasMore: end < len(items),
	}
	copy(resp.Items, items[offset:end])

	if resp.HasMore {
		resp.NextCursor = EncodeCursor(Cursor{Kind: cursorKind, Offset: end})
	}

	return resp, nil
}

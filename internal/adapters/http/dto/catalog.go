package dto

import (
	"github.com/jsamuelsen/journal-catalog/internal/domain"
)

// JournalResponse is the HTTP representation of a journal.
type JournalResponse struct {
	ID         string   `json:"id"`
	IDs        []string `json:"ids"`
	Title      string   `json:"title"`
	Languages  []string `json:"languages"`
	Publisher  string   `json:"publisher"`
	Seal       bool     `json:"seal"`
	License    string   `json:"license"`
	APC        bool     `json:"apc"`
	Categories []string `json:"categories"`
	Areas      []string `json:"areas"`
}

// CategoryResponse is the HTTP representation of a category assignment.
type CategoryResponse struct {
	ID       string `json:"id"`
	Quartile string `json:"quartile,omitempty"`
}

// AreaResponse is the HTTP representation of an area.
type AreaResponse struct {
	ID string `json:"id"`
}

// EntityResponse wraps whichever variant an id lookup resolved to.
type EntityResponse struct {
	Kind     domain.Kind       `json:"kind"`
	Journal  *JournalResponse  `json:"journal,omitempty"`
	Category *CategoryResponse `json:"category,omitempty"`
	Area     *AreaResponse     `json:"area,omitempty"`
}

// JournalQuery holds the filters of GET /journals. At most one may be set.
type JournalQuery struct {
	PaginationRequest

	Title     string   `form:"title"`
	Publisher string   `form:"publisher"`
	License   []string `form:"license"`
	APC       *bool    `form:"apc"`
	Seal      *bool    `form:"seal"`
}

// Validate implements Validatable.
func (q *JournalQuery) Validate() error {
	set := 0

	for _, present := range []bool{q.Title != "", q.Publisher != "", len(q.License) > 0, q.APC != nil, q.Seal != nil} {
		if present {
			set++
		}
	}

	if set > 1 {
		return domain.NewValidationError("filter", "only one of title, publisher, license, apc and seal may be given")
	}

	return nil
}

// CategoryQuery holds the filters of GET /categories.
type CategoryQuery struct {
	PaginationRequest

	Quartile []string `form:"quartile" validate:"dive,notblank"`
}

// CategoriesByAreaQuery holds the filters of GET /categories/by-area.
type CategoriesByAreaQuery struct {
	PaginationRequest

	Area []string `form:"area" validate:"dive,notblank"`
}

// AreasByCategoryQuery holds the filters of GET /areas/by-category.
type AreasByCategoryQuery struct {
	PaginationRequest

	Category []string `form:"category" validate:"dive,notblank"`
}

// JournalsInCategoriesQuery holds the filters of GET /journals/in-categories.
type JournalsInCategoriesQuery struct {
	PaginationRequest

	Category []string `form:"category" validate:"dive,notblank"`
	Quartile []string `form:"quartile" validate:"dive,notblank"`
}

// JournalsInAreasQuery holds the filters of GET /journals/in-areas.
type JournalsInAreasQuery struct {
	PaginationRequest

	Area    []string `form:"area" validate:"dive,notblank"`
	License []string `form:"license" validate:"dive,notblank"`
}

// DiamondJournalsQuery holds the filters of GET /journals/diamond.
type DiamondJournalsQuery struct {
	PaginationRequest

	Area     []string `form:"area" validate:"dive,notblank"`
	Category []string `form:"category" validate:"dive,notblank"`
	Quartile []string `form:"quartile" validate:"dive,notblank"`
}

// ToJournalResponse converts a domain journal. Nil slices become empty
// arrays so clients never see null.
func ToJournalResponse(j domain.Journal) JournalResponse {
	return JournalResponse{
		ID:         j.ID(),
		IDs:        orEmpty(j.GetIDs()),
		Title:      j.Title,
		Languages:  orEmpty(j.Languages),
		Publisher:  j.Publisher,
		Seal:       j.Seal,
		License:    j.License,
		APC:        j.APC,
		Categories: orEmpty(j.Categories),
		Areas:      orEmpty(j.Areas),
	}
}

// ToCategoryResponse converts a domain category.
func ToCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Quartile: c.Quartile}
}

// ToAreaResponse converts a domain area.
func ToAreaResponse(a domain.Area) AreaResponse {
	return AreaResponse{ID: a.ID}
}

// ToEntityResponse converts a found entity.
func ToEntityResponse(e domain.Entity) EntityResponse {
	resp := EntityResponse{Kind: e.Kind}

	switch {
	case e.Journal != nil:
		j := ToJournalResponse(*e.Journal)
		resp.Journal = &j
	case e.Category != nil:
		c := ToCategoryResponse(*e.Category)
		resp.Category = &c
	case e.Area != nil:
		a := ToAreaResponse(*e.Area)
		resp.Area = &a
	}

	return resp
}

// MapSlice converts every element of in with fn.
func MapSlice[S, T any](in []S, fn func(S) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}

	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

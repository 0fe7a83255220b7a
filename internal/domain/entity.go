// Package domain contains the catalog's value types and error taxonomy.
package domain

import "slices"

// Kind identifies which variant an Entity holds.
type Kind string

const (
	KindJournal  Kind = "journal"
	KindCategory Kind = "category"
	KindArea     Kind = "area"
)

// Area is a broad subject classification such as "Medicine".
type Area struct {
	ID string
}

// Category is a subject category. The same name may appear several times
// with different quartiles; the (ID, Quartile) pair is its identity.
// Quartile is empty when the assignment carries none.
type Category struct {
	ID       string
	Quartile string
}

// CategoryKey is the identity of a Category.
type CategoryKey struct {
	ID       string
	Quartile string
}

// Key returns the (name, quartile) identity used for de-duplication.
func (c Category) Key() CategoryKey {
	return CategoryKey{ID: c.ID, Quartile: c.Quartile}
}

// HasQuartile reports whether a quartile is assigned.
func (c Category) HasQuartile() bool {
	return c.Quartile != ""
}

// Journal is a periodical identified by one or more ISSN/EISSN values.
type Journal struct {
	// IDs holds the external identifiers in source order. The first one is
	// the primary id.
	IDs []string

	Title     string
	Languages []string
	Publisher string

	// Seal reports DOAJ accreditation.
	Seal    bool
	License string

	// APC reports whether an article processing charge applies. A journal
	// without one is a diamond journal.
	APC bool

	// Categories and Areas hold the ids the journal is assigned to.
	Categories []string
	Areas      []string
}

// ID returns the primary identifier, or "" for a journal without identifiers.
func (j Journal) ID() string {
	if len(j.IDs) == 0 {
		return ""
	}

	return j.IDs[0]
}

// GetIDs returns a copy of all identifiers.
func (j Journal) GetIDs() []string {
	return slices.Clone(j.IDs)
}

// HasID reports whether id is one of the journal's identifiers.
func (j Journal) HasID(id string) bool {
	return slices.Contains(j.IDs, id)
}

// IsDiamond reports whether the journal charges no APC.
func (j Journal) IsDiamond() bool {
	return !j.APC
}

// Entity is a tagged variant over Journal, Category and Area.
// The zero Entity is the not-found result of an id lookup.
type Entity struct {
	Kind     Kind
	Journal  *Journal
	Category *Category
	Area     *Area
}

// JournalEntity wraps a journal.
func JournalEntity(j Journal) Entity {
	return Entity{Kind: KindJournal, Journal: &j}
}

// CategoryEntity wraps a category.
func CategoryEntity(c Category) Entity {
	return Entity{Kind: KindCategory, Category: &c}
}

// AreaEntity wraps an area.
func AreaEntity(a Area) Entity {
	return Entity{Kind: KindArea, Area: &a}
}

// Found reports whether the entity holds a value.
func (e Entity) Found() bool {
	return e.Kind != ""
}

// ID returns the id of the held value.
func (e Entity) ID() string {
	switch e.Kind {
	case KindJournal:
		return e.Journal.ID()
	case KindCategory:
		return e.Category.ID
	case KindArea:
		return e.Area.ID
	default:
		return ""
	}
}

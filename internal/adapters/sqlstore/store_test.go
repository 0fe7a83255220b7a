package sqlstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/journal-catalog/internal/domain"
	"github.com/jsamuelsen/journal-catalog/internal/ports"
)

// loadedStore returns a store backed by a temporary SQLite file holding
// testdata/assignments.json.
func loadedStore(t *testing.T) *Store {
	t.Helper()

	s := New(Config{DSN: filepath.Join(t.TempDir(), "catalog.db")})

	_, err := s.Upload(context.Background(), "testdata/assignments.json")
	require.NoError(t, err)

	return s
}

func TestUpload_Counts(t *testing.T) {
	s := New(Config{DSN: filepath.Join(t.TempDir(), "catalog.db")})

	result, err := s.Upload(context.Background(), "testdata/assignments.json")
	require.NoError(t, err)

	assert.Equal(t, "testdata/assignments.json", result.Path)
	assert.Equal(t, 2, result.Records)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 17, result.Statements)
}

func TestUpload_ReplacesContents(t *testing.T) {
	s := loadedStore(t)
	ctx := context.Background()

	before, err := s.GetAllCategories(ctx)
	require.NoError(t, err)

	_, err = s.Upload(ctx, "testdata/assignments.json")
	require.NoError(t, err)

	after, err := s.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "reloading the same file is idempotent")
}

func TestUpload_InvalidInput(t *testing.T) {
	dir := t.TempDir()
	s := New(Config{DSN: filepath.Join(dir, "catalog.db")})

	_, err := s.Upload(context.Background(), filepath.Join(dir, "missing.json"))
	assert.True(t, domain.IsValidation(err))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"identifiers": "nope"}`), 0o600))

	_, err = s.Upload(context.Background(), bad)
	assert.True(t, domain.IsValidation(err))
}

func TestUpload_DuplicateJournalMergesAssignments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dup.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"identifiers": ["0001-0001"], "categories": [{"id": "History", "quartile": "Q2"}], "areas": ["Arts"]},
		{"identifiers": ["0001-0001"], "categories": [{"id": "Law", "quartile": "Q4"}], "areas": ["Arts"]}
	]`), 0o600))

	s := New(Config{DSN: filepath.Join(dir, "catalog.db")})
	_, err := s.Upload(context.Background(), path)
	require.NoError(t, err)

	rows, err := s.GetAllAssignments(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Categories, 2)
}

func TestGetAllCategories(t *testing.T) {
	s := loadedStore(t)

	rows, err := s.GetAllCategories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []ports.CategoryRow{
		{Name: "Drug Discovery", Quartile: "Q1"},
		{Name: "Drug Discovery", Quartile: "Q2"},
		{Name: "Ocean Engineering", Quartile: "Q3"},
		{Name: "Philosophy", Quartile: ""},
	}, rows)
}

func TestGetCategoriesWithQuartile(t *testing.T) {
	s := loadedStore(t)
	ctx := context.Background()

	all, err := s.GetAllCategories(ctx)
	require.NoError(t, err)

	tests := []struct {
		name      string
		quartiles []string
		want      []ports.CategoryRow
	}{
		{"empty set equals get all", nil, all},
		{"exact match", []string{"Q1", "Q3"}, []ports.CategoryRow{
			{Name: "Drug Discovery", Quartile: "Q1"},
			{Name: "Ocean Engineering", Quartile: "Q3"},
		}},
		{"case sensitive", []string{"q1"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := s.GetCategoriesWithQuartile(ctx, tt.quartiles)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestGetAllAreas(t *testing.T) {
	s := loadedStore(t)

	rows, err := s.GetAllAreas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ports.AreaRow{{Name: "Engineering"}, {Name: "Medicine"}}, rows)
}

func TestGetCategoriesAssignedToAreas(t *testing.T) {
	s := loadedStore(t)
	ctx := context.Background()

	rows, err := s.GetCategoriesAssignedToAreas(ctx, []string{"Medicine"})
	require.NoError(t, err)
	assert.Equal(t, []ports.CategoryRow{
		{Name: "Drug Discovery", Quartile: "Q1"},
		{Name: "Philosophy", Quartile: ""},
	}, rows)

	all, err := s.GetAllCategories(ctx)
	require.NoError(t, err)

	rows, err = s.GetCategoriesAssignedToAreas(ctx, []string{})
	require.NoError(t, err)
	assert.Equal(t, all, rows)
}

func TestGetAreasAssignedToCategories(t *testing.T) {
	s := loadedStore(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		categories []string
		want       []ports.AreaRow
	}{
		{"assignment exists", []string{"Philosophy"}, []ports.AreaRow{{Name: "Medicine"}}},
		{"shared category", []string{"Drug Discovery"}, []ports.AreaRow{{Name: "Engineering"}, {Name: "Medicine"}}},
		{"no assignment", []string{"Astrology"}, nil},
		{"empty set is all", nil, []ports.AreaRow{{Name: "Engineering"}, {Name: "Medicine"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := s.GetAreasAssignedToCategories(ctx, tt.categories)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestGetAssignments(t *testing.T) {
	s := loadedStore(t)
	ctx := context.Background()

	categories, err := s.GetAllCategoryAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)
	assert.Equal(t, ports.CategoryAssignmentRow{
		Identifiers: []string{"1474-1776", "1474-1784"},
		Category:    "Drug Discovery",
		Quartile:    "Q1",
	}, categories[0])

	areas, err := s.GetAllAreaAssignments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ports.AreaAssignmentRow{
		{Identifiers: []string{"1474-1776", "1474-1784"}, Area: "Medicine"},
		{Identifiers: []string{"1733-8670", "2392-0378"}, Area: "Engineering"},
	}, areas)

	all, err := s.GetAllAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, ports.AssignmentRow{
		Identifiers: []string{"1474-1776", "1474-1784"},
		Categories: []ports.CategoryRow{
			{Name: "Drug Discovery", Quartile: "Q1"},
			{Name: "Philosophy", Quartile: ""},
		},
		Areas: []string{"Medicine"},
	}, all[0])
}

func TestGetByID(t *testing.T) {
	s := loadedStore(t)
	ctx := context.Background()

	tests := []struct {
		id   string
		want *ports.EntityRow
	}{
		{"Drug Discovery", &ports.EntityRow{ID: "Drug Discovery", Kind: domain.KindCategory, Quartile: "Q1"}},
		{"Philosophy", &ports.EntityRow{ID: "Philosophy", Kind: domain.KindCategory}},
		{"Medicine", &ports.EntityRow{ID: "Medicine", Kind: domain.KindArea}},
		{"santa-claus", nil},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			row, err := s.GetByID(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, row)
		})
	}
}

func TestStore_UnsetDSNIsConfigurationError(t *testing.T) {
	s := New(Config{})

	_, err := s.GetAllCategories(context.Background())
	assert.True(t, domain.IsConfiguration(err))
	assert.False(t, domain.IsStore(err))

	_, err = s.Upload(context.Background(), "testdata/assignments.json")
	assert.True(t, domain.IsConfiguration(err))
}

func TestStore_QueryFailureIsStoreError(t *testing.T) {
	s := New(Config{DSN: filepath.Join(t.TempDir(), "never-loaded.db")})

	_, err := s.GetAllAreas(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsStore(err))

	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, StoreName, storeErr.Store)
	assert.Equal(t, "get all areas", storeErr.Operation)
	assert.NotNil(t, storeErr.Cause, "driver error is kept")
}

func TestStore_SetDbPathOrURL(t *testing.T) {
	s := New(Config{})

	err := s.SetDbPathOrURL("   ")
	assert.True(t, domain.IsValidation(err))

	require.NoError(t, s.SetDbPathOrURL(" catalog.db "))
	assert.Equal(t, "catalog.db", s.DbPathOrURL())
}

func TestStore_Check(t *testing.T) {
	s := loadedStore(t)
	require.NoError(t, s.Check(context.Background()))
	assert.Equal(t, StoreName, s.Name())

	empty := New(Config{Name: "relational-replica", DSN: filepath.Join(t.TempDir(), "empty.db")})
	assert.Error(t, empty.Check(context.Background()))
	assert.Equal(t, "relational-replica", empty.Name())
}

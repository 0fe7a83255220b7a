package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jsamuelsen/journal-catalog/internal/domain"
	"github.com/jsamuelsen/journal-catalog/internal/ports"
)

const (
	selectCategories = `SELECT DISTINCT c.name, COALESCE(ca.quartile, '') AS quartile
FROM categories c
JOIN category_assignments ca ON ca.category_id = c.id`

	orderCategories = `
ORDER BY c.name, quartile`

	selectAreas = `SELECT DISTINCT a.name
FROM areas a`

	selectCategoriesInAreas = `SELECT DISTINCT c.name, COALESCE(ca.quartile, '') AS quartile
FROM category_assignments ca
JOIN categories c ON c.id = ca.category_id
JOIN area_assignments aa ON aa.journal_id = ca.journal_id
JOIN areas a ON a.id = aa.area_id`

	selectAreasInCategories = `SELECT DISTINCT a.name
FROM area_assignments aa
JOIN areas a ON a.id = aa.area_id
JOIN category_assignments ca ON ca.journal_id = aa.journal_id
JOIN categories c ON c.id = ca.category_id`

	selectIdentifiers = `SELECT journal_id, identifier
FROM journal_identifiers
ORDER BY journal_id, position`

	selectJournalIDs = `SELECT id FROM journals ORDER BY id`

	selectCategoryAssignments = `SELECT ca.journal_id, c.name, COALESCE(ca.quartile, '') AS quartile
FROM category_assignments ca
JOIN categories c ON c.id = ca.category_id
ORDER BY ca.journal_id, c.name, quartile`

	selectAreaAssignments = `SELECT aa.journal_id, a.name
FROM area_assignments aa
JOIN areas a ON a.id = aa.area_id
ORDER BY aa.journal_id, a.name`

	// selectCategoryByName prefers a ranked quartile over none.
	selectCategoryByName = `SELECT c.name, COALESCE(ca.quartile, '') AS quartile
FROM categories c
LEFT JOIN category_assignments ca ON ca.category_id = c.id
WHERE c.name = ?
ORDER BY CASE WHEN ca.quartile IS NULL THEN 1 ELSE 0 END, ca.quartile
LIMIT 1`

	selectAreaByName = `SELECT name FROM areas WHERE name = ?`
)

// GetAllCategories returns every distinct (category, quartile) pair,
// including categories assigned without a quartile.
func (s *Store) GetAllCategories(ctx context.Context) ([]ports.CategoryRow, error) {
	return s.categories(ctx, "get all categories", selectCategories+orderCategories, nil)
}

// GetCategoriesWithQuartile returns the pairs whose quartile is one of
// quartiles, matched exactly. An empty set returns every pair.
func (s *Store) GetCategoriesWithQuartile(ctx context.Context, quartiles []string) ([]ports.CategoryRow, error) {
	if ports.Unconstrained(quartiles) {
		return s.GetAllCategories(ctx)
	}

	query := selectCategories + "\nWHERE ca.quartile IN (" + placeholders(len(quartiles)) + ")" + orderCategories

	return s.categories(ctx, "get categories with quartile", query, stringArgs(quartiles))
}

// GetCategoriesAssignedToAreas returns the pairs assigned to journals that
// are also assigned to one of areaIDs. An empty set returns every pair.
func (s *Store) GetCategoriesAssignedToAreas(ctx context.Context, areaIDs []string) ([]ports.CategoryRow, error) {
	if ports.Unconstrained(areaIDs) {
		return s.GetAllCategories(ctx)
	}

	query := selectCategoriesInAreas + "\nWHERE a.name IN (" + placeholders(len(areaIDs)) + ")" + orderCategories

	return s.categories(ctx, "get categories assigned to areas", query, stringArgs(areaIDs))
}

// GetAllAreas returns every distinct area.
func (s *Store) GetAllAreas(ctx context.Context) ([]ports.AreaRow, error) {
	return s.areas(ctx, "get all areas", selectAreas+"\nORDER BY a.name", nil)
}

// GetAreasAssignedToCategories returns the areas assigned to journals that
// are also assigned to one of categoryIDs. An empty set returns every area.
func (s *Store) GetAreasAssignedToCategories(ctx context.Context, categoryIDs []string) ([]ports.AreaRow, error) {
	if ports.Unconstrained(categoryIDs) {
		return s.GetAllAreas(ctx)
	}

	query := selectAreasInCategories + "\nWHERE c.name IN (" + placeholders(len(categoryIDs)) + ")\nORDER BY a.name"

	return s.areas(ctx, "get areas assigned to categories", query, stringArgs(categoryIDs))
}

// GetAllCategoryAssignments returns one row per (journal, category) assignment.
func (s *Store) GetAllCategoryAssignments(ctx context.Context) ([]ports.CategoryAssignmentRow, error) {
	var out []ports.CategoryAssignmentRow

	err := s.withDB(ctx, "get all category assignments", true, func(db *sql.DB, d dialect) error {
		ids, err := identifiers(ctx, db, d)
		if err != nil {
			return err
		}

		out, err = queryRows(ctx, db, d, selectCategoryAssignments, nil, func(rows *sql.Rows) (ports.CategoryAssignmentRow, error) {
			var journalID string
			var row ports.CategoryAssignmentRow
			err := rows.Scan(&journalID, &row.Category, &row.Quartile)
			row.Identifiers = ids[journalID]
			return row, err
		})

		return err
	})

	return out, err
}

// GetAllAreaAssignments returns one row per (journal, area) assignment.
func (s *Store) GetAllAreaAssignments(ctx context.Context) ([]ports.AreaAssignmentRow, error) {
	var out []ports.AreaAssignmentRow

	err := s.withDB(ctx, "get all area assignments", true, func(db *sql.DB, d dialect) error {
		ids, err := identifiers(ctx, db, d)
		if err != nil {
			return err
		}

		out, err = queryRows(ctx, db, d, selectAreaAssignments, nil, func(rows *sql.Rows) (ports.AreaAssignmentRow, error) {
			var journalID string
			var row ports.AreaAssignmentRow
			err := rows.Scan(&journalID, &row.Area)
			row.Identifiers = ids[journalID]
			return row, err
		})

		return err
	})

	return out, err
}

// GetAllAssignments returns every journal with all of its category and
// area assignments.
func (s *Store) GetAllAssignments(ctx context.Context) ([]ports.AssignmentRow, error) {
	var out []ports.AssignmentRow

	err := s.withDB(ctx, "get all assignments", true, func(db *sql.DB, d dialect) error {
		ids, err := identifiers(ctx, db, d)
		if err != nil {
			return err
		}

		journals, err := queryRows(ctx, db, d, selectJournalIDs, nil, func(rows *sql.Rows) (string, error) {
			var id string
			err := rows.Scan(&id)
			return id, err
		})
		if err != nil {
			return err
		}

		index := make(map[string]int, len(journals))
		out = make([]ports.AssignmentRow, len(journals))
		for i, id := range journals {
			index[id] = i
			out[i].Identifiers = ids[id]
		}

		if _, err := queryRows(ctx, db, d, selectCategoryAssignments, nil, func(rows *sql.Rows) (struct{}, error) {
			var journalID string
			var c ports.CategoryRow
			if err := rows.Scan(&journalID, &c.Name, &c.Quartile); err != nil {
				return struct{}{}, err
			}
			if i, ok := index[journalID]; ok {
				out[i].Categories = append(out[i].Categories, c)
			}
			return struct{}{}, nil
		}); err != nil {
			return err
		}

		_, err = queryRows(ctx, db, d, selectAreaAssignments, nil, func(rows *sql.Rows) (struct{}, error) {
			var journalID, area string
			if err := rows.Scan(&journalID, &area); err != nil {
				return struct{}{}, err
			}
			if i, ok := index[journalID]; ok {
				out[i].Areas = append(out[i].Areas, area)
			}
			return struct{}{}, nil
		})

		return err
	})

	return out, err
}

// GetByID looks id up as a category name, then as an area name. It
// returns nil when neither exists.
func (s *Store) GetByID(ctx context.Context, id string) (*ports.EntityRow, error) {
	var out *ports.EntityRow

	err := s.withDB(ctx, "get by id", true, func(db *sql.DB, d dialect) error {
		var row ports.EntityRow
		err := db.QueryRowContext(ctx, d.rebind(selectCategoryByName), id).Scan(&row.ID, &row.Quartile)
		switch {
		case err == nil:
			row.Kind = domain.KindCategory
			out = &row
			return nil
		case !errors.Is(err, sql.ErrNoRows):
			return err
		}

		err = db.QueryRowContext(ctx, d.rebind(selectAreaByName), id).Scan(&row.ID)
		switch {
		case err == nil:
			row.Kind = domain.KindArea
			out = &row
			return nil
		case errors.Is(err, sql.ErrNoRows):
			return nil
		default:
			return err
		}
	})

	return out, err
}

func (s *Store) categories(ctx context.Context, operation, query string, args []any) ([]ports.CategoryRow, error) {
	var out []ports.CategoryRow

	err := s.withDB(ctx, operation, true, func(db *sql.DB, d dialect) error {
		var err error
		out, err = queryRows(ctx, db, d, query, args, func(rows *sql.Rows) (ports.CategoryRow, error) {
			var row ports.CategoryRow
			err := rows.Scan(&row.Name, &row.Quartile)
			return row, err
		})

		return err
	})

	return out, err
}

func (s *Store) areas(ctx context.Context, operation, query string, args []any) ([]ports.AreaRow, error) {
	var out []ports.AreaRow

	err := s.withDB(ctx, operation, true, func(db *sql.DB, d dialect) error {
		var err error
		out, err = queryRows(ctx, db, d, query, args, func(rows *sql.Rows) (ports.AreaRow, error) {
			var row ports.AreaRow
			err := rows.Scan(&row.Name)
			return row, err
		})

		return err
	})

	return out, err
}

// identifiers maps internal journal ids to their ordered external identifiers.
func identifiers(ctx context.Context, db *sql.DB, d dialect) (map[string][]string, error) {
	out := make(map[string][]string)

	_, err := queryRows(ctx, db, d, selectIdentifiers, nil, func(rows *sql.Rows) (struct{}, error) {
		var journalID, identifier string
		if err := rows.Scan(&journalID, &identifier); err != nil {
			return struct{}{}, err
		}
		out[journalID] = append(out[journalID], identifier)
		return struct{}{}, nil
	})

	return out, err
}

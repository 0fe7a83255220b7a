package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jsamuelsen/journal-catalog/internal/domain"
	"github.com/jsamuelsen/journal-catalog/internal/ports"
)

// assignmentRecord is one journal in the assignments JSON document.
type assignmentRecord struct {
	Identifiers []string             `json:"identifiers"`
	Categories  []categoryAssignment `json:"categories"`
	Areas       []string             `json:"areas"`
}

type categoryAssignment struct {
	ID       string  `json:"id"`
	Quartile *string `json:"quartile"`
}

// sequence hands out internal ids such as category-0, category-1 for
// distinct names, in first-seen order.
type sequence struct {
	prefix string
	ids    map[string]string
	order  []string
}

func newSequence(prefix string) *sequence {
	return &sequence{prefix: prefix, ids: make(map[string]string)}
}

func (s *sequence) id(name string) (string, bool) {
	if id, ok := s.ids[name]; ok {
		return id, false
	}

	id := s.prefix + "-" + strconv.Itoa(len(s.order))
	s.ids[name] = id
	s.order = append(s.order, name)

	return id, true
}

// Upload replaces the store contents with the assignments in a JSON file.
// Tables are dropped and recreated and every row is inserted in one
// transaction. Records without identifiers are skipped.
func (s *Store) Upload(ctx context.Context, path string) (ports.UploadResult, error) {
	result := ports.UploadResult{Path: path}

	records, err := readAssignments(path)
	if err != nil {
		return result, err
	}

	err = s.withDB(ctx, "upload", false, func(db *sql.DB, d dialect) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		for _, stmt := range append(append([]string(nil), dropSchema...), createSchema...) {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("recreating schema: %w", err)
			}
		}

		l, err := newLoader(ctx, tx, d)
		if err != nil {
			return err
		}
		defer l.close()

		for i, rec := range records {
			ids := ports.Compact(rec.Identifiers)
			if len(ids) == 0 {
				result.Skipped++
				s.logger.WarnContext(ctx, "skipping assignment record without identifiers",
					slog.String("path", path),
					slog.Int("index", i),
				)
				continue
			}

			n, err := l.load(ctx, ids, rec)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}

			result.Records++
			result.Statements += n
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing: %w", err)
		}

		return nil
	})
	if err != nil {
		return ports.UploadResult{Path: path}, err
	}

	s.logger.InfoContext(ctx, "relational upload complete",
		slog.String("path", path),
		slog.Int("records", result.Records),
		slog.Int("statements", result.Statements),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

func readAssignments(path string) ([]assignmentRecord, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is an operator supplied input file
	if err != nil {
		return nil, domain.NewValidationErrorWithValue("path", "cannot read file", path)
	}

	var records []assignmentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, domain.NewValidationError("path", fmt.Sprintf("%s is not a JSON array of assignment records: %v", path, err))
	}

	return records, nil
}

// loader holds the prepared inserts and id sequences of one upload.
type loader struct {
	journals   *sequence
	categories *sequence
	areas      *sequence

	journal, identifier, category, area, categoryAssignment, areaAssignment *sql.Stmt
}

func newLoader(ctx context.Context, tx *sql.Tx, d dialect) (*loader, error) {
	l := &loader{
		journals:   newSequence("journal"),
		categories: newSequence("category"),
		areas:      newSequence("area"),
	}

	for _, p := range []struct {
		dst   **sql.Stmt
		query string
	}{
		{&l.journal, insertJournal},
		{&l.identifier, insertJournalIdentifier},
		{&l.category, insertCategory},
		{&l.area, insertArea},
		{&l.categoryAssignment, insertCategoryAssignment},
		{&l.areaAssignment, insertAreaAssignment},
	} {
		stmt, err := tx.PrepareContext(ctx, d.rebind(p.query))
		if err != nil {
			l.close()
			return nil, fmt.Errorf("preparing insert: %w", err)
		}
		*p.dst = stmt
	}

	return l, nil
}

func (l *loader) close() {
	for _, stmt := range []*sql.Stmt{l.journal, l.identifier, l.category, l.area, l.categoryAssignment, l.areaAssignment} {
		if stmt != nil {
			_ = stmt.Close()
		}
	}
}

// load inserts one journal and its assignments, returning the row count.
func (l *loader) load(ctx context.Context, ids []string, rec assignmentRecord) (int, error) {
	n := 0

	// A journal listed twice keeps one row and gains both assignment sets.
	journalID, created := l.journals.id(strings.Join(ids, "\x00"))
	if created {
		if _, err := l.journal.ExecContext(ctx, journalID); err != nil {
			return n, err
		}
		n++

		for pos, identifier := range ids {
			if _, err := l.identifier.ExecContext(ctx, journalID, pos, identifier); err != nil {
				return n, err
			}
			n++
		}
	}

	for _, c := range rec.Categories {
		name := strings.TrimSpace(c.ID)
		if name == "" {
			continue
		}

		categoryID, created := l.categories.id(name)
		if created {
			if _, err := l.category.ExecContext(ctx, categoryID, name); err != nil {
				return n, err
			}
			n++
		}

		if _, err := l.categoryAssignment.ExecContext(ctx, journalID, categoryID, quartile(c.Quartile)); err != nil {
			return n, err
		}
		n++
	}

	for _, name := range ports.Compact(rec.Areas) {
		areaID, created := l.areas.id(name)
		if created {
			if _, err := l.area.ExecContext(ctx, areaID, name); err != nil {
				return n, err
			}
			n++
		}

		if _, err := l.areaAssignment.ExecContext(ctx, journalID, areaID); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}

// quartile maps a missing or blank quartile to NULL.
func quartile(q *string) any {
	if q == nil || strings.TrimSpace(*q) == "" {
		return nil
	}

	return strings.TrimSpace(*q)
}

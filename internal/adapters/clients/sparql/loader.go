package sparql

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jsamuelsen/journal-catalog/internal/domain"
	"github.com/jsamuelsen/journal-catalog/internal/ports"
)

// journalColumn names a CSV column the loader understands.
type journalColumn int

const (
	colTitle journalColumn = iota
	colISSN
	colEISSN
	colLanguages
	colPublisher
	colSeal
	colLicense
	colAPC
)

// columnAliases maps lower-cased header names to columns. Both the DOAJ
// export headers and the short predicate names are accepted.
var columnAliases = map[string]journalColumn{
	"journal title": colTitle,
	"title":         colTitle,

	"journal issn (print version)": colISSN,
	"issn":                         colISSN,

	"journal eissn (online version)": colEISSN,
	"eissn":                          colEISSN,

	"languages in which the journal accepts manuscripts": colLanguages,
	"languages":                                          colLanguages,

	"publisher": colPublisher,

	"doaj seal": colSeal,
	"seal":      colSeal,

	"journal license": colLicense,
	"license":         colLicense,

	"apc": colAPC,
}

// csvRecord is one journal read from the CSV, NFC normalized and trimmed.
type csvRecord [colAPC + 1]string

// Upload loads a journal CSV into the graph as batched updates. Each batch
// first deletes every statement about its journals, so a re-uploaded
// journal carries only its latest values and each flag has one value.
// When a journal repeats within the file the later row wins. Rows with
// neither ISSN nor EISSN are skipped.
func (s *Store) Upload(ctx context.Context, path string) (ports.UploadResult, error) {
	result := ports.UploadResult{Path: path}

	if _, _, err := s.conn(); err != nil {
		return result, err
	}

	f, err := os.Open(path) //nolint:gosec // path is an operator supplied input file
	if err != nil {
		return result, domain.NewValidationErrorWithValue("path", "cannot open file", path)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return result, domain.NewValidationErrorWithValue("path", "cannot read CSV header", path)
	}

	index, err := columnIndex(header)
	if err != nil {
		return result, err
	}

	var (
		batch    strings.Builder
		subjects []string
	)

	flush := func() error {
		if len(subjects) == 0 {
			return nil
		}

		if err := s.update(ctx, "upload", replaceData(subjects, batch.String())); err != nil {
			return err
		}

		batch.Reset()
		subjects = subjects[:0]

		return nil
	}

	for line := 2; ; line++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, domain.NewValidationError("path", fmt.Sprintf("%s line %d: %v", path, line, err))
		}

		rec := readRecord(fields, index)
		subject, ok := journalSubject(&rec)
		if !ok {
			result.Skipped++
			s.logger.Warn("skipping journal without identifiers",
				slog.String("path", path),
				slog.Int("line", line),
			)
			continue
		}

		if slices.Contains(subjects, subject) {
			if err := flush(); err != nil {
				return result, err
			}
		}

		result.Records++
		result.Statements += writeTriples(&batch, subject, &rec)
		subjects = append(subjects, subject)

		if len(subjects) >= s.cfg.BatchSize {
			if err := flush(); err != nil {
				return result, err
			}
		}
	}

	if err := flush(); err != nil {
		return result, err
	}

	s.logger.InfoContext(ctx, "graph upload complete",
		slog.String("path", path),
		slog.Int("records", result.Records),
		slog.Int("statements", result.Statements),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

// columnIndex maps header positions to columns. At least one identifier
// column is required.
func columnIndex(header []string) (map[int]journalColumn, error) {
	index := make(map[int]journalColumn, len(header))
	hasID := false

	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		col, ok := columnAliases[name]
		if !ok {
			continue
		}

		index[i] = col
		if col == colISSN || col == colEISSN {
			hasID = true
		}
	}

	if !hasID {
		return nil, domain.NewValidationError("header", "CSV has no ISSN or EISSN column")
	}

	return index, nil
}

func readRecord(fields []string, index map[int]journalColumn) csvRecord {
	var rec csvRecord
	for i, v := range fields {
		if col, ok := index[i]; ok {
			rec[col] = strings.TrimSpace(norm.NFC.String(v))
		}
	}

	return rec
}

// journalSubject is the IRI of rec, keyed by ISSN, else EISSN. ok is false
// when rec has neither.
func journalSubject(rec *csvRecord) (subject string, ok bool) {
	primary := rec[colISSN]
	if primary == "" {
		primary = rec[colEISSN]
	}
	if primary == "" {
		return "", false
	}

	return "<" + Namespace + subjectPrefix + url.PathEscape(primary) + ">", true
}

// writeTriples appends the statements for rec and returns how many were
// written.
func writeTriples(b *strings.Builder, subject string, rec *csvRecord) int {
	fmt.Fprintf(b, "%s a :%s .\n", subject, ClassJournal)
	n := 1

	emit := func(predicate, object string) {
		fmt.Fprintf(b, "%s :%s %s .\n", subject, predicate, object)
		n++
	}

	for _, f := range []struct {
		col       journalColumn
		predicate string
	}{
		{colTitle, PredTitle},
		{colISSN, PredISSN},
		{colEISSN, PredEISSN},
		{colLanguages, PredLanguages},
		{colPublisher, PredPublisher},
		{colLicense, PredLicense},
	} {
		if v := rec[f.col]; v != "" {
			emit(f.predicate, literal(v))
		}
	}

	for _, f := range []struct {
		col       journalColumn
		predicate string
	}{
		{colSeal, PredSeal},
		{colAPC, PredAPC},
	} {
		if v := rec[f.col]; v != "" {
			emit(f.predicate, booleanLiteral(isTruthy(v)))
		}
	}

	return n
}

func booleanLiteral(v bool) string {
	return fmt.Sprintf(`"%t"^^<%s>`, v, xsdBoolean)
}

// replaceData clears every statement about subjects, then inserts triples,
// as one update request.
func replaceData(subjects []string, triples string) string {
	return fmt.Sprintf("PREFIX : <%s>\nDELETE { ?s ?p ?o }\nWHERE { VALUES ?s { %s } ?s ?p ?o } ;\nINSERT DATA {\n%s}",
		Namespace, strings.Join(subjects, " "), triples)
}

// Package gaimport reads Google Analytics CSV exports (Universal Analytics
// and GA4) into daily per-page rows.
package gaimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/ingest"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// MaxReportedErrors is the number of row errors kept in an import result.
const MaxReportedErrors = 10

var (
	ErrEmptyFile     = errors.New("csv file has no header")
	ErrMissingColumn = errors.New("required column is missing")
)

type column int

const (
	colDate column = iota
	colPath
	colPageviews
	colVisitors
)

// columnAliases maps normalized header names to columns. Headers are
// normalized by lower-casing and removing spaces and underscores.
var columnAliases = map[string]column{
	"date":                   colDate,
	"day":                    colDate,
	"page":                   colPath,
	"pagepath":               colPath,
	"landingpage":            colPath,
	"pagepathandscreenclass": colPath,
	"pageviews":              colPageviews,
	"views":                  colPageviews,
	"screenpageviews":        colPageviews,
	"users":                  colVisitors,
	"totalusers":             colVisitors,
	"activeusers":            colVisitors,
}

// Row is one parsed line of the export.
type Row struct {
	Day       string
	Path      string
	Pageviews int64
	Visitors  int64
}

// Parser reads CSV exports. The zero value is not usable, see [NewParser].
type Parser struct {
	sanitizer ingest.Sanitizer
}

func NewParser() *Parser {
	return &Parser{sanitizer: ingest.NewSanitizer()}
}

// Parse reads every row of r. Comment lines starting with "#" and blank lines
// are skipped; malformed rows are skipped and reported in the result. An
// error is returned only when the file cannot be read as a whole.
func (p *Parser) Parse(r io.Reader) ([]Row, models.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, models.ImportResult{}, ErrEmptyFile
	}
	if err != nil {
		return nil, models.ImportResult{}, fmt.Errorf("error reading csv header: %w", err)
	}

	index, err := mapHeader(header)
	if err != nil {
		return nil, models.ImportResult{}, err
	}

	var (
		rows   []Row
		result models.ImportResult
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, result, fmt.Errorf("error reading csv: %w", err)
			}
			result.RowsRead++
			skip(&result, fmt.Sprintf("line %d: %v", parseErr.Line, parseErr.Err))
			continue
		}
		if isBlank(record) {
			continue
		}

		result.RowsRead++
		row, err := p.parseRow(record, index)
		if err != nil {
			line, _ := reader.FieldPos(0)
			skip(&result, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		rows = append(rows, row)
	}

	return rows, result, nil
}

func (p *Parser) parseRow(record []string, index map[column]int) (Row, error) {
	field := func(c column) string {
		i, ok := index[c]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	day, err := parseDate(field(colDate))
	if err != nil {
		return Row{}, err
	}

	rawPath := field(colPath)
	if rawPath == "" {
		return Row{}, errors.New("empty page path")
	}
	page, err := p.sanitizer.Page(rawPath)
	if err != nil {
		return Row{}, fmt.Errorf("invalid page path %q", rawPath)
	}

	pageviews, err := parseCount(field(colPageviews))
	if err != nil {
		return Row{}, fmt.Errorf("invalid pageviews: %w", err)
	}

	var visitors int64
	if raw := field(colVisitors); raw != "" {
		if visitors, err = parseCount(raw); err != nil {
			return Row{}, fmt.Errorf("invalid users: %w", err)
		}
	}

	return Row{Day: day, Path: page.Path, Pageviews: pageviews, Visitors: visitors}, nil
}

// Aggregate sums rows per (day, path) and returns them sorted by day and path.
func Aggregate(siteID string, rows []Row) []models.ImportedPageviews {
	type key struct{ day, path string }

	sums := make(map[key]*models.ImportedPageviews, len(rows))
	for _, r := range rows {
		k := key{r.Day, r.Path}
		agg, ok := sums[k]
		if !ok {
			agg = &models.ImportedPageviews{SiteID: siteID, Day: r.Day, Path: r.Path}
			sums[k] = agg
		}
		agg.Pageviews += r.Pageviews
		agg.Visitors += r.Visitors
	}

	out := make([]models.ImportedPageviews, 0, len(sums))
	for _, agg := range sums {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Path < out[j].Path
	})
	return out
}

func mapHeader(header []string) (map[column]int, error) {
	index := make(map[column]int, len(header))
	for i, name := range header {
		c, ok := columnAliases[normalizeHeader(name)]
		if !ok {
			continue
		}
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}

	for _, required := range []struct {
		c    column
		name string
	}{{colDate, "date"}, {colPath, "page"}, {colPageviews, "pageviews"}} {
		if _, ok := index[required.c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required.name)
		}
	}
	return index, nil
}

func normalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "", "_", "").Replace(name)
}

// parseDate accepts "YYYYMMDD" and "YYYY-MM-DD".
func parseDate(s string) (string, error) {
	layout := time.DateOnly
	if len(s) == 8 {
		layout = "20060102"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q", s)
	}
	return t.Format(time.DateOnly), nil
}

// parseCount accepts non-negative integers with optional thousands separators.
func parseCount(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%q is negative", s)
	}
	return n, nil
}

func skip(result *models.ImportResult, msg string) {
	result.RowsSkipped++
	if len(result.Errors) < MaxReportedErrors {
		result.Errors = append(result.Errors, msg)
	}
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// Package catalog loads the movie dataset from a CSV file.
package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/movie"
)

// Source column names and their position in the Movie shape.
const (
	colID       = "show_id"
	colTitle    = "title"
	colYear     = "release_year"
	colCategory = "listed_in"
	colRating   = "rating"
	colOverview = "description"
)

var requiredColumns = []string{colID, colTitle, colYear, colCategory, colRating, colOverview}

const utf8BOM = "\ufeff"

// Loader reads the catalog from a CSV file on disk.
type Loader struct {
	path string
}

// New creates a Loader for the given file path.
func New(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the dataset location.
func (l *Loader) Path() string { return l.path }

// Load reads every row of the dataset. Any failure aborts the whole load.
func (l *Loader) Load(ctx context.Context) ([]movie.Movie, error) {
	f, err := os.Open(filepath.Clean(l.path))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrMalformedInput, l.path, err)
	}
	defer func() { _ = f.Close() }()

	movies, err := Parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", l.path, err)
	}
	return movies, nil
}

// Parse decodes CSV data with a header row into movies, in file order.
// Columns other than the six catalog columns are ignored.
func Parse(ctx context.Context, r io.Reader) ([]movie.Movie, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", domain.ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: read header: %w", domain.ErrMalformedInput, err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var movies []movie.Movie
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("load canceled: %w", err)
		}

		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrMalformedInput, err)
		}

		line, _ := cr.FieldPos(0)
		year, err := parseYear(rec[idx[colYear]])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", domain.ErrMalformedInput, line, err)
		}

		movies = append(movies, movie.New(
			rec[idx[colID]],
			rec[idx[colTitle]],
			year,
			rec[idx[colCategory]],
			rec[idx[colRating]],
			rec[idx[colOverview]],
		))
	}

	return movies, nil
}

// columnIndex maps each required column to its position in the header.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", domain.ErrMalformedInput, strings.Join(missing, ", "))
	}
	return idx, nil
}

// parseYear converts a release year cell. Blank cells become 0.
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		// Spreadsheet exports sometimes write integers as "2020.0".
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, fmt.Errorf("invalid release_year %q", s)
		}
		year = int(f)
	}
	return year, nil
}

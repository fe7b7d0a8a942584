// Package dataset loads the Munro table from its CSV source into an
// immutable in-memory Store. The load happens once at process start; the
// rest of the service only ever reads the result.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/starford/munro/internal/checksum"
	"github.com/starford/munro/internal/models"
)

// Verifier checks a parsed row before it is accepted into the Store.
// A non-nil error rejects the row; the load policy decides whether a
// rejection is skipped or aborts the whole load.
type Verifier func(models.Munro) error

// DefaultVerifier enforces the structural invariants of the dataset:
// positive running number, non-empty name, non-negative height, and a
// post-1997 marker from the known vocabulary (or empty).
func DefaultVerifier(m models.Munro) error {
	if m.RunningNo <= 0 {
		return fmt.Errorf("running number must be positive, got %d", m.RunningNo)
	}
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("name is empty")
	}
	if m.HeightInMetre < 0 {
		return fmt.Errorf("height cannot be negative: %v", m.HeightInMetre)
	}
	if m.Post1997 != "" {
		if _, ok := models.ParseCategory(m.Post1997); !ok {
			return fmt.Errorf("unknown post-1997 marker %q", m.Post1997)
		}
	}
	return nil
}

// Loader reads the CSV source and produces a Store.
type Loader struct {
	verifier Verifier
	strict   bool
	logger   *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithVerifier replaces the per-row verifier.
func WithVerifier(v Verifier) LoaderOption {
	return func(l *Loader) { l.verifier = v }
}

// WithStrict makes any malformed or rejected row abort the load instead of
// being skipped with a warning.
func WithStrict(strict bool) LoaderOption {
	return func(l *Loader) { l.strict = strict }
}

// WithLogger sets the logger used for per-row warnings.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a Loader with the default verifier and skip-and-log
// row policy.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		verifier: DefaultVerifier,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func init() {
	// The munrotab export pads some fields with leading spaces and quotes
	// inconsistently; column mapping itself is header-driven via csv tags.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.TrimLeadingSpace = true
		r.LazyQuotes = true
		return r
	})
}

// Load reads and converts the dataset at path. A missing or unreadable file
// is returned as an error; callers that want the fail-open behaviour keep
// serving with an empty Store instead of aborting.
func (l *Loader) Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}

	var rows []models.Munro
	if l.strict {
		err = gocsv.UnmarshalBytes(data, &rows)
	} else {
		err = gocsv.UnmarshalWithErrorHandler(bytes.NewReader(data), func(pe *csv.ParseError) bool {
			l.logger.Warn("dataset: skipping malformed row",
				slog.Int("line", pe.Line),
				slog.String("error", pe.Err.Error()))
			return true
		}, &rows)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
	}

	accepted := make([]models.Munro, 0, len(rows))
	for _, m := range rows {
		if verr := l.verifier(m); verr != nil {
			if l.strict {
				return nil, fmt.Errorf("dataset: row %d rejected: %w", m.RunningNo, verr)
			}
			l.logger.Warn("dataset: row rejected",
				slog.Int("running_no", m.RunningNo),
				slog.String("error", verr.Error()))
			continue
		}
		accepted = append(accepted, m)
	}

	store := NewStore(accepted)
	store.sourcePath = path
	store.checksum = checksum.Sum(data)

	l.logger.Info("dataset: loaded",
		slog.String("path", path),
		slog.Int("rows", len(accepted)),
		slog.Int("rejected", len(rows)-len(accepted)))
	return store, nil
}

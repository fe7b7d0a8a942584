// Package munroservice implements the query engine over the loaded Munro
// collection: category and height-range filtering, ordering, and limiting.
// Every operation is a pure function of the immutable Store and the given
// criteria; the package knows nothing about HTTP.
package munroservice

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/munro/internal/apperr"
	"github.com/starford/munro/internal/dataset"
	"github.com/starford/munro/internal/models"
)

// Service answers queries against the shared immutable dataset.
type Service struct {
	store *dataset.Store
}

// NewService creates a query service over the given Store.
func NewService(store *dataset.Store) *Service {
	return &Service{store: store}
}

// Criteria holds the optional filter, sort and limit arguments of a query.
// Pointer fields keep "absent" distinct from zero, so a zero height bound
// or an explicit limit of 0 mean exactly what the caller sent.
type Criteria struct {
	MinHeight     *float64
	MaxHeight     *float64
	Category      *string
	OrderHeightBy *string
	OrderNameBy   *string
	Limit         *int
}

// Validate checks the criteria against the query contract: the limit must
// be positive, heights non-negative, the maximum not below the minimum, and
// the category one of the known markers.
func (c Criteria) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Limit, validation.By(positiveLimit)),
		validation.Field(&c.MinHeight, validation.Min(0.0).Error("heights cannot be less than zero")),
		validation.Field(&c.MaxHeight,
			validation.Min(0.0).Error("heights cannot be less than zero"),
			validation.By(c.maxNotBelowMin)),
		validation.Field(&c.Category, validation.By(knownCategory)),
	)
}

func positiveLimit(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	if n, _ := v.(int); n <= 0 {
		return fmt.Errorf("invalid value for limit: %d", n)
	}
	return nil
}

func (c Criteria) maxNotBelowMin(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil || c.MinHeight == nil {
		return nil
	}
	if hi, _ := v.(float64); hi < *c.MinHeight {
		return errors.New("maximum height could not be less than minimum height")
	}
	return nil
}

func knownCategory(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, _ := v.(string)
	if _, ok := models.ParseCategory(s); !ok {
		return fmt.Errorf("unknown hill category: %q", s)
	}
	return nil
}

// FindAll returns every classified record, honouring the optional category,
// ordering and limit criteria.
func (s *Service) FindAll(ctx context.Context, category, orderHeightBy, orderNameBy *string, limit *int) ([]models.Munro, error) {
	return s.Query(ctx, Criteria{
		Category:      category,
		OrderHeightBy: orderHeightBy,
		OrderNameBy:   orderNameBy,
		Limit:         limit,
	})
}

// FindByRunningNumber returns the unique record with the given running
// number. Hills that lost their post-1997 status are treated as absent.
func (s *Service) FindByRunningNumber(_ context.Context, runningNo int) (models.Munro, error) {
	m, ok := s.store.ByRunningNumber(runningNo)
	if !ok || !m.Classified() {
		return models.Munro{}, apperr.ErrNotFound
	}
	return m, nil
}

// ByMinimumHeight returns records at or above height, in metres.
func (s *Service) ByMinimumHeight(ctx context.Context, height float64, category, orderHeightBy, orderNameBy *string, limit *int) ([]models.Munro, error) {
	return s.Query(ctx, Criteria{
		MinHeight:     &height,
		Category:      category,
		OrderHeightBy: orderHeightBy,
		OrderNameBy:   orderNameBy,
		Limit:         limit,
	})
}

// ByMaximumHeight returns records strictly below height, in metres.
func (s *Service) ByMaximumHeight(ctx context.Context, height float64, category, orderHeightBy, orderNameBy *string, limit *int) ([]models.Munro, error) {
	return s.Query(ctx, Criteria{
		MaxHeight:     &height,
		Category:      category,
		OrderHeightBy: orderHeightBy,
		OrderNameBy:   orderNameBy,
		Limit:         limit,
	})
}

// ByHeightRange returns records in the half-open interval [minHeight, maxHeight).
func (s *Service) ByHeightRange(ctx context.Context, minHeight, maxHeight float64, category, orderHeightBy, orderNameBy *string, limit *int) ([]models.Munro, error) {
	return s.Query(ctx, Criteria{
		MinHeight:     &minHeight,
		MaxHeight:     &maxHeight,
		Category:      category,
		OrderHeightBy: orderHeightBy,
		OrderNameBy:   orderNameBy,
		Limit:         limit,
	})
}

// Query validates the criteria and applies the pipeline in fixed order:
// sort by height, sort by name, category filter, minimum height, maximum
// height, limit. The limit must stay last; applying it before the filters
// would change result sizes. Each call works on its own copy of the
// collection, so concurrent queries never share mutable state.
func (s *Service) Query(_ context.Context, c Criteria) ([]models.Munro, error) {
	if err := c.Validate(); err != nil {
		return nil, apperr.Validation(err)
	}

	result := slices.Clone(s.store.All())

	if c.OrderHeightBy != nil {
		switch models.ParseSortDirection(*c.OrderHeightBy) {
		case models.SortAsc:
			sort.SliceStable(result, func(i, j int) bool {
				return result[i].HeightInMetre < result[j].HeightInMetre
			})
		case models.SortDesc:
			sort.SliceStable(result, func(i, j int) bool {
				return result[i].HeightInMetre > result[j].HeightInMetre
			})
		}
	}

	if c.OrderNameBy != nil {
		switch models.ParseSortDirection(*c.OrderNameBy) {
		case models.SortAsc:
			sort.SliceStable(result, func(i, j int) bool {
				return result[i].Name < result[j].Name
			})
		case models.SortDesc:
			sort.SliceStable(result, func(i, j int) bool {
				return result[i].Name > result[j].Name
			})
		}
	}

	if c.Category != nil {
		cat, _ := models.ParseCategory(*c.Category) // vocabulary checked in Validate
		result = filter(result, func(m models.Munro) bool { return m.MatchesCategory(cat) })
	} else {
		result = filter(result, models.Munro.Classified)
	}

	if c.MinHeight != nil {
		lo := *c.MinHeight
		result = filter(result, func(m models.Munro) bool { return m.HeightInMetre >= lo })
	}

	if c.MaxHeight != nil {
		hi := *c.MaxHeight
		// Strictly below: a record exactly at the maximum is excluded.
		result = filter(result, func(m models.Munro) bool { return m.HeightInMetre < hi })
	}

	if c.Limit != nil && *c.Limit < len(result) {
		result = result[:*c.Limit]
	}

	return result, nil
}

// filter keeps matching records in place; in must already be a private copy.
func filter(in []models.Munro, keep func(models.Munro) bool) []models.Munro {
	out := in[:0]
	for _, m := range in {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

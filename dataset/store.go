// Package dataset provides the observation store: an ordered, growable
// sequence of rows, each a feature vector with a target value.
//
// All rows in a Store share one dimensionality D. D is either fixed when the
// store is created with NewWithDim or established by the first Append, and
// never changes afterwards. Rows are kept in one contiguous slice, so
// appends are amortized O(1).
//
// A Store is not safe for concurrent mutation.
package dataset

import (
	"iter"
	"slices"

	"github.com/YuminosukeSato/coordfit/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Row is a single observation.
type Row struct {
	Features []float64
	Target   float64
}

// Store is an ordered collection of rows with a fixed dimensionality.
// The zero value is an empty store with undetermined dimensionality.
type Store struct {
	rows []Row
	dim  int
}

// New returns an empty store. Its dimensionality is set by the first Append.
func New() *Store {
	return &Store{}
}

// NewWithDim returns an empty store whose rows must have exactly d features.
func NewWithDim(d int) (*Store, error) {
	if d <= 0 {
		return nil, errors.NewValidationError("dim", "must be positive", d)
	}
	return &Store{dim: d}, nil
}

// Append adds one row to the end of the store. The feature slice is copied.
// A row whose length differs from the store's dimensionality is rejected
// with a DimensionError and the store is left unchanged.
func (s *Store) Append(features []float64, target float64) error {
	if err := s.check("Store.Append", features); err != nil {
		return err
	}
	if s.dim == 0 {
		s.dim = len(features)
	}
	s.rows = append(s.rows, Row{Features: slices.Clone(features), Target: target})
	return nil
}

// AppendRows appends every row or none of them.
func (s *Store) AppendRows(rows ...Row) error {
	dim := s.dim
	for i, r := range rows {
		if len(r.Features) == 0 {
			return errors.NewValidationError("features", "row must have at least one feature", i)
		}
		if dim == 0 {
			dim = len(r.Features)
		}
		if len(r.Features) != dim {
			return errors.Wrapf(errors.NewDimensionError("Store.AppendRows", dim, len(r.Features), 1), "row %d", i)
		}
	}

	s.dim = dim
	s.rows = slices.Grow(s.rows, len(rows))
	for _, r := range rows {
		s.rows = append(s.rows, Row{Features: slices.Clone(r.Features), Target: r.Target})
	}
	return nil
}

func (s *Store) check(op string, features []float64) error {
	if len(features) == 0 {
		return errors.NewValidationError("features", "row must have at least one feature", len(features))
	}
	if s.dim != 0 && len(features) != s.dim {
		return errors.NewDimensionError(op, s.dim, len(features), 1)
	}
	return nil
}

// All iterates over copies of the rows in insertion order. The sequence can
// be ranged over any number of times.
func (s *Store) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, r := range s.rows {
			if !yield(i, Row{Features: slices.Clone(r.Features), Target: r.Target}) {
				return
			}
		}
	}
}

// SumSquaredResiduals returns Σ (dot(weights, features) - target)² over all
// rows. len(weights) must equal Dim.
func (s *Store) SumSquaredResiduals(weights []float64) float64 {
	var sum float64
	for _, r := range s.rows {
		diff := floats.Dot(weights, r.Features) - r.Target
		sum += diff * diff
	}
	return sum
}

// Row returns a copy of the i-th row.
func (s *Store) Row(i int) (Row, error) {
	if i < 0 || i >= len(s.rows) {
		return Row{}, errors.NewValueError("Store.Row", "index out of range")
	}
	r := s.rows[i]
	return Row{Features: slices.Clone(r.Features), Target: r.Target}, nil
}

// Len returns the number of rows.
func (s *Store) Len() int {
	return len(s.rows)
}

// Dim returns the dimensionality, or 0 while it is still undetermined.
func (s *Store) Dim() int {
	return s.dim
}

// Reset releases all rows and leaves the dimensionality undetermined, as
// if the store had just been created with New.
func (s *Store) Reset() {
	clear(s.rows)
	s.rows = nil
	s.dim = 0
}

// Matrix returns the features as an n×D matrix and the targets as a vector.
func (s *Store) Matrix() (*mat.Dense, *mat.VecDense, error) {
	n := len(s.rows)
	if n == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyStore, "Store.Matrix")
	}
	X := mat.NewDense(n, s.dim, nil)
	y := mat.NewVecDense(n, nil)
	for i, r := range s.rows {
		X.SetRow(i, r.Features)
		y.SetVec(i, r.Target)
	}
	return X, y, nil
}

// FromMatrix builds a store from an n×D feature matrix and an n×1 target.
func FromMatrix(X, y mat.Matrix) (*Store, error) {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return nil, errors.Wrap(errors.ErrEmptyStore, "FromMatrix")
	}
	if ry != r {
		return nil, errors.NewDimensionError("FromMatrix", r, ry, 0)
	}
	if cy != 1 {
		return nil, errors.NewValueError("FromMatrix", "y must be a column vector")
	}

	s := &Store{dim: c, rows: make([]Row, 0, r)}
	for i := 0; i < r; i++ {
		features := make([]float64, c)
		mat.Row(features, i, X)
		s.rows = append(s.rows, Row{Features: features, Target: y.At(i, 0)})
	}
	return s, nil
}

// Package classifier loads the pre-trained cancellation model and scores
// encoded bookings with it.
package classifier

import (
	"fmt"

	"hotel-cancellation-backend/internal/encode"
)

// Classifier scores one feature vector. Index 1 of the result is the
// probability that the booking is canceled; the pair sums to 1.
type Classifier interface {
	PredictProba(fv encode.FeatureVector) ([2]float64, error)
	// FeatureNames returns the column names the classifier was trained on,
	// or nil when the artifact does not record them.
	FeatureNames() []string
	// NumFeatures returns the width of the input the classifier expects.
	NumFeatures() int
}

// Func adapts a plain function to the Classifier interface. It reports the
// encoder's own schema.
type Func func(fv encode.FeatureVector) ([2]float64, error)

// PredictProba calls f.
func (f Func) PredictProba(fv encode.FeatureVector) ([2]float64, error) {
	return f(fv)
}

// FeatureNames returns the encoder's columns.
func (f Func) FeatureNames() []string {
	return encode.ColumnNames()
}

// NumFeatures returns the encoder's width.
func (f Func) NumFeatures() int {
	return encode.NumColumns
}

// ModelUnavailableError reports a model artifact that is missing or cannot be parsed.
type ModelUnavailableError struct {
	Path string
	Err  error
}

func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("model unavailable at %s: %v", e.Path, e.Err)
}

func (e *ModelUnavailableError) Unwrap() error {
	return e.Err
}

// SchemaMismatchError reports a model whose input columns differ from the encoder's.
type SchemaMismatchError struct {
	Position int // first differing column, -1 when only the width differs
	Expected string
	Actual   string
	Want     int
	Got      int
}

func (e *SchemaMismatchError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("feature schema mismatch: encoder produces %d columns, model expects %d", e.Want, e.Got)
	}
	return fmt.Sprintf("feature schema mismatch at column %d: encoder produces %q, model expects %q", e.Position, e.Expected, e.Actual)
}

// CheckSchema verifies that c was trained on exactly the given columns, in order.
// When c does not record feature names only the width is compared.
func CheckSchema(c Classifier, columns []string) error {
	names := c.FeatureNames()
	if names == nil {
		if c.NumFeatures() != len(columns) {
			return &SchemaMismatchError{Position: -1, Want: len(columns), Got: c.NumFeatures()}
		}
		return nil
	}

	for i := 0; i < len(columns) || i < len(names); i++ {
		var want, got string
		if i < len(columns) {
			want = columns[i]
		}
		if i < len(names) {
			got = names[i]
		}
		if want != got {
			return &SchemaMismatchError{Position: i, Expected: want, Actual: got, Want: len(columns), Got: len(names)}
		}
	}
	return nil
}

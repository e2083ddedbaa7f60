// Package predict validates a booking, scores it and shapes the outcome for display.
package predict

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hotel-cancellation-backend/internal/classifier"
	"hotel-cancellation-backend/internal/encode"
	"hotel-cancellation-backend/internal/model"
)

// Verdict is the displayed outcome of a prediction.
type Verdict string

const (
	VerdictCanceled    Verdict = "Canceled"
	VerdictNotCanceled Verdict = "Not Canceled"
)

// cancelThreshold is exclusive: a probability of exactly 0.5 is Not Canceled.
const cancelThreshold = 0.5

const (
	colorCanceled    = "#E74C3C"
	colorNotCanceled = "#2ECC71"
)

var hundred = decimal.NewFromInt(100)

// ErrConflictingHistory rejects bookings whose previous-cancellation and
// previous-kept-booking counters are both 0 or both 1.
var ErrConflictingHistory = errors.New("conflicting previous-booking history")

// ConflictingHistoryMessage is shown to the user for ErrConflictingHistory.
const ConflictingHistoryMessage = "A customer cannot have both 'Previous Cancellations' and " +
	"'Previous Bookings Not Canceled' set to 1 or both to 0."

// IsValidation reports whether err is a user-correctable input problem.
func IsValidation(err error) bool {
	var fieldErrs model.FieldErrors
	return errors.Is(err, ErrConflictingHistory) || errors.As(err, &fieldErrs)
}

// Bar is one column of the probability chart.
type Bar struct {
	Label string
	Value decimal.Decimal
	Color string
}

// Result is the outcome of one submission. It is never stored.
type Result struct {
	ID            uuid.UUID
	Date          string
	Time          string
	Verdict       Verdict
	Probability   float64 // raw P(canceled) from the classifier
	CancelPercent decimal.Decimal
	Chart         [2]Bar
}

// PercentLabel renders the cancel probability the way the result table shows it, e.g. "%37.5" or "%50.0".
func (r *Result) PercentLabel() string {
	if r.CancelPercent.IsInteger() {
		return "%" + r.CancelPercent.StringFixed(1)
	}
	return "%" + r.CancelPercent.String()
}

// BarLabel renders a bar annotation with two decimals, e.g. "62.50%".
func (b Bar) BarLabel() string {
	return b.Value.StringFixed(2) + "%"
}

// Presenter turns booking attributes into a Result using a shared classifier.
type Presenter struct {
	classifier classifier.Classifier
	now        func() time.Time
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithClock overrides the time source used to stamp results.
func WithClock(now func() time.Time) Option {
	return func(p *Presenter) {
		p.now = now
	}
}

// NewPresenter creates a Presenter around c.
func NewPresenter(c classifier.Classifier, opts ...Option) *Presenter {
	p := &Presenter{classifier: c, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Present validates attrs, scores them and builds the result. Validation
// failures are returned before the classifier is called.
func (p *Presenter) Present(attrs model.BookingAttributes) (*Result, error) {
	if err := attrs.Validate(); err != nil {
		return nil, err
	}
	if attrs.HasConflictingHistory() {
		return nil, ErrConflictingHistory
	}

	proba, err := p.classifier.PredictProba(encode.Encode(attrs))
	if err != nil {
		return nil, fmt.Errorf("classifier invocation failed: %w", err)
	}
	p1 := proba[1]
	if math.IsNaN(p1) || p1 < 0 || p1 > 1 {
		return nil, fmt.Errorf("classifier invocation failed: probability %v outside [0, 1]", p1)
	}
	return newResult(p1, p.now()), nil
}

func newResult(p1 float64, now time.Time) *Result {
	// Two places, ties to even on the binary product.
	percent := decimal.RequireFromString(strconv.FormatFloat(p1*100, 'f', 2, 64))

	verdict := VerdictNotCanceled
	if p1 > cancelThreshold {
		verdict = VerdictCanceled
	}

	return &Result{
		ID:            uuid.New(),
		Date:          now.Format("2006-01-02"),
		Time:          now.Format("15:04:05"),
		Verdict:       verdict,
		Probability:   p1,
		CancelPercent: percent,
		Chart: [2]Bar{
			{Label: "Canceled", Value: percent, Color: colorCanceled},
			{Label: "Not Canceled", Value: hundred.Sub(percent), Color: colorNotCanceled},
		},
	}
}

package model

import "strconv"

// NumericField describes a bounded number input.
type NumericField struct {
	Key     string   `json:"name"`
	Label   string   `json:"label"`
	Min     float64  `json:"min"`
	Max     *float64 `json:"max"` // nil means unbounded
	Step    float64  `json:"step"`
	Default float64  `json:"default"`

	get func(BookingAttributes) float64
}

// Value returns the field's value in a.
func (f NumericField) Value(a BookingAttributes) float64 {
	return f.get(a)
}

// ChoiceField describes a closed-choice selector.
type ChoiceField struct {
	Key     string   `json:"name"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
	Default string   `json:"default"`

	get func(BookingAttributes) string
}

// Value returns the selected option in a.
func (f ChoiceField) Value(a BookingAttributes) string {
	return f.get(a)
}

func bound(v float64) *float64 { return &v }

func intField(key, label string, max *float64, def int, get func(BookingAttributes) int) NumericField {
	return NumericField{
		Key: key, Label: label, Max: max, Step: 1, Default: float64(def),
		get: func(a BookingAttributes) float64 { return float64(get(a)) },
	}
}

// NumericFields lists the number inputs in form order. Ranges match the
// validate tags on BookingAttributes.
func NumericFields() []NumericField {
	d := DefaultBookingAttributes()
	return []NumericField{
		intField("lead_time", "Lead Time", bound(750), d.LeadTime, func(a BookingAttributes) int { return a.LeadTime }),
		intField("weekend_nights", "Weekend Nights", bound(19), d.WeekendNights, func(a BookingAttributes) int { return a.WeekendNights }),
		intField("week_nights", "Week Nights", bound(30), d.WeekNights, func(a BookingAttributes) int { return a.WeekNights }),
		intField("adults", "Adults", bound(55), d.Adults, func(a BookingAttributes) int { return a.Adults }),
		intField("children", "Children", bound(10), d.Children, func(a BookingAttributes) int { return a.Children }),
		{
			Key: "average_daily_rate", Label: "Average Daily Rate (ADR)", Max: bound(600), Step: 0.01, Default: d.AverageDailyRate,
			get: func(a BookingAttributes) float64 { return a.AverageDailyRate },
		},
		intField("special_requests", "Special Requests", bound(5), d.SpecialRequests, func(a BookingAttributes) int { return a.SpecialRequests }),
		intField("previous_cancellations", "Previous Cancellations", nil, d.PreviousCancellations, func(a BookingAttributes) int { return a.PreviousCancellations }),
		intField("previous_bookings_not_canceled", "Previous Bookings (Not Canceled)", nil, d.PreviousBookingsNotCanceled, func(a BookingAttributes) int { return a.PreviousBookingsNotCanceled }),
		intField("booking_changes", "Booking Changes", nil, d.BookingChanges, func(a BookingAttributes) int { return a.BookingChanges }),
		intField("days_in_waiting_list", "Days in Waiting List", nil, d.DaysInWaitingList, func(a BookingAttributes) int { return a.DaysInWaitingList }),
	}
}

func options[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// ChoiceFields lists the selectors in form order.
func ChoiceFields() []ChoiceField {
	d := DefaultBookingAttributes()
	parking := make([]string, len(ParkingSpaces))
	for i, p := range ParkingSpaces {
		parking[i] = strconv.Itoa(p)
	}

	return []ChoiceField{
		{
			Key: "car_parking_spaces", Label: "Car Parking Spaces", Options: parking, Default: strconv.Itoa(d.CarParkingSpaces),
			get: func(a BookingAttributes) string { return strconv.Itoa(a.CarParkingSpaces) },
		},
		{
			Key: "meal_plan", Label: "Meal Plan", Options: options(MealPlans()), Default: string(d.MealPlan),
			get: func(a BookingAttributes) string { return string(a.MealPlan) },
		},
		{
			Key: "market_segment", Label: "Market Segment", Options: options(MarketSegments()), Default: string(d.MarketSegment),
			get: func(a BookingAttributes) string { return string(a.MarketSegment) },
		},
		{
			Key: "deposit_type", Label: "Deposit Type", Options: options(DepositTypes()), Default: string(d.DepositType),
			get: func(a BookingAttributes) string { return string(a.DepositType) },
		},
		{
			Key: "customer_type", Label: "Customer Type", Options: options(CustomerTypes()), Default: string(d.CustomerType),
			get: func(a BookingAttributes) string { return string(a.CustomerType) },
		},
		{
			Key: "season", Label: "Season", Options: options(Seasons()), Default: string(d.Season),
			get: func(a BookingAttributes) string { return string(a.Season) },
		},
	}
}

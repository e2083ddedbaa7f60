package model

// MealPlan is the board basis booked with the stay.
type MealPlan string

const (
	MealBB        MealPlan = "BB"
	MealFB        MealPlan = "FB"
	MealHB        MealPlan = "HB"
	MealSC        MealPlan = "SC"
	MealUndefined MealPlan = "Undefined"
)

// MealPlans lists every meal plan in training order.
func MealPlans() []MealPlan {
	return []MealPlan{MealBB, MealFB, MealHB, MealSC, MealUndefined}
}

// Valid reports whether m is one of the known meal plans.
func (m MealPlan) Valid() bool {
	for _, v := range MealPlans() {
		if m == v {
			return true
		}
	}
	return false
}

// MarketSegment is the sales channel the booking came through.
type MarketSegment string

const (
	SegmentAviation      MarketSegment = "Aviation"
	SegmentComplementary MarketSegment = "Complementary"
	SegmentCorporate     MarketSegment = "Corporate"
	SegmentDirect        MarketSegment = "Direct"
	SegmentGroups        MarketSegment = "Groups"
	SegmentOfflineTATO   MarketSegment = "Offline TA/TO"
	SegmentOnlineTA      MarketSegment = "Online TA"
	SegmentUndefined     MarketSegment = "Undefined"
)

// MarketSegments lists every market segment in training order.
func MarketSegments() []MarketSegment {
	return []MarketSegment{
		SegmentAviation, SegmentComplementary, SegmentCorporate, SegmentDirect,
		SegmentGroups, SegmentOfflineTATO, SegmentOnlineTA, SegmentUndefined,
	}
}

// Valid reports whether s is one of the known market segments.
func (s MarketSegment) Valid() bool {
	for _, v := range MarketSegments() {
		if s == v {
			return true
		}
	}
	return false
}

// DepositType describes how the booking was secured.
type DepositType string

const (
	DepositNone       DepositType = "No Deposit"
	DepositNonRefund  DepositType = "Non Refund"
	DepositRefundable DepositType = "Refundable"
)

// DepositTypes lists every deposit type in training order.
func DepositTypes() []DepositType {
	return []DepositType{DepositNone, DepositNonRefund, DepositRefundable}
}

// Valid reports whether d is one of the known deposit types.
func (d DepositType) Valid() bool {
	for _, v := range DepositTypes() {
		if d == v {
			return true
		}
	}
	return false
}

// CustomerType is the contractual relationship with the guest.
type CustomerType string

const (
	CustomerContract       CustomerType = "Contract"
	CustomerGroup          CustomerType = "Group"
	CustomerTransient      CustomerType = "Transient"
	CustomerTransientParty CustomerType = "Transient-Party"
)

// CustomerTypes lists every customer type in training order.
func CustomerTypes() []CustomerType {
	return []CustomerType{CustomerContract, CustomerGroup, CustomerTransient, CustomerTransientParty}
}

// Valid reports whether c is one of the known customer types.
func (c CustomerType) Valid() bool {
	for _, v := range CustomerTypes() {
		if c == v {
			return true
		}
	}
	return false
}

// Season is the season of arrival.
type Season string

const (
	SeasonFall   Season = "Fall"
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonWinter Season = "Winter"
)

// Seasons lists every season in training order.
func Seasons() []Season {
	return []Season{SeasonFall, SeasonSpring, SeasonSummer, SeasonWinter}
}

// Valid reports whether s is one of the known seasons.
func (s Season) Valid() bool {
	for _, v := range Seasons() {
		if s == v {
			return true
		}
	}
	return false
}

// ParkingSpaces are the only car parking values the form offers.
var ParkingSpaces = []int{0, 1, 2, 3}

// BookingAttributes is one booking as entered by the user.
type BookingAttributes struct {
	LeadTime                    int     `json:"lead_time" form:"lead_time" validate:"min=0,max=750"`
	WeekendNights               int     `json:"weekend_nights" form:"weekend_nights" validate:"min=0,max=19"`
	WeekNights                  int     `json:"week_nights" form:"week_nights" validate:"min=0,max=30"`
	Adults                      int     `json:"adults" form:"adults" validate:"min=0,max=55"`
	Children                    int     `json:"children" form:"children" validate:"min=0,max=10"`
	AverageDailyRate            float64 `json:"average_daily_rate" form:"average_daily_rate" validate:"min=0,max=600"`
	CarParkingSpaces            int     `json:"car_parking_spaces" form:"car_parking_spaces" validate:"oneof=0 1 2 3"`
	SpecialRequests             int     `json:"special_requests" form:"special_requests" validate:"min=0,max=5"`
	PreviousCancellations       int     `json:"previous_cancellations" form:"previous_cancellations" validate:"min=0"`
	PreviousBookingsNotCanceled int     `json:"previous_bookings_not_canceled" form:"previous_bookings_not_canceled" validate:"min=0"`
	BookingChanges              int     `json:"booking_changes" form:"booking_changes" validate:"min=0"`
	DaysInWaitingList           int     `json:"days_in_waiting_list" form:"days_in_waiting_list" validate:"min=0"`

	MealPlan      MealPlan      `json:"meal_plan" form:"meal_plan" validate:"enum"`
	MarketSegment MarketSegment `json:"market_segment" form:"market_segment" validate:"enum"`
	DepositType   DepositType   `json:"deposit_type" form:"deposit_type" validate:"enum"`
	CustomerType  CustomerType  `json:"customer_type" form:"customer_type" validate:"enum"`
	Season        Season        `json:"season" form:"season" validate:"enum"`
}

// DefaultBookingAttributes returns the values the form starts with.
func DefaultBookingAttributes() BookingAttributes {
	return BookingAttributes{
		LeadTime:         100,
		WeekendNights:    1,
		WeekNights:       2,
		Adults:           2,
		AverageDailyRate: 100.0,
		MealPlan:         MealBB,
		MarketSegment:    SegmentAviation,
		DepositType:      DepositNone,
		CustomerType:     CustomerContract,
		Season:           SeasonFall,
	}
}

// HasConflictingHistory reports whether the previous-booking counters are
// both 0 or both 1. Such bookings are rejected before scoring.
// NOTE: this also rejects first-time guests (0/0); kept as-is until the
// product owner confirms whether that case should be scored.
func (a BookingAttributes) HasConflictingHistory() bool {
	c, n := a.PreviousCancellations, a.PreviousBookingsNotCanceled
	return (c == 1 && n == 1) || (c == 0 && n == 0)
}

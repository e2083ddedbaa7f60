// Package encode turns booking attributes into the feature vector the
// cancellation model was trained on.
package encode

import "hotel-cancellation-backend/internal/model"

// Column indices in training order. The order is part of the model contract.
const (
	ColLeadTime = iota
	ColWeekendNights
	ColWeekNights
	ColAdults
	ColChildren
	ColPreviousCancellations
	ColPreviousBookingsNotCanceled
	ColBookingChanges
	ColDaysInWaitingList
	ColADR
	ColCarParkingSpaces
	ColSpecialRequests

	ColMealBB
	ColMealFB
	ColMealHB
	ColMealSC
	ColMealUndefined

	ColSegmentAviation
	ColSegmentComplementary
	ColSegmentCorporate
	ColSegmentDirect
	ColSegmentGroups
	ColSegmentOfflineTATO
	ColSegmentOnlineTA
	ColSegmentUndefined

	ColDepositNone
	ColDepositNonRefund
	ColDepositRefundable

	ColCustomerContract
	ColCustomerGroup
	ColCustomerTransient
	ColCustomerTransientParty

	ColSeasonFall
	ColSeasonSpring
	ColSeasonSummer
	ColSeasonWinter

	NumColumns
)

// NumNumeric is the count of pass-through numeric columns at the head of the vector.
const NumNumeric = ColMealBB

// Columns holds the column names the model expects, indexed by the Col* constants.
var Columns = [NumColumns]string{
	ColLeadTime:                    "lead_time",
	ColWeekendNights:               "stays_in_weekend_nights",
	ColWeekNights:                  "stays_in_week_nights",
	ColAdults:                      "adults",
	ColChildren:                    "children",
	ColPreviousCancellations:       "previous_cancellations",
	ColPreviousBookingsNotCanceled: "previous_bookings_not_canceled",
	ColBookingChanges:              "booking_changes",
	ColDaysInWaitingList:           "days_in_waiting_list",
	ColADR:                         "adr",
	ColCarParkingSpaces:            "required_car_parking_spaces",
	ColSpecialRequests:             "total_of_special_requests",

	ColMealBB:        "meal_BB",
	ColMealFB:        "meal_FB",
	ColMealHB:        "meal_HB",
	ColMealSC:        "meal_SC",
	ColMealUndefined: "meal_Undefined",

	ColSegmentAviation:      "market_segment_Aviation",
	ColSegmentComplementary: "market_segment_Complementary",
	ColSegmentCorporate:     "market_segment_Corporate",
	ColSegmentDirect:        "market_segment_Direct",
	ColSegmentGroups:        "market_segment_Groups",
	ColSegmentOfflineTATO:   "market_segment_Offline TA/TO",
	ColSegmentOnlineTA:      "market_segment_Online TA",
	ColSegmentUndefined:     "market_segment_Undefined",

	ColDepositNone:       "deposit_type_No Deposit",
	ColDepositNonRefund:  "deposit_type_Non Refund",
	ColDepositRefundable: "deposit_type_Refundable",

	ColCustomerContract:       "customer_type_Contract",
	ColCustomerGroup:          "customer_type_Group",
	ColCustomerTransient:      "customer_type_Transient",
	ColCustomerTransientParty: "customer_type_Transient-Party",

	ColSeasonFall:   "season_Fall",
	ColSeasonSpring: "season_Spring",
	ColSeasonSummer: "season_Summer",
	ColSeasonWinter: "season_Winter",
}

// ColumnNames returns a copy of Columns as a slice.
func ColumnNames() []string {
	names := make([]string, NumColumns)
	copy(names, Columns[:])
	return names
}

// FeatureVector is one encoded booking, indexed by the Col* constants.
type FeatureVector [NumColumns]float64

// Get returns the value of the named column.
func (fv FeatureVector) Get(name string) (float64, bool) {
	for i, c := range Columns {
		if c == name {
			return fv[i], true
		}
	}
	return 0, false
}

// Map returns the vector keyed by column name.
func (fv FeatureVector) Map() map[string]float64 {
	m := make(map[string]float64, NumColumns)
	for i, c := range Columns {
		m[c] = fv[i]
	}
	return m
}

// Encode maps attrs onto the model's feature vector. Numeric fields are
// copied unchanged and each categorical field sets exactly one dummy column.
// attrs must have passed Validate; an unknown category leaves its group at 0.
func Encode(attrs model.BookingAttributes) FeatureVector {
	var fv FeatureVector

	fv[ColLeadTime] = float64(attrs.LeadTime)
	fv[ColWeekendNights] = float64(attrs.WeekendNights)
	fv[ColWeekNights] = float64(attrs.WeekNights)
	fv[ColAdults] = float64(attrs.Adults)
	fv[ColChildren] = float64(attrs.Children)
	fv[ColPreviousCancellations] = float64(attrs.PreviousCancellations)
	fv[ColPreviousBookingsNotCanceled] = float64(attrs.PreviousBookingsNotCanceled)
	fv[ColBookingChanges] = float64(attrs.BookingChanges)
	fv[ColDaysInWaitingList] = float64(attrs.DaysInWaitingList)
	fv[ColADR] = attrs.AverageDailyRate
	fv[ColCarParkingSpaces] = float64(attrs.CarParkingSpaces)
	fv[ColSpecialRequests] = float64(attrs.SpecialRequests)

	setDummy(&fv, mealColumn(attrs.MealPlan))
	setDummy(&fv, segmentColumn(attrs.MarketSegment))
	setDummy(&fv, depositColumn(attrs.DepositType))
	setDummy(&fv, customerColumn(attrs.CustomerType))
	setDummy(&fv, seasonColumn(attrs.Season))

	return fv
}

func setDummy(fv *FeatureVector, col int) {
	if col >= 0 {
		fv[col] = 1
	}
}

func mealColumn(m model.MealPlan) int {
	switch m {
	case model.MealBB:
		return ColMealBB
	case model.MealFB:
		return ColMealFB
	case model.MealHB:
		return ColMealHB
	case model.MealSC:
		return ColMealSC
	case model.MealUndefined:
		return ColMealUndefined
	}
	return -1
}

func segmentColumn(s model.MarketSegment) int {
	switch s {
	case model.SegmentAviation:
		return ColSegmentAviation
	case model.SegmentComplementary:
		return ColSegmentComplementary
	case model.SegmentCorporate:
		return ColSegmentCorporate
	case model.SegmentDirect:
		return ColSegmentDirect
	case model.SegmentGroups:
		return ColSegmentGroups
	case model.SegmentOfflineTATO:
		return ColSegmentOfflineTATO
	case model.SegmentOnlineTA:
		return ColSegmentOnlineTA
	case model.SegmentUndefined:
		return ColSegmentUndefined
	}
	return -1
}

func depositColumn(d model.DepositType) int {
	switch d {
	case model.DepositNone:
		return ColDepositNone
	case model.DepositNonRefund:
		return ColDepositNonRefund
	case model.DepositRefundable:
		return ColDepositRefundable
	}
	return -1
}

func customerColumn(c model.CustomerType) int {
	switch c {
	case model.CustomerContract:
		return ColCustomerContract
	case model.CustomerGroup:
		return ColCustomerGroup
	case model.CustomerTransient:
		return ColCustomerTransient
	case model.CustomerTransientParty:
		return ColCustomerTransientParty
	}
	return -1
}

func seasonColumn(s model.Season) int {
	switch s {
	case model.SeasonFall:
		return ColSeasonFall
	case model.SeasonSpring:
		return ColSeasonSpring
	case model.SeasonSummer:
		return ColSeasonSummer
	case model.SeasonWinter:
		return ColSeasonWinter
	}
	return -1
}

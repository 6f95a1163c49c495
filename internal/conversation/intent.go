package conversation

// Intent identifies what the customer is trying to accomplish. The set is
// closed; anything the classifier cannot place lands on IntentHumanAgent.
type Intent string

const (
	IntentCheckBaggageAllowance        Intent = "check_baggage_allowance"
	IntentGetBoardingPass              Intent = "get_boarding_pass"
	IntentPrintBoardingPass            Intent = "print_boarding_pass"
	IntentCheckCancellationFee         Intent = "check_cancellation_fee"
	IntentCheckIn                      Intent = "check_in"
	IntentHumanAgent                   Intent = "human_agent"
	IntentBookFlight                   Intent = "book_flight"
	IntentCancelFlight                 Intent = "cancel_flight"
	IntentChangeFlight                 Intent = "change_flight"
	IntentCheckFlightInsuranceCoverage Intent = "check_flight_insurance_coverage"
	IntentCheckFlightOffers            Intent = "check_flight_offers"
	IntentCheckFlightPrices            Intent = "check_flight_prices"
	IntentCheckFlightReservation       Intent = "check_flight_reservation"
	IntentCheckFlightStatus            Intent = "check_flight_status"
	IntentPurchaseFlightInsurance      Intent = "purchase_flight_insurance"
	IntentSearchFlight                 Intent = "search_flight"
	IntentSearchFlightInsurance        Intent = "search_flight_insurance"
	IntentCheckTripPrices              Intent = "check_trip_prices"
	IntentGetRefund                    Intent = "get_refund"
	IntentChangeSeat                   Intent = "change_seat"
	IntentChooseSeat                   Intent = "choose_seat"
	IntentCheckArrivalTime             Intent = "check_arrival_time"
	IntentCheckDepartureTime           Intent = "check_departure_time"
	IntentBookTrip                     Intent = "book_trip"
	IntentCancelTrip                   Intent = "cancel_trip"
	IntentChangeTrip                   Intent = "change_trip"
	IntentCheckTripDetails             Intent = "check_trip_details"
	IntentCheckTripInsuranceCoverage   Intent = "check_trip_insurance_coverage"
	IntentCheckTripOffers              Intent = "check_trip_offers"
	IntentCheckTripPlan                Intent = "check_trip_plan"
	IntentPurchaseTripInsurance        Intent = "purchase_trip_insurance"
	IntentSearchTrip                   Intent = "search_trip"
	IntentSearchTripInsurance          Intent = "search_trip_insurance"
)

// AllIntents lists every recognized intent in the order presented to the
// classifier model.
var AllIntents = []Intent{
	IntentCheckBaggageAllowance, IntentGetBoardingPass, IntentPrintBoardingPass,
	IntentCheckCancellationFee, IntentCheckIn, IntentHumanAgent, IntentBookFlight,
	IntentCancelFlight, IntentChangeFlight, IntentCheckFlightInsuranceCoverage,
	IntentCheckFlightOffers, IntentCheckFlightPrices, IntentCheckFlightReservation,
	IntentCheckFlightStatus, IntentPurchaseFlightInsurance, IntentSearchFlight,
	IntentSearchFlightInsurance, IntentCheckTripPrices, IntentGetRefund,
	IntentChangeSeat, IntentChooseSeat, IntentCheckArrivalTime,
	IntentCheckDepartureTime, IntentBookTrip, IntentCancelTrip, IntentChangeTrip,
	IntentCheckTripDetails, IntentCheckTripInsuranceCoverage, IntentCheckTripOffers,
	IntentCheckTripPlan, IntentPurchaseTripInsurance, IntentSearchTrip,
	IntentSearchTripInsurance,
}

var intentDescriptions = map[Intent]string{
	IntentCheckBaggageAllowance:        "Inquire about how much baggage is allowed on a flight",
	IntentGetBoardingPass:              "Request to receive a boarding pass",
	IntentPrintBoardingPass:            "Request to print a physical boarding pass",
	IntentCheckCancellationFee:         "Ask about fees for cancelling a booking",
	IntentCheckIn:                      "Request to check in for a flight",
	IntentHumanAgent:                   "Request to speak with a human customer service agent",
	IntentBookFlight:                   "Request to book a new flight",
	IntentCancelFlight:                 "Request to cancel an existing flight booking",
	IntentChangeFlight:                 "Request to make changes to an existing flight booking",
	IntentCheckFlightInsuranceCoverage: "Inquire about what flight insurance covers",
	IntentCheckFlightOffers:            "Ask about current flight deals or special offers",
	IntentCheckFlightPrices:            "Inquire about prices for specific flights",
	IntentCheckFlightReservation:       "Check details of an existing flight reservation",
	IntentCheckFlightStatus:            "Inquire if a flight is on time, delayed, or cancelled",
	IntentPurchaseFlightInsurance:      "Request to buy insurance for a flight",
	IntentSearchFlight:                 "Search for available flights",
	IntentSearchFlightInsurance:        "Look for information about flight insurance options",
	IntentCheckTripPrices:              "Ask about the cost of travel packages",
	IntentGetRefund:                    "Request a refund for a cancelled booking",
	IntentChangeSeat:                   "Request to change seat assignment on a booked flight",
	IntentChooseSeat:                   "Request to select a seat on a flight",
	IntentCheckArrivalTime:             "Inquire about when a flight will arrive",
	IntentCheckDepartureTime:           "Inquire about when a flight will depart",
	IntentBookTrip:                     "Request to book a complete travel package",
	IntentCancelTrip:                   "Request to cancel an existing trip or travel package",
	IntentChangeTrip:                   "Request to modify an existing trip booking",
	IntentCheckTripDetails:             "Check details of an existing trip reservation",
	IntentCheckTripInsuranceCoverage:   "Inquire about what travel package insurance covers",
	IntentCheckTripOffers:              "Ask about current travel package deals or special offers",
	IntentCheckTripPlan:                "Review itinerary or plan for a trip",
	IntentPurchaseTripInsurance:        "Request to buy insurance for a travel package",
	IntentSearchTrip:                   "Search for available travel packages",
	IntentSearchTripInsurance:          "Look for information about travel package insurance options",
}

var validIntents = func() map[Intent]struct{} {
	m := make(map[Intent]struct{}, len(AllIntents))
	for _, intent := range AllIntents {
		m[intent] = struct{}{}
	}
	return m
}()

// Valid reports whether the intent is a member of the recognized set.
func (i Intent) Valid() bool {
	_, ok := validIntents[i]
	return ok
}

// Description returns the one-line description shown to the classifier
// model, or an empty string for unknown intents.
func (i Intent) Description() string {
	return intentDescriptions[i]
}

package conversation

import (
	"fmt"
	"strings"
)

// systemPersona is the assistant persona shared by every response prompt.
const systemPersona = `You are an intelligent virtual assistant for New Zealand Tours & Travel.
You provide helpful, accurate, and friendly responses about flights, accommodations, tours, and travel services in New Zealand.
Always be polite and professional. If you don't know something, say so rather than making up information.`

const genericInstruction = `Answer the user's question based on the retrieved information.`

var intentInstructions = map[Intent]string{
	IntentCheckBaggageAllowance: `Based on the retrieved information about baggage policies, answer the user's question about baggage allowance.
Include details about weight limits, dimensions, and any fees for extra or overweight baggage if relevant.
Make sure to distinguish between domestic and international policies if applicable.`,

	IntentGetBoardingPass: `Explain to the user how they can get their boarding pass based on the retrieved information.
Include options like online check-in, mobile app, airport kiosks, or check-in counters.
Mention any timing requirements or document needs.`,

	IntentPrintBoardingPass: `Provide instructions on how to print a boarding pass based on the retrieved information.
Include options such as online printing after check-in, printing at airport kiosks, or at check-in counters.`,

	IntentCheckCancellationFee: `Based on the retrieved cancellation policy information, explain the applicable cancellation fees.
Consider the type of booking (flight or tour package), airline or package type, and timing of cancellation if mentioned.
Be specific about refund amounts or percentages when possible.`,

	IntentCheckIn: `Provide information about the check-in process based on the retrieved information.
Include online and airport check-in options, timing requirements, and necessary documents.
If the user has a specific booking reference, provide specific check-in instructions if possible.`,

	IntentHumanAgent: `Acknowledge the user's request to speak with a human agent.
Provide contact information for customer service: phone +64 9 123 4567, email support@nztours.co.nz.
Mention operating hours: Monday-Friday 8am-8pm, Saturday-Sunday 9am-5pm (New Zealand Time).`,

	IntentBookFlight: `Based on the retrieved flight information, help the user book a flight.
Ask for any missing details like origin, destination, dates, passenger count, and preferences.
Present flight options with times and prices if available in the retrieved information.
Explain next steps in the booking process.`,

	IntentCancelFlight: `Guide the user through cancelling their flight based on the retrieved information.
Explain the cancellation policy and any fees that may apply.
Request the booking reference if not provided and outline the cancellation process.`,

	IntentChangeFlight: `Help the user change their flight booking based on the retrieved information.
Explain any change fees or fare differences that might apply.
Request the booking reference if not provided and outline the change process.`,

	IntentCheckFlightInsuranceCoverage: `Based on the retrieved insurance policy information, explain what is covered under flight insurance.
Include details about cancellation coverage, medical emergencies, baggage loss, etc.
Clarify any exclusions or limitations in the coverage.`,

	IntentCheckFlightOffers: `Share current flight offers and deals based on the retrieved information.
Include details about special prices, promotions, or seasonal offers.
Specify routes, travel periods, and any conditions that apply to the offers.`,

	IntentCheckFlightPrices: `Provide flight pricing information based on the retrieved data.
Include prices for different airlines, routes, or dates if available.
Mention any factors that affect pricing like season, advance booking, or fare class.`,

	IntentCheckFlightReservation: `Help the user check their flight reservation details.
Ask for their booking reference if not provided.
Provide information about the flight times, dates, passenger details, and status if available.`,

	IntentCheckFlightStatus: `Provide information about the status of flights based on the retrieved data.
Include details about scheduled departure/arrival times and any known delays.
Request flight number or route details if not provided.`,

	IntentPurchaseFlightInsurance: `Guide the user through purchasing flight insurance based on the retrieved insurance options.
Explain the different coverage options, costs, and benefits.
Outline the process for adding insurance to their booking.`,

	IntentSearchFlight: `Help the user search for flights based on their criteria and the retrieved flight data.
Ask for any missing details like origin, destination, dates, and preferences.
Present matching flight options with times, airlines, and prices if available.`,

	IntentSearchFlightInsurance: `Provide information about available flight insurance options based on the retrieved data.
Compare different coverage levels, benefits, and prices.
Explain how the user can select and purchase appropriate insurance.`,

	IntentCheckTripPrices: `Share information about tour package prices based on the retrieved data.
Include details about different package types, durations, and what's included in the price.
Mention factors that affect pricing like season, group size, or accommodation level.`,

	IntentGetRefund: `Explain the refund process based on the retrieved information.
Clarify eligible refund amounts based on cancellation policies.
Outline the steps for requesting a refund and expected processing times.`,

	IntentChangeSeat: `Guide the user through changing their seat assignment based on the retrieved information.
Explain any fees or limitations that may apply.
Outline the process for selecting a new seat and making the change.`,

	IntentChooseSeat: `Help the user select a seat based on the retrieved information.
Explain seat selection options, any associated fees, and how to make the selection.
Request booking details if needed to assist with the seat selection process.`,

	IntentCheckArrivalTime: `Provide information about flight arrival times based on the retrieved data.
Include scheduled arrival times and any known updates or delays.
Request flight number or route details if not provided.`,

	IntentCheckDepartureTime: `Share information about flight departure times based on the retrieved data.
Include scheduled departure times and any known updates or delays.
Request flight number or route details if not provided.`,

	IntentBookTrip: `Help the user book a tour package based on the retrieved information.
Ask for any missing details like destinations of interest, dates, number of travelers, and preferences.
Present suitable package options with details and prices if available.
Explain the booking process and next steps.`,

	IntentCancelTrip: `Guide the user through cancelling their tour package based on the retrieved information.
Explain the cancellation policy and any fees that may apply.
Request the booking reference if not provided and outline the cancellation process.`,

	IntentChangeTrip: `Help the user change their tour package booking based on the retrieved information.
Explain any change fees or price differences that might apply.
Request the booking reference if not provided and outline the change process.`,

	IntentCheckTripDetails: `Provide information about the user's tour package booking based on the retrieved data.
Ask for their booking reference if not provided.
Share details about itinerary, accommodations, included services, and important dates.`,

	IntentCheckTripInsuranceCoverage: `Based on the retrieved insurance policy information, explain what is covered under tour package insurance.
Include details about cancellation coverage, medical emergencies, activity coverage, etc.
Clarify any exclusions or limitations in the coverage.`,

	IntentCheckTripOffers: `Share current tour package offers and deals based on the retrieved information.
Include details about special prices, promotions, or seasonal offers.
Specify package types, travel periods, and any conditions that apply to the offers.`,

	IntentCheckTripPlan: `Help the user review their tour itinerary or plan based on the retrieved information.
Ask for their booking reference if not provided.
Provide day-by-day breakdown of activities, accommodations, and services if available.`,

	IntentPurchaseTripInsurance: `Guide the user through purchasing tour package insurance based on the retrieved options.
Explain the different coverage options, costs, and benefits.
Outline the process for adding insurance to their booking.`,

	IntentSearchTrip: `Help the user search for tour packages based on their criteria and the retrieved data.
Ask for any missing details like destinations of interest, dates, duration, and preferences.
Present matching package options with details and prices if available.`,

	IntentSearchTripInsurance: `Provide information about available tour package insurance options based on the retrieved data.
Compare different coverage levels, benefits, and prices.
Explain how the user can select and purchase appropriate insurance.`,
}

// BuildPrompt assembles the full generation prompt for an intent: the shared
// persona, the intent-specific instruction, the retrieved context, and the
// user's question. Unknown intents get a generic answering instruction.
func BuildPrompt(intent Intent, contextDocs []ScoredDocument, question string) string {
	instruction, ok := intentInstructions[intent]
	if !ok {
		instruction = genericInstruction
	}

	var contextText strings.Builder
	for i, doc := range contextDocs {
		if i > 0 {
			contextText.WriteString("\n\n")
		}
		contextText.WriteString(strings.TrimSpace(doc.Content))
	}
	contextValue := contextText.String()
	if contextValue == "" {
		contextValue = "No relevant information was found in the knowledge base."
	}

	return fmt.Sprintf(`%s

%s

Context information from our knowledge base:
%s

User query: %s

Please provide a helpful, accurate, and friendly response that directly addresses the user's query.`,
		systemPersona, instruction, contextValue, question)
}

package dataset

func baggagePolicies() BaggagePolicies {
	return BaggagePolicies{
		Domestic: map[string]BaggageRule{
			"Air New Zealand": {
				CarryOnWeight:     "7kg",
				CarryOnDimensions: "118cm (46in) total linear dimensions",
				CarryOnItems:      "1 bag + 1 small personal item",
				CheckedIncluded:   "1 x 23kg bag",
				CheckedExtra:      "$35 NZD per additional bag (up to 23kg)",
				CheckedOverweight: "$60 NZD per bag (23-32kg)",
			},
			"Jetstar": {
				CarryOnWeight:     "7kg",
				CarryOnDimensions: "56cm x 36cm x 23cm",
				CarryOnItems:      "1 bag only (no personal item unless upgraded)",
				CheckedIncluded:   "No free allowance on Starter fares",
				CheckedExtra:      "$45 NZD for first bag (up to 20kg), $65 NZD for additional",
				CheckedOverweight: "$25 NZD per kg over allowance",
			},
		},
		International: map[string]BaggageRule{
			"Air New Zealand": {
				CarryOnWeight:     "7kg",
				CarryOnDimensions: "118cm (46in) total linear dimensions",
				CarryOnItems:      "1 bag + 1 small personal item",
				CheckedIncluded:   "Economy: 1 x 23kg, Premium Economy: 2 x 23kg, Business: 3 x 23kg",
				CheckedExtra:      "$70 NZD per additional bag (up to 23kg)",
				CheckedOverweight: "$150 NZD per bag (23-32kg)",
			},
			"Singapore Airlines": {
				CarryOnWeight:     "7kg",
				CarryOnDimensions: "115cm (45in) total linear dimensions",
				CarryOnItems:      "1 bag + 1 small personal item",
				CheckedIncluded:   "Economy: 30kg, Premium Economy: 35kg, Business: 40kg, First: 50kg",
				CheckedExtra:      "Charged by weight, from $100 NZD",
				CheckedOverweight: "Included in weight-based system",
			},
			"Emirates": {
				CarryOnWeight:     "7kg",
				CarryOnDimensions: "55cm x 38cm x 20cm",
				CarryOnItems:      "1 bag + 1 small personal item",
				CheckedIncluded:   "Economy: 30kg, Business: 40kg, First: 50kg",
				CheckedExtra:      "Charged by weight, from $120 NZD",
				CheckedOverweight: "Included in weight-based system",
			},
			"Qantas": {
				CarryOnWeight:     "7kg",
				CarryOnDimensions: "115cm (45in) total linear dimensions",
				CarryOnItems:      "1 bag + 1 small personal item",
				CheckedIncluded:   "Economy: 30kg, Premium Economy: 40kg, Business: 40kg, First: 50kg",
				CheckedExtra:      "$90 NZD per additional bag (up to 23kg)",
				CheckedOverweight: "$100 NZD per bag (23-32kg)",
			},
		},
	}
}

func cancellationPolicies() CancellationPolicies {
	return CancellationPolicies{
		Flights: map[string]map[string]map[string]string{
			"Air New Zealand": {
				"flexible_fare": {
					"up_to_24h":    "Full refund minus $50 NZD service fee",
					"less_than_24h": "Full refund minus $100 NZD service fee",
					"no_show":      "No refund",
				},
				"standard_fare": {
					"up_to_72h":    "75% refund",
					"24h_to_72h":   "50% refund",
					"less_than_24h": "No refund",
					"no_show":      "No refund",
				},
				"saver_fare": {
					"any_time": "No refund, credit valid for 12 months minus $100 NZD fee",
				},
			},
			"Jetstar": {
				"flex_bundle": {
					"any_time": "Full refund as travel credit valid for 12 months",
				},
				"standard_fare": {
					"any_time": "No refund",
				},
			},
			"Qantas": {
				"flexible_fare": {
					"up_to_24h":    "Full refund",
					"less_than_24h": "Full refund minus $75 NZD service fee",
					"no_show":      "No refund",
				},
				"standard_fare": {
					"up_to_72h":    "70% refund",
					"less_than_72h": "No refund",
					"no_show":      "No refund",
				},
			},
			"Singapore Airlines": {
				"flexi": {
					"up_to_24h":    "Full refund",
					"less_than_24h": "Full refund minus $100 NZD service fee",
					"no_show":      "75% refund",
				},
				"standard": {
					"up_to_7d":     "75% refund",
					"less_than_7d": "50% refund",
					"less_than_24h": "25% refund",
					"no_show":      "No refund",
				},
				"lite": {
					"any_time": "No refund",
				},
			},
		},
		TourPackages: map[string]map[string]string{
			"standard_packages": {
				"more_than_60d": "Full refund minus $200 NZD deposit",
				"30d_to_60d":    "75% refund",
				"15d_to_30d":    "50% refund",
				"7d_to_15d":     "25% refund",
				"less_than_7d":  "No refund",
			},
			"premium_packages": {
				"more_than_60d": "Full refund minus $300 NZD deposit",
				"30d_to_60d":    "80% refund",
				"15d_to_30d":    "60% refund",
				"7d_to_15d":     "40% refund",
				"less_than_7d":  "No refund",
			},
			"special_events": {
				"any_time": "No refund unless covered by travel insurance",
			},
			"with_insurance": {
				"covered_reason":     "Full refund minus insurance premium",
				"non_covered_reason": "Subject to standard cancellation policies",
			},
		},
	}
}

func insurancePolicies() map[string]InsurancePolicy {
	return map[string]InsurancePolicy{
		"basic_coverage": {
			PricePercentage: "5% of trip cost",
			Benefits: map[string]string{
				"trip_cancellation":    "Up to 100% of trip cost for covered reasons",
				"trip_interruption":    "Up to 100% of trip cost for covered reasons",
				"emergency_medical":    "Up to $50,000 NZD",
				"emergency_evacuation": "Up to $100,000 NZD",
				"baggage_loss":         "Up to $1,000 NZD",
				"baggage_delay":        "$100 NZD per day (maximum $300 NZD)",
				"travel_delay":         "$200 NZD per day (maximum $600 NZD)",
			},
			CoveredReasons: []string{
				"Illness or injury of traveler or family member",
				"Death of traveler or family member",
				"Natural disaster at destination",
				"Terrorism at destination (within 30 days of arrival)",
				"Involuntary job termination",
			},
			Exclusions: []string{
				"Pre-existing medical conditions",
				"Extreme sports and activities",
				"Self-inflicted injuries",
				"Alcohol or drug-related incidents",
				"War or civil unrest",
			},
		},
		"comprehensive_coverage": {
			PricePercentage: "8% of trip cost",
			Benefits: map[string]string{
				"trip_cancellation":    "Up to 150% of trip cost for any reason",
				"trip_interruption":    "Up to 150% of trip cost for any reason",
				"emergency_medical":    "Up to $100,000 NZD",
				"emergency_evacuation": "Up to $250,000 NZD",
				"baggage_loss":         "Up to $2,500 NZD",
				"baggage_delay":        "$200 NZD per day (maximum $600 NZD)",
				"travel_delay":         "$300 NZD per day (maximum $900 NZD)",
				"missed_connection":    "Up to $500 NZD",
				"rental_car_damage":    "Up to $35,000 NZD",
				"adventure_activities": "Covered",
			},
			CoveredReasons: []string{
				"All reasons covered under Basic plan",
				"Pre-existing medical conditions (with stability period)",
				"Work-related reasons",
				"School-related reasons",
				"Change of mind (Cancel For Any Reason - 75% reimbursement)",
				"Pregnancy complications",
				"Military obligations",
			},
			Exclusions: []string{
				"Illegal activities",
				"Self-inflicted injuries",
				"Participating in professional sports",
				"Traveling against physician advice",
			},
		},
		"adventure_coverage": {
			PricePercentage: "10% of trip cost",
			Benefits: map[string]string{
				"trip_cancellation":    "Up to 150% of trip cost for any reason",
				"trip_interruption":    "Up to 150% of trip cost for any reason",
				"emergency_medical":    "Up to $250,000 NZD",
				"emergency_evacuation": "Up to $500,000 NZD",
				"baggage_loss":         "Up to $3,500 NZD",
				"baggage_delay":        "$300 NZD per day (maximum $900 NZD)",
				"travel_delay":         "$400 NZD per day (maximum $1,200 NZD)",
				"missed_connection":    "Up to $1,000 NZD",
				"rental_car_damage":    "Up to $50,000 NZD",
				"search_and_rescue":    "Up to $25,000 NZD",
				"extreme_sports":       "Full coverage for bungee jumping, skydiving, white water rafting, etc.",
			},
			CoveredReasons: []string{
				"All reasons covered under Comprehensive plan",
				"Adventure sports and activities injuries",
				"Weather conditions affecting sporting events",
				"Equipment damage or loss",
			},
			Exclusions: []string{
				"Illegal activities",
				"Self-inflicted injuries",
				"Intoxication-related incidents",
			},
		},
	}
}

func faqData() FAQs {
	return FAQs{
		"check_in": {
			"online_check_in":    "Online check-in opens 24 hours before your flight and closes 90 minutes before departure for domestic flights and 2 hours before for international flights.",
			"airport_check_in":   "Airport check-in counters open 2 hours before domestic flights and 3 hours before international flights. Counters close 45 minutes before departure for domestic and 60 minutes for international.",
			"documents_required": "For domestic flights: Photo ID and booking reference. For international flights: Valid passport, visa (if required), and booking reference.",
			"baggage_drop":       "Baggage drop closes 45 minutes before domestic flights and 60 minutes before international flights.",
		},
		"boarding_pass": {
			"digital_pass":       "Digital boarding passes are available through our mobile app or can be emailed to you after check-in.",
			"print_requirements": "If you prefer a printed boarding pass, you can print it at home after online check-in or at airport kiosks/check-in counters.",
			"lost_pass":          "If you lose your boarding pass, please visit the check-in counter with your ID for a replacement.",
			"mobile_pass":        "Mobile boarding passes can be added to Apple Wallet or Google Pay for convenient access.",
		},
		"baggage": {
			"prohibited_items": "Prohibited items include flammable materials, explosives, weapons, some lithium batteries. For full list, visit our website safety section.",
			"special_items":    "Special items like sports equipment, musical instruments, or medical devices may require pre-approval. Please contact us 48 hours before departure.",
			"delayed_baggage":  "For delayed baggage, please file a report at the airport baggage service counter before leaving. We'll deliver your bag to your accommodation when found.",
			"damaged_baggage":  "Report damaged baggage immediately at the airport. Claims must be filed within 24 hours for domestic and 7 days for international flights.",
		},
		"booking_changes": {
			"name_change":   "Name corrections up to 3 characters are free. Full name changes are subject to a fee of $50 NZD for domestic and $100 NZD for international bookings.",
			"date_change":   "Date changes are subject to fare difference plus a change fee depending on your fare type and how far in advance the change is made.",
			"route_change":  "Route changes are treated as a new booking. Cancellation terms apply to the original booking, and the new booking will be at current rates.",
			"add_passenger": "Adding passengers to an existing booking isn't possible. Please make a separate booking for additional travelers.",
		},
		"refunds": {
			"processing_time": "Refunds typically take 7-10 business days to process and appear on your statement, depending on your payment method and bank.",
			"partial_refunds": "Partial refunds may apply when only portion of the journey is cancelled or based on our cancellation policy terms.",
			"refund_methods":  "Refunds are processed to the original payment method. For expired cards, please contact our customer service.",
			"tax_refunds":     "Airport taxes and fees are refundable even on non-refundable tickets if you do not travel.",
		},
		"travel_requirements": {
			"covid19":           "COVID-19 requirements vary by destination and change frequently. Please check the latest requirements on our website before travel.",
			"visa_info":         "Visa requirements depend on your nationality and destination. New Zealand citizens typically need a visa for many countries outside of New Zealand, Australia, and visa waiver countries.",
			"passport_validity": "Your passport should be valid for at least 6 months beyond your planned return date for most international travel.",
			"travel_insurance":  "Travel insurance is highly recommended for all international travel and optional for domestic. We offer insurance during the booking process.",
		},
	}
}

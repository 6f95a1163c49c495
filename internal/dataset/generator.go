package dataset

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// GeneratorConfig controls dataset generation. The same seed always yields the
// same dataset, regardless of platform.
type GeneratorConfig struct {
	Seed         int64
	NumBookings  int
	NumCustomers int
	// Now anchors booking and travel dates. Zero means time.Now().
	Now time.Time
}

var nzAirports = []string{
	"Auckland Airport (AKL)", "Wellington Airport (WLG)", "Christchurch Airport (CHC)",
	"Queenstown Airport (ZQN)", "Dunedin Airport (DUD)", "Hamilton Airport (HLZ)",
	"Rotorua Airport (ROT)", "Tauranga Airport (TRG)",
}

var internationalAirports = []string{
	"Sydney Airport (SYD)", "Melbourne Airport (MEL)", "Los Angeles Airport (LAX)",
	"Singapore Changi Airport (SIN)", "Tokyo Narita Airport (NRT)", "London Heathrow (LHR)",
}

var airlines = []string{
	"Air New Zealand", "Jetstar", "Qantas", "Singapore Airlines", "Emirates", "Cathay Pacific",
}

// Generate builds the full synthetic dataset from a seeded pseudo-random
// source. It performs no I/O.
func Generate(cfg GeneratorConfig) *Dataset {
	if cfg.NumBookings <= 0 {
		cfg.NumBookings = 50
	}
	if cfg.NumCustomers <= 0 {
		cfg.NumCustomers = 20
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	ds := &Dataset{
		Flights:              generateFlights(rng),
		TourPackages:         generateTourPackages(rng),
		Customers:            generateCustomers(cfg.NumCustomers),
		BaggagePolicies:      baggagePolicies(),
		CancellationPolicies: cancellationPolicies(),
		InsurancePolicies:    insurancePolicies(),
		FAQs:                 faqData(),
	}
	ds.Bookings = generateBookings(cfg.NumBookings, cfg.Now, ds.Flights, ds.TourPackages)
	return ds
}

func generateFlights(rng *rand.Rand) []Flight {
	var flights []Flight

	// Domestic: every ordered airport pair, first two airlines, a morning and
	// an afternoon departure per route.
	for _, origin := range nzAirports {
		for _, destination := range nzAirports {
			if origin == destination {
				continue
			}
			for _, airline := range airlines[:2] {
				flightNumber := fmt.Sprintf("%s%d", airlinePrefix(airline), 100+rng.Intn(900))
				basePrice := 100 + rng.Intn(300)

				flights = append(flights, Flight{
					FlightID:         newRecordID(rng),
					Airline:          airline,
					FlightNumber:     flightNumber + "M",
					Origin:           origin,
					Destination:      destination,
					DepartureTime:    "07:30",
					ArrivalTime:      "09:15",
					Duration:         "1h 45m",
					Aircraft:         "Airbus A320",
					Price:            basePrice,
					RouteType:        "domestic",
					BaggageAllowance: "1 x 23kg checked, 7kg carry-on",
				})
				flights = append(flights, Flight{
					FlightID:         newRecordID(rng),
					Airline:          airline,
					FlightNumber:     flightNumber + "A",
					Origin:           origin,
					Destination:      destination,
					DepartureTime:    "14:45",
					ArrivalTime:      "16:30",
					Duration:         "1h 45m",
					Aircraft:         "Airbus A320",
					Price:            basePrice - 20,
					RouteType:        "domestic",
					BaggageAllowance: "1 x 23kg checked, 7kg carry-on",
				})
			}
		}
	}

	// International round trips between Auckland and the hub airports.
	const aucklandAirport = "Auckland Airport (AKL)"
	for _, destination := range internationalAirports {
		duration := internationalDuration(destination)
		for _, airline := range airlines {
			flightNumber := fmt.Sprintf("%s%d", airlinePrefix(airline), 500+rng.Intn(500))
			basePrice := 800 + rng.Intn(1200)
			aircraft := "Boeing 787-9"
			if rng.Intn(2) == 1 {
				aircraft = "Airbus A350"
			}

			flights = append(flights, Flight{
				FlightID:         newRecordID(rng),
				Airline:          airline,
				FlightNumber:     flightNumber,
				Origin:           aucklandAirport,
				Destination:      destination,
				DepartureTime:    "23:45",
				ArrivalTime:      "varies by timezone",
				Duration:         duration,
				Aircraft:         aircraft,
				Price:            basePrice,
				RouteType:        "international",
				BaggageAllowance: "2 x 23kg checked, 7kg carry-on",
			})
			flights = append(flights, Flight{
				FlightID:         newRecordID(rng),
				Airline:          airline,
				FlightNumber:     flightNumber + "R",
				Origin:           destination,
				Destination:      aucklandAirport,
				DepartureTime:    "09:30",
				ArrivalTime:      "varies by timezone",
				Duration:         duration,
				Aircraft:         aircraft,
				Price:            basePrice + 50,
				RouteType:        "international",
				BaggageAllowance: "2 x 23kg checked, 7kg carry-on",
			})
		}
	}

	return flights
}

func internationalDuration(destination string) string {
	switch {
	case strings.Contains(destination, "SYD"), strings.Contains(destination, "MEL"):
		return "3h 30m"
	case strings.Contains(destination, "SIN"), strings.Contains(destination, "NRT"):
		return "10h 15m"
	case strings.Contains(destination, "LAX"):
		return "12h 30m"
	default: // London
		return "24h 0m"
	}
}

type packageTemplate struct {
	name        string
	description string
	locations   []string
	tourType    string
	basePrice   int
}

var packageTemplates = []packageTemplate{
	{
		name:        "North Island Explorer",
		description: "Discover the volcanic landscapes, Maori culture and urban centers of New Zealand's North Island.",
		locations:   []string{"Auckland", "Rotorua", "Wellington", "Bay of Islands", "Hobbiton"},
		tourType:    "Cultural",
		basePrice:   1200,
	},
	{
		name:        "South Island Adventure",
		description: "Experience the breathtaking mountains, fjords, and glaciers of New Zealand's South Island.",
		locations:   []string{"Christchurch", "Queenstown", "Milford Sound", "Franz Josef Glacier", "Lake Tekapo"},
		tourType:    "Adventure",
		basePrice:   1400,
	},
	{
		name:        "Lord of the Rings Journey",
		description: "Visit the iconic filming locations from the Lord of the Rings trilogy across New Zealand.",
		locations:   []string{"Hobbiton", "Tongariro National Park", "Wellington", "Queenstown", "Fiordland"},
		tourType:    "Lord of the Rings",
		basePrice:   1600,
	},
	{
		name:        "Wine & Cuisine Tour",
		description: "Indulge in New Zealand's finest wines and cuisine across renowned food regions.",
		locations:   []string{"Marlborough", "Hawke's Bay", "Wellington", "Waiheke Island", "Central Otago"},
		tourType:    "Wine & Food",
		basePrice:   1800,
	},
	{
		name:        "Extreme Sports Package",
		description: "Experience the thrill of New Zealand's adventure capital with bungee jumping, skydiving, and more.",
		locations:   []string{"Queenstown", "Rotorua", "Taupo", "Abel Tasman", "Auckland"},
		tourType:    "Adventure",
		basePrice:   2000,
	},
	{
		name:        "Relaxation Retreat",
		description: "Unwind with hot springs, spas, and peaceful landscapes across New Zealand's most serene locations.",
		locations:   []string{"Rotorua", "Hanmer Springs", "Coromandel", "Waiheke Island", "Lake Tekapo"},
		tourType:    "Relaxation",
		basePrice:   1700,
	},
	{
		name:        "Hiking & Nature Immersion",
		description: "Trek through New Zealand's most stunning natural environments on guided hiking tours.",
		locations:   []string{"Tongariro", "Abel Tasman", "Milford Track", "Routeburn Track", "Fiordland"},
		tourType:    "Nature",
		basePrice:   1300,
	},
}

var packageDurations = []int{3, 5, 7, 10, 14}

func generateTourPackages(rng *rand.Rand) []TourPackage {
	var packages []TourPackage

	for _, tmpl := range packageTemplates {
		for _, duration := range packageDurations {
			// Base price is normalized to a 7-day trip.
			price := duration * tmpl.basePrice / 7

			locations := tmpl.locations
			if duration <= 5 {
				locations = tmpl.locations[:3]
			}

			variants := []string{"Standard"}
			if duration >= 7 {
				variants = append(variants, "Premium")
			}
			if duration <= 5 {
				variants = append(variants, "Budget")
			}

			for _, variant := range variants {
				variantPrice := price
				var accommodation, meals, transport string
				switch variant {
				case "Premium":
					variantPrice = price * 14 / 10
					accommodation = "4-5 star hotels"
					meals = "All meals included with premium dining experiences"
					transport = "Private transportation and domestic flights where applicable"
				case "Budget":
					variantPrice = price * 7 / 10
					accommodation = "Hostels and 2-3 star hotels"
					meals = "Breakfast included, other meals self-catered"
					transport = "Public transportation and group shuttles"
				default:
					accommodation = "3-4 star hotels"
					meals = "Breakfast and dinner included"
					transport = "Mix of private and public transportation"
				}

				name := fmt.Sprintf("%d-Day %s", duration, tmpl.name)
				if variant != "Standard" {
					name = fmt.Sprintf("%d-Day %s %s", duration, variant, tmpl.name)
				}

				packages = append(packages, TourPackage{
					PackageID:      newRecordID(rng),
					Name:           name,
					Description:    tmpl.description,
					Type:           tmpl.tourType,
					Duration:       fmt.Sprintf("%d days", duration),
					Locations:      locations,
					Accommodation:  accommodation,
					Meals:          meals,
					Transportation: transport,
					Price:          variantPrice,
					Highlights: []string{
						"Explore " + locations[0],
						"Experience " + locations[1],
						"Discover " + locations[2],
					},
					InsuranceOptions: []InsuranceOption{
						{Name: "Basic Coverage", Price: variantPrice * 5 / 100, Coverage: "Trip cancellation, basic medical"},
						{Name: "Comprehensive", Price: variantPrice * 8 / 100, Coverage: "Trip cancellation, medical, belongings, activities"},
					},
				})
			}
		}
	}

	return packages
}

func generateBookings(num int, now time.Time, flights []Flight, packages []TourPackage) []Booking {
	statuses := []string{"Confirmed", "Pending", "Cancelled", "Completed"}
	paymentMethods := []string{"Credit Card", "PayPal", "Bank Transfer"}

	bookings := make([]Booking, 0, num)
	for i := 0; i < num; i++ {
		booking := Booking{
			BookingID:     fmt.Sprintf("BK%d", 10000+i),
			CustomerID:    fmt.Sprintf("CUST%d", 5000+i%20),
			BookingDate:   now.AddDate(0, 0, -(i % 90)).Format("2006-01-02"),
			Status:        statuses[i%len(statuses)],
			PaymentMethod: paymentMethods[i%len(paymentMethods)],
		}

		if i%3 != 0 {
			flight := flights[i%len(flights)]
			travelDate := now.AddDate(0, 0, 10+i%180).Format("2006-01-02")
			seats := []string{"15C"}
			if i%4 > 0 {
				seats = []string{"12A", "12B"}
			}
			booking.BookingType = "flight"
			booking.FlightDetails = &FlightBookingDetails{
				FlightID:      flight.FlightID,
				Airline:       flight.Airline,
				FlightNumber:  flight.FlightNumber,
				Origin:        flight.Origin,
				Destination:   flight.Destination,
				DepartureDate: travelDate,
				DepartureTime: flight.DepartureTime,
				Passengers:    1 + i%4,
				SeatSelection: seats,
				TotalPrice:    flight.Price * (1 + i%4),
			}
			booking.HasInsurance = i%5 == 0
			booking.CheckedIn = booking.Status == "Confirmed" && i%3 == 0
		} else {
			pkg := packages[i%len(packages)]
			durationDays := packageDurations[0]
			if _, err := fmt.Sscanf(pkg.Duration, "%d days", &durationDays); err != nil {
				durationDays = 7
			}
			start := now.AddDate(0, 0, 30+i%180)
			booking.BookingType = "package"
			booking.PackageDetails = &PackageBookingDetails{
				PackageID:   pkg.PackageID,
				PackageName: pkg.Name,
				StartDate:   start.Format("2006-01-02"),
				EndDate:     start.AddDate(0, 0, durationDays).Format("2006-01-02"),
				Travelers:   1 + i%4,
				TotalPrice:  pkg.Price * (1 + i%4),
			}
			booking.HasInsurance = i%3 == 0
			switch {
			case i%3 == 0:
				booking.InsuranceTier = "Comprehensive"
			case i%6 == 0:
				booking.InsuranceTier = "Basic Coverage"
			}
		}

		bookings = append(bookings, booking)
	}
	return bookings
}

var (
	firstNames = []string{
		"James", "John", "Robert", "Michael", "William", "David", "Emma", "Olivia", "Ava", "Isabella",
		"Sophia", "Charlotte", "Amelia", "Mia", "Harper", "Liam", "Noah", "Oliver", "Elijah", "William",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis", "Wilson", "Taylor", "Clark",
		"Hall", "Allen", "Young", "Wright", "Scott", "Green", "Baker", "Adams", "Nelson", "Carter",
	}
	countries = []string{
		"New Zealand", "Australia", "United States", "United Kingdom", "Canada",
		"Germany", "Japan", "Singapore", "France", "China",
	}
)

func generateCustomers(num int) []Customer {
	customers := make([]Customer, 0, num)
	for i := 0; i < num; i++ {
		firstName := firstNames[i%len(firstNames)]
		lastName := lastNames[i%len(lastNames)]
		nationality := countries[i%len(countries)]

		passport := ""
		if nationality != "New Zealand" {
			passport = fmt.Sprintf("P%d", 1000000+i)
		}

		seatPref := "No preference"
		switch i % 3 {
		case 0:
			seatPref = "Window"
		case 1:
			seatPref = "Aisle"
		}
		mealPref := "Regular"
		switch {
		case i%5 == 0:
			mealPref = "Vegetarian"
		case i%7 == 0:
			mealPref = "Vegan"
		}
		commPref := "Phone"
		if i%2 == 0 {
			commPref = "Email"
		}

		tier := "Standard"
		switch {
		case i < 3:
			tier = "Gold"
		case i < 8:
			tier = "Silver"
		case i < 15:
			tier = "Bronze"
		}
		points := 0
		if i < 20 {
			points = 10000 - i*500
		}

		customers = append(customers, Customer{
			CustomerID:     fmt.Sprintf("CUST%d", 5000+i),
			FirstName:      firstName,
			LastName:       lastName,
			Email:          fmt.Sprintf("%s.%s@example.com", strings.ToLower(firstName), strings.ToLower(lastName)),
			Phone:          fmt.Sprintf("+64 21 %d", 555000+i),
			Nationality:    nationality,
			PassportNumber: passport,
			Preferences: CustomerPreferences{
				SeatPreference:          seatPref,
				MealPreference:          mealPref,
				CommunicationPreference: commPref,
			},
			LoyaltyTier:   tier,
			LoyaltyPoints: points,
		})
	}
	return customers
}

// airlinePrefix derives the flight-number prefix from the airline name.
func airlinePrefix(airline string) string {
	return strings.ToUpper(airline[:3])
}

// newRecordID produces a short hex id from the seeded source, so generated
// datasets are reproducible per seed.
func newRecordID(rng *rand.Rand) string {
	return fmt.Sprintf("%08x", rng.Uint32())
}

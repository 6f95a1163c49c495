package dataset

// Flight is a single scheduled flight offered by the company.
type Flight struct {
	FlightID         string `json:"flight_id"`
	Airline          string `json:"airline"`
	FlightNumber     string `json:"flight_number"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	Duration         string `json:"duration"`
	Aircraft         string `json:"aircraft"`
	Price            int    `json:"price"`
	RouteType        string `json:"route_type"` // "domestic" or "international"
	BaggageAllowance string `json:"baggage_allowance"`
}

// InsuranceOption is a purchasable add-on attached to a tour package.
type InsuranceOption struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Coverage string `json:"coverage"`
}

// TourPackage is a multi-day guided tour product.
type TourPackage struct {
	PackageID        string            `json:"package_id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Type             string            `json:"type"`
	Duration         string            `json:"duration"`
	Locations        []string          `json:"locations"`
	Accommodation    string            `json:"accommodation"`
	Meals            string            `json:"meals"`
	Transportation   string            `json:"transportation"`
	Price            int               `json:"price"`
	Highlights       []string          `json:"highlights"`
	InsuranceOptions []InsuranceOption `json:"insurance_options"`
}

// FlightBookingDetails carries the flight-specific fields of a booking.
type FlightBookingDetails struct {
	FlightID      string   `json:"flight_id"`
	Airline       string   `json:"airline"`
	FlightNumber  string   `json:"flight_number"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureDate string   `json:"departure_date"`
	DepartureTime string   `json:"departure_time"`
	Passengers    int      `json:"passengers"`
	SeatSelection []string `json:"seat_selection"`
	TotalPrice    int      `json:"total_price"`
}

// PackageBookingDetails carries the tour-package fields of a booking.
type PackageBookingDetails struct {
	PackageID   string `json:"package_id"`
	PackageName string `json:"package_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Travelers   int    `json:"travelers"`
	TotalPrice  int    `json:"total_price"`
}

// Booking is a customer reservation for either a flight or a tour package.
type Booking struct {
	BookingID      string                 `json:"booking_id"`
	CustomerID     string                 `json:"customer_id"`
	BookingType    string                 `json:"booking_type"` // "flight" or "package"
	BookingDate    string                 `json:"booking_date"`
	Status         string                 `json:"status"`
	PaymentMethod  string                 `json:"payment_method"`
	FlightDetails  *FlightBookingDetails  `json:"flight_details,omitempty"`
	PackageDetails *PackageBookingDetails `json:"package_details,omitempty"`
	HasInsurance   bool                   `json:"has_insurance"`
	InsuranceTier  string                 `json:"insurance_tier,omitempty"`
	CheckedIn      bool                   `json:"checked_in"`
}

// CustomerPreferences records per-customer travel preferences.
type CustomerPreferences struct {
	SeatPreference          string `json:"seat_preference"`
	MealPreference          string `json:"meal_preference"`
	CommunicationPreference string `json:"communication_preference"`
}

// Customer is a registered customer profile.
type Customer struct {
	CustomerID     string              `json:"customer_id"`
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Nationality    string              `json:"nationality"`
	PassportNumber string              `json:"passport_number,omitempty"`
	Preferences    CustomerPreferences `json:"preferences"`
	LoyaltyTier    string              `json:"loyalty_tier"`
	LoyaltyPoints  int                 `json:"loyalty_points"`
}

// BaggageRule describes the carry-on and checked allowance for one airline.
type BaggageRule struct {
	CarryOnWeight     string `json:"carry_on_weight"`
	CarryOnDimensions string `json:"carry_on_dimensions"`
	CarryOnItems      string `json:"carry_on_items"`
	CheckedIncluded   string `json:"checked_included"`
	CheckedExtra      string `json:"checked_extra"`
	CheckedOverweight string `json:"checked_overweight"`
}

// BaggagePolicies groups baggage rules by route category and airline.
type BaggagePolicies struct {
	Domestic      map[string]BaggageRule `json:"domestic"`
	International map[string]BaggageRule `json:"international"`
}

// CancellationPolicies groups refund rules. Flight rules are keyed by
// airline then fare type; package rules by package category. The innermost
// map is timeframe -> rule text.
type CancellationPolicies struct {
	Flights      map[string]map[string]map[string]string `json:"flights"`
	TourPackages map[string]map[string]string            `json:"tour_packages"`
}

// InsurancePolicy is one coverage tier sold with flights and packages.
type InsurancePolicy struct {
	PricePercentage string            `json:"price_percentage"`
	Benefits        map[string]string `json:"benefits"`
	CoveredReasons  []string          `json:"covered_reasons"`
	Exclusions      []string          `json:"exclusions"`
}

// FAQs maps a category to question -> answer pairs.
type FAQs map[string]map[string]string

// Dataset aggregates every generated collection.
type Dataset struct {
	Flights              []Flight                   `json:"flights"`
	TourPackages         []TourPackage              `json:"tour_packages"`
	Bookings             []Booking                  `json:"bookings"`
	Customers            []Customer                 `json:"customers"`
	BaggagePolicies      BaggagePolicies            `json:"baggage_policies"`
	CancellationPolicies CancellationPolicies       `json:"cancellation_policies"`
	InsurancePolicies    map[string]InsurancePolicy `json:"insurance_policies"`
	FAQs                 FAQs                       `json:"faqs"`
}

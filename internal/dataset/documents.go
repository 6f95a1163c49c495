package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nztours/travel-ai-platform/internal/conversation"
)

// Documents flattens the dataset into free-text documents for indexing.
// Flights and packages become one document each; policy and FAQ tables are
// grouped into one document per category. A record missing a required field
// is reported as an error rather than silently dropped.
func Documents(ds *Dataset) ([]conversation.Document, error) {
	var docs []conversation.Document

	for i, flight := range ds.Flights {
		if flight.FlightID == "" || flight.Origin == "" || flight.Destination == "" {
			return nil, fmt.Errorf("dataset: flight record %d is missing id, origin or destination", i)
		}
		content := fmt.Sprintf(`Flight Information:
Flight ID: %s
Airline: %s
Flight Number: %s
Origin: %s
Destination: %s
Departure Time: %s
Arrival Time: %s
Duration: %s
Aircraft: %s
Price: $%d NZD
Route Type: %s
Baggage Allowance: %s`,
			flight.FlightID, flight.Airline, flight.FlightNumber, flight.Origin,
			flight.Destination, flight.DepartureTime, flight.ArrivalTime, flight.Duration,
			flight.Aircraft, flight.Price, flight.RouteType, flight.BaggageAllowance)

		docs = append(docs, conversation.Document{
			Content: content,
			Metadata: map[string]string{
				"type":        "flight",
				"id":          flight.FlightID,
				"airline":     flight.Airline,
				"origin":      flight.Origin,
				"destination": flight.Destination,
				"route_type":  flight.RouteType,
			},
		})
	}

	for i, pkg := range ds.TourPackages {
		if pkg.PackageID == "" || pkg.Name == "" {
			return nil, fmt.Errorf("dataset: package record %d is missing id or name", i)
		}
		insurance := make([]string, 0, len(pkg.InsuranceOptions))
		for _, opt := range pkg.InsuranceOptions {
			insurance = append(insurance, fmt.Sprintf("%s ($%d NZD)", opt.Name, opt.Price))
		}
		content := fmt.Sprintf(`Tour Package Information:
Package ID: %s
Name: %s
Description: %s
Type: %s
Duration: %s
Locations: %s
Accommodation: %s
Meals: %s
Transportation: %s
Price: $%d NZD
Highlights: %s
Insurance Options: %s`,
			pkg.PackageID, pkg.Name, pkg.Description, pkg.Type, pkg.Duration,
			strings.Join(pkg.Locations, ", "), pkg.Accommodation, pkg.Meals,
			pkg.Transportation, pkg.Price, strings.Join(pkg.Highlights, ", "),
			strings.Join(insurance, ", "))

		docs = append(docs, conversation.Document{
			Content: content,
			Metadata: map[string]string{
				"type":         "package",
				"id":           pkg.PackageID,
				"name":         pkg.Name,
				"package_type": pkg.Type,
				"duration":     pkg.Duration,
				"price":        fmt.Sprintf("%d", pkg.Price),
			},
		})
	}

	docs = append(docs, baggageDocument("domestic", ds.BaggagePolicies.Domestic))
	docs = append(docs, baggageDocument("international", ds.BaggagePolicies.International))
	docs = append(docs, flightCancellationDocument(ds.CancellationPolicies.Flights))
	docs = append(docs, packageCancellationDocument(ds.CancellationPolicies.TourPackages))
	docs = append(docs, insuranceDocuments(ds.InsurancePolicies)...)
	docs = append(docs, faqDocuments(ds.FAQs)...)

	return docs, nil
}

func baggageDocument(category string, rules map[string]BaggageRule) conversation.Document {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Baggage Policies:\n", titleWords(category))
	for _, airline := range sortedKeys(rules) {
		rule := rules[airline]
		fmt.Fprintf(&b, "\n%s:\n", airline)
		fmt.Fprintf(&b, "Carry-on: %s weight limit, %s dimensions, %s\n",
			rule.CarryOnWeight, rule.CarryOnDimensions, rule.CarryOnItems)
		fmt.Fprintf(&b, "Checked: %s included, %s for extra bags, %s for overweight\n",
			rule.CheckedIncluded, rule.CheckedExtra, rule.CheckedOverweight)
	}
	return conversation.Document{
		Content:  b.String(),
		Metadata: map[string]string{"type": "baggage_policy", "category": category},
	}
}

func flightCancellationDocument(policies map[string]map[string]map[string]string) conversation.Document {
	var b strings.Builder
	b.WriteString("Flight Cancellation Policies:\n")
	for _, airline := range sortedKeys(policies) {
		fmt.Fprintf(&b, "\n%s:\n", airline)
		fares := policies[airline]
		for _, fareType := range sortedKeys(fares) {
			fmt.Fprintf(&b, "  %s:\n", titleWords(fareType))
			rules := fares[fareType]
			for _, timeframe := range sortedKeys(rules) {
				fmt.Fprintf(&b, "    - %s: %s\n", strings.ReplaceAll(timeframe, "_", " "), rules[timeframe])
			}
		}
	}
	return conversation.Document{
		Content:  b.String(),
		Metadata: map[string]string{"type": "cancellation_policy", "category": "flights"},
	}
}

func packageCancellationDocument(policies map[string]map[string]string) conversation.Document {
	var b strings.Builder
	b.WriteString("Tour Package Cancellation Policies:\n")
	for _, packageType := range sortedKeys(policies) {
		fmt.Fprintf(&b, "\n%s:\n", titleWords(packageType))
		rules := policies[packageType]
		for _, timeframe := range sortedKeys(rules) {
			fmt.Fprintf(&b, "  - %s: %s\n", strings.ReplaceAll(timeframe, "_", " "), rules[timeframe])
		}
	}
	return conversation.Document{
		Content:  b.String(),
		Metadata: map[string]string{"type": "cancellation_policy", "category": "tour_packages"},
	}
}

func insuranceDocuments(policies map[string]InsurancePolicy) []conversation.Document {
	docs := make([]conversation.Document, 0, len(policies))
	for _, policyType := range sortedKeys(policies) {
		policy := policies[policyType]
		var b strings.Builder
		fmt.Fprintf(&b, "%s Insurance:\nCost: %s\n\nBenefits:\n", titleWords(policyType), policy.PricePercentage)
		for _, benefit := range sortedKeys(policy.Benefits) {
			fmt.Fprintf(&b, "- %s: %s\n", titleWords(benefit), policy.Benefits[benefit])
		}
		b.WriteString("\nCovered Reasons:\n")
		for _, reason := range policy.CoveredReasons {
			fmt.Fprintf(&b, "- %s\n", reason)
		}
		b.WriteString("\nExclusions:\n")
		for _, exclusion := range policy.Exclusions {
			fmt.Fprintf(&b, "- %s\n", exclusion)
		}
		docs = append(docs, conversation.Document{
			Content:  b.String(),
			Metadata: map[string]string{"type": "insurance_policy", "policy_type": policyType},
		})
	}
	return docs
}

func faqDocuments(faqs FAQs) []conversation.Document {
	var docs []conversation.Document
	for _, category := range sortedKeys(faqs) {
		entries := faqs[category]
		for _, question := range sortedKeys(entries) {
			docs = append(docs, conversation.Document{
				Content: fmt.Sprintf("Q: %s\nA: %s", titleWords(question), entries[question]),
				Metadata: map[string]string{
					"type":     "faq",
					"category": category,
					"question": question,
				},
			})
		}
	}
	return docs
}

// titleWords converts a snake_case key into Title Case words.
func titleWords(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

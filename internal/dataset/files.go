package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFiles serializes each collection to a JSON file under dir, one file
// per collection. A directory that cannot be created is a fatal
// configuration error for the caller.
func (ds *Dataset) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("dataset: failed to create data directory %s: %w", dir, err)
	}

	collections := map[string]any{
		"flights":               ds.Flights,
		"tour_packages":         ds.TourPackages,
		"bookings":              ds.Bookings,
		"customers":             ds.Customers,
		"baggage_policies":      ds.BaggagePolicies,
		"cancellation_policies": ds.CancellationPolicies,
		"insurance_policies":    ds.InsurancePolicies,
		"faqs":                  ds.FAQs,
	}

	for name, data := range collections {
		path := filepath.Join(dir, name+".json")
		encoded, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("dataset: failed to encode %s: %w", name, err)
		}
		if err := os.WriteFile(path, encoded, 0o644); err != nil {
			return fmt.Errorf("dataset: failed to write %s: %w", path, err)
		}
	}
	return nil
}

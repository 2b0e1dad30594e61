// Package catalog serves the static sample travel packages the browse and
// search screens are backed by. The data is fixed at compile time; there is
// no persistence behind it.
package catalog

import (
	"strings"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/domain"
)

// packages is the sample data set, identical to what the search screen ships.
var packages = []domain.TravelPackage{
	{
		ID: 1, City: "Lahore", Province: "Punjab", TripType: "City Tour",
		Days: 3, PricePKR: 35000,
		Hotel:     domain.Hotel{Name: "PC Lahore", Stars: 5, Rating: 4.6},
		Transport: "Bus",
		Activities: []string{
			"Badshahi Mosque", "Food Street", "Lahore Fort",
		},
		Available: true,
	},
	{
		ID: 2, City: "Karachi", Province: "Sindh", TripType: "Beach Holiday",
		Days: 4, PricePKR: 42000,
		Hotel:     domain.Hotel{Name: "Movenpick", Stars: 5, Rating: 4.5},
		Transport: "Flight",
		Activities: []string{
			"Clifton Beach", "Do Darya", "Port Grand",
		},
		Available: true,
	},
	{
		ID: 3, City: "Islamabad", Province: "Federal", TripType: "City Break",
		Days: 2, PricePKR: 28000,
		Hotel:     domain.Hotel{Name: "Serena Islamabad", Stars: 5, Rating: 4.7},
		Transport: "Car",
		Activities: []string{
			"Faisal Mosque", "Daman-e-Koh", "Monal",
		},
		Available: true,
	},
	{
		ID: 4, City: "Hunza", Province: "Gilgit-Baltistan", TripType: "Adventure",
		Days: 6, PricePKR: 85000,
		Hotel:     domain.Hotel{Name: "Hunza Serena Inn", Stars: 4, Rating: 4.8},
		Transport: "Jeep",
		Activities: []string{
			"Attabad Lake", "Baltit Fort", "Eagle's Nest",
		},
		Available: true,
	},
	{
		ID: 5, City: "Skardu", Province: "Gilgit-Baltistan", TripType: "Adventure",
		Days: 7, PricePKR: 95000,
		Hotel:     domain.Hotel{Name: "Shangrila Resort", Stars: 4, Rating: 4.6},
		Transport: "Flight",
		Activities: []string{
			"Shangrila Lake", "Deosai Plains", "Shigar Fort",
		},
		Available: false,
	},
	{
		ID: 6, City: "Murree", Province: "Punjab", TripType: "Hill Station",
		Days: 3, PricePKR: 30000,
		Hotel:     domain.Hotel{Name: "Pearl Continental Bhurban", Stars: 5, Rating: 4.4},
		Transport: "Car",
		Activities: []string{
			"Mall Road", "Patriata Chairlift", "Kashmir Point",
		},
		Available: true,
	},
	{
		ID: 7, City: "Swat", Province: "Khyber Pakhtunkhwa", TripType: "Valley Tour",
		Days: 5, PricePKR: 60000,
		Hotel:     domain.Hotel{Name: "Swat Serena", Stars: 4, Rating: 4.5},
		Transport: "Bus",
		Activities: []string{
			"Malam Jabba", "Kalam Valley", "Mahodand Lake",
		},
		Available: true,
	},
	{
		ID: 8, City: "Quetta", Province: "Balochistan", TripType: "City Tour",
		Days: 3, PricePKR: 38000,
		Hotel:     domain.Hotel{Name: "Serena Quetta", Stars: 4, Rating: 4.2},
		Transport: "Flight",
		Activities: []string{
			"Hanna Lake", "Ziarat Juniper Forest", "Quetta Bazaar",
		},
		Available: false,
	},
}

// All returns the complete sample catalog. The result is a copy; callers may
// not mutate the backing data.
func All() []domain.TravelPackage {
	out := make([]domain.TravelPackage, len(packages))
	copy(out, packages)
	return out
}

// Search filters the catalog by a case-insensitive substring match over city,
// province, and trip type. An empty query returns everything.
func Search(query string) []domain.TravelPackage {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return All()
	}
	out := []domain.TravelPackage{}
	for _, p := range packages {
		if strings.Contains(strings.ToLower(p.City), q) ||
			strings.Contains(strings.ToLower(p.Province), q) ||
			strings.Contains(strings.ToLower(p.TripType), q) {
			out = append(out, p)
		}
	}
	return out
}

// Page slices a result set according to params. Out-of-range pages yield an
// empty slice, never an error.
func Page(items []domain.TravelPackage, params domain.PaginationParams) []domain.TravelPackage {
	start := params.Offset()
	if start >= len(items) {
		return []domain.TravelPackage{}
	}
	end := start + params.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

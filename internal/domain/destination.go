package domain

// Hotel is the accommodation attached to a travel package.
type Hotel struct {
	Name   string  `json:"name"`
	Stars  int     `json:"stars"`
	Rating float64 `json:"rating"`
}

// TravelPackage is one browseable entry in the static sample catalog the
// search screen is backed by. Prices are in PKR, matching the sample data.
type TravelPackage struct {
	ID         int      `json:"id"`
	City       string   `json:"city"`
	Province   string   `json:"province"`
	TripType   string   `json:"tripType"`
	Days       int      `json:"days"`
	PricePKR   int      `json:"pricePKR"`
	Hotel      Hotel    `json:"hotel"`
	Transport  string   `json:"transport"`
	Activities []string `json:"activities"`
	Available  bool     `json:"available"`
}

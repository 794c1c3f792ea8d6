package dto

type VendorDTO struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Rating   float64  `json:"rating"`
	Price    string   `json:"price"`
	Services []string `json:"services"`
}

type AvailabilityResponse struct {
	VendorID       string   `json:"vendor_id"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
}

type ServiceDTO struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
}

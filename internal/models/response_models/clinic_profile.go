package response_models

// ClinicProfile is a static veterinary clinic directory entry.
type ClinicProfile struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Distance string  `json:"distance"`
	Rating   float64 `json:"rating"`
	Services string  `json:"services"`
	Phone    string  `json:"phone"`
}

package dto

// CreateClientRequest is the payload for registering a new bank client.
// Optional passport/birth details mirror the training API's client shape.
type CreateClientRequest struct {
	FullName             string `json:"full_name" binding:"required"`
	Phone                string `json:"phone" binding:"required"`
	PassportSeriesNumber string `json:"passport_series_number" binding:"required"`
	BirthDate            string `json:"birth_date"`
	PassportIssuedDate   string `json:"passport_issued_date"`
	Address              string `json:"address"`
	Notes                string `json:"notes"`
}

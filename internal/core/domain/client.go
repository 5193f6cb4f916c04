package domain

import "time"

// Client is a bank customer record. Created via the training API, then
// mirrored locally; no referential integrity is enforced on this side.
type Client struct {
	ClientID             string    `json:"client_id"`
	FullName             string    `json:"full_name"`
	BirthDate            string    `json:"birth_date,omitempty"`
	Phone                string    `json:"phone"`
	PassportSeriesNumber string    `json:"passport_series_number"`
	PassportIssuedDate   string    `json:"passport_issued_date,omitempty"`
	Address              string    `json:"address,omitempty"`
	Notes                string    `json:"notes,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	CreatedBy            string    `json:"created_by"`
}

package models

type JerseyOrder struct {
	NameOnJersey   string `json:"nameOnJersey"`
	NumberOnJersey string `json:"numberOnJersey"`
	Department     string `json:"department"`
	Size           string `json:"size"`
	PaymentID      string `json:"payment_id"`
}

package entities

// CaptureRequest asks a payment provider to collect the billable amount of a
// set of logged entries.
type CaptureRequest struct {
	OrderID         string
	EntryIDs        []string
	Amount          int64
	PlatformFee     int64
	Currency        string
	Description     string
	PayerEmail      string
	PaymentMethodID string
}

// CaptureResult is what the provider returned for a capture request.
// Reference is the id later carried by confirmation events.
type CaptureResult struct {
	Reference    string   `json:"payment_reference"`
	Provider     string   `json:"provider"`
	Status       string   `json:"provider_status"`
	ClientSecret string   `json:"client_secret,omitempty"`
	Amount       int64    `json:"amount"`
	Currency     string   `json:"currency"`
	EntryIDs     []string `json:"entry_ids"`
}

// PaymentTypePlatformHold marks captures whose funds are held by the platform
// until they are transferred to the provider.
const PaymentTypePlatformHold = "additional_hours_platform_hold"

// PaymentTypeDirect marks captures that settle straight to the provider.
const PaymentTypeDirect = "additional_hours"

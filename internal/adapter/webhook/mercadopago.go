package webhook

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// MercadoPagoNotification is the body of a Mercado Pago webhook. Only payment
// notifications are acted on; the payment itself is fetched afterwards.
type MercadoPagoNotification struct {
	ID     json.Number `json:"id"`
	Type   string      `json:"type"`
	Action string      `json:"action"`
	Data   struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

func (n MercadoPagoNotification) IsPayment() bool {
	return n.Type == "payment" || strings.HasPrefix(n.Action, "payment.")
}

func (n MercadoPagoNotification) PaymentID() string { return n.Data.ID.String() }

// ParseMercadoPagoNotification reads the JSON body, falling back to the
// data.id and type query parameters Mercado Pago also sends.
func ParseMercadoPagoNotification(body []byte, query url.Values) (MercadoPagoNotification, error) {
	var n MercadoPagoNotification
	if len(bytes.TrimSpace(body)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		if err := dec.Decode(&n); err != nil {
			// data.id arrives quoted in webhooks and bare in older IPN bodies.
			var alt struct {
				Type   string `json:"type"`
				Action string `json:"action"`
				Data   struct {
					ID string `json:"id"`
				} `json:"data"`
			}
			if err2 := json.Unmarshal(body, &alt); err2 != nil {
				return n, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
			}
			n.Type, n.Action, n.Data.ID = alt.Type, alt.Action, json.Number(alt.Data.ID)
		}
	}
	if n.Data.ID == "" {
		n.Data.ID = json.Number(query.Get("data.id"))
	}
	if n.Type == "" {
		n.Type = query.Get("type")
	}
	if n.IsPayment() && n.Data.ID == "" {
		return n, fmt.Errorf("%w: payment notification without data.id", ErrMalformedPayload)
	}
	return n, nil
}

// VerifyMercadoPagoSignature validates the x-signature header
// ("ts=<unix>,v1=<hex hmac>") against the manifest
// "id:<data.id>;request-id:<x-request-id>;ts:<ts>;".
func VerifyMercadoPagoSignature(xSignature, xRequestID, dataID, secret string) error {
	var ts, v1 string
	for _, part := range strings.Split(xSignature, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "ts":
			ts = v
		case "v1":
			v1 = v
		}
	}
	if ts == "" || v1 == "" {
		return fmt.Errorf("%w: x-signature missing ts or v1", ErrInvalidSignature)
	}

	var manifest strings.Builder
	if dataID != "" {
		manifest.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if xRequestID != "" {
		manifest.WriteString("request-id:" + xRequestID + ";")
	}
	manifest.WriteString("ts:" + ts + ";")

	want := signMercadoPago(manifest.String(), secret)
	got, err := hex.DecodeString(v1)
	if err != nil || !hmac.Equal(got, want) {
		return ErrInvalidSignature
	}
	return nil
}

func signMercadoPago(manifest, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	return mac.Sum(nil)
}

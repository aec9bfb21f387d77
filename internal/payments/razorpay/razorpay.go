package razorpay

import (
	"fmt"

	razorpaygo "github.com/razorpay/razorpay-go"
)

// Client creates checkout orders through the Razorpay Orders API.
type Client struct {
	api *razorpaygo.Client
}

func New(keyID, keySecret string) *Client {
	return &Client{api: razorpaygo.NewClient(keyID, keySecret)}
}

// CreateOrder registers an order for the given amount in paise and returns
// the gateway order id the browser checkout needs.
func (c *Client) CreateOrder(amount int, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := c.api.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay order response has no id")
	}

	return orderID, nil
}

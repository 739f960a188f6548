package types

// Message is the body of every mutation that reports only an outcome.
type Message struct {
	Message string `json:"message"`
}

// MessageWithID reports the outcome plus the generated record id.
type MessageWithID struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// OrderPlaced is returned by checkout.
type OrderPlaced struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope carries the public message twice: inside error for typed
// clients and at the top level for clients that read body.message.
type ErrorEnvelope struct {
	Error   APIError `json:"error"`
	Message string   `json:"message"`
}

package websocket

import "time"

// Envelope wraps every outgoing message with a type the frontend switches on.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// AlertPayload is the live-alert DTO pushed to dashboard clients.
type AlertPayload struct {
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	EntityID  uint64    `json:"entity_id"`
	CreatedAt time.Time `json:"created_at"`
}

package orders

import (
	"time"
)

// Event is a single order lifecycle event consumed from Kafka.
type Event struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

package domain

import "time"

// OrderItem is a single line of a customer order.
type OrderItem struct {
	Brand    string
	Size     string
	Quantity int
	Price    float64
}

// Order represents a placed customer order awaiting (or holding) a vendor
// assignment. VendorID is nil until the order is assigned, and a successful
// assignment sets it exactly once.
type Order struct {
	ID                  string
	DeliveryAddress     string
	DeliveryLocation    Coordinate
	Items               []OrderItem
	VendorID            *int64
	Status              OrderStatus
	EstimatedDeliveryAt *time.Time
	CreatedAt           time.Time
}

// RequiredBrands returns the distinct brands across the order's items, in
// first-seen order.
func (o Order) RequiredBrands() []string {
	seen := make(map[string]struct{}, len(o.Items))
	brands := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.Brand]; ok {
			continue
		}
		seen[item.Brand] = struct{}{}
		brands = append(brands, item.Brand)
	}
	return brands
}

// Assigned reports whether a vendor is already bound to the order.
func (o Order) Assigned() bool { return o.VendorID != nil }

package domain

import "time"

// AllocationResult - struct representing the outcome of matching an order
// (or a bare location + brand set) to a vendor. Transient, never persisted.
type AllocationResult struct {
	Vendor           *Vendor
	DistanceKm       float64
	EstimatedMinutes int
}

// Assignment - struct representing a committed order assignment.
type Assignment struct {
	OrderID             string
	VendorID            int64
	DistanceKm          float64
	EstimatedMinutes    int
	EstimatedDeliveryAt time.Time
}

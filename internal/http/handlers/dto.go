package handlers

import "time"

type assignResponse struct {
	OrderID             string    `json:"order_id"`
	VendorID            int64     `json:"vendor_id"`
	DistanceKm          float64   `json:"distance_km"`
	EstimatedMinutes    int       `json:"estimated_minutes"`
	EstimatedDeliveryAt time.Time `json:"estimated_delivery_at"`
}

type vendorDTO struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	ServiceRadiusKm float64  `json:"service_radius_km"`
}

type updateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type orderItemDTO struct {
	Brand    string  `json:"brand"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type orderDTO struct {
	ID                  string         `json:"id"`
	DeliveryAddress     string         `json:"delivery_address"`
	Status              string         `json:"status"`
	Items               []orderItemDTO `json:"items"`
	EstimatedDeliveryAt *time.Time     `json:"estimated_delivery_at,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
}

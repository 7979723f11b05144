package domain

// InventoryLine is one brand a vendor carries.
type InventoryLine struct {
	Brand     string
	Stock     int
	Available bool
}

// Vendor represents a delivery operator.
// Location is nil while the vendor has never reported a position; callers
// must check it explicitly before computing distances.
type Vendor struct {
	ID              int64
	Name            string
	Phone           string
	Location        *Coordinate
	ServiceRadiusKm float64
	Online          bool
	Verified        bool
	Inventory       []InventoryLine
}

// Eligible reports whether the vendor may take orders at all.
func (v Vendor) Eligible() bool {
	return v.Online && v.Verified
}

// StocksAll reports whether the vendor has positive, available stock for
// every brand in the set.
func (v Vendor) StocksAll(brands []string) bool {
	for _, brand := range brands {
		if !v.stocks(brand) {
			return false
		}
	}
	return true
}

func (v Vendor) stocks(brand string) bool {
	for _, line := range v.Inventory {
		if line.Brand == brand && line.Stock > 0 && line.Available {
			return true
		}
	}
	return false
}

//go:generate mockgen -source=contracts.go -destination=allocation_mocks_test.go -package=allocation_test -self_package=aquadrop/internal/service/allocation

package allocation

import (
	"context"
	"time"

	"aquadrop/internal/domain"
)

// VendorStore abstracts vendor reads and location writes.
// Lookups return (nil, nil) when the vendor does not exist.
type VendorStore interface {
	ListEligible(ctx context.Context) ([]domain.Vendor, error)
	Get(ctx context.Context, id int64) (*domain.Vendor, error)
	UpdateLocation(ctx context.Context, id int64, loc domain.Coordinate) (bool, error)
}

// OrderStore abstracts order reads and the conditional assignment write.
// AssignVendor returns false when the order was already assigned.
type OrderStore interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	AssignVendor(ctx context.Context, orderID string, vendorID int64, eta time.Time, status domain.OrderStatus) (bool, error)
	ListByVendor(ctx context.Context, vendorID int64, statuses []domain.OrderStatus) ([]domain.Order, error)
}

// Notifier delivers the new-order event to the assigned vendor.
// Fire-and-forget from the engine's point of view: failures are logged,
// never propagated.
type Notifier interface {
	NotifyOrderAssigned(ctx context.Context, vendorID int64, orderID string) error
}

// Estimator converts a delivery distance into an ETA.
type Estimator interface {
	Estimate(distanceKm float64, now time.Time) (minutes int, eta time.Time)
}

//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"aquadrop/internal/domain"
)

// AllocatorPort abstracts the subset of the allocation engine the orders
// Processor needs when handling order events.
type AllocatorPort interface {
	AutoAssignOrder(ctx context.Context, orderID string) (domain.Assignment, error)
}

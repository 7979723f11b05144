package handlers

import (
	"context"

	"aquadrop/internal/domain"
	"aquadrop/internal/service/allocation"
)

type allocationUsecase interface {
	AutoAssignOrder(ctx context.Context, orderID string) (domain.Assignment, error)
	VendorsInRadius(ctx context.Context, center domain.Coordinate, radiusKm float64) ([]domain.Vendor, error)
	UpdateVendorLocation(ctx context.Context, vendorID int64, loc domain.Coordinate) error
	VendorActiveOrders(ctx context.Context, vendorID int64) ([]domain.Order, error)
}

// NewAllocationUsecase wires the allocation Engine into an allocationUsecase.
func NewAllocationUsecase(engine *allocation.Engine) allocationUsecase {
	return engine
}

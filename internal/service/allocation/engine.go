package allocation

import (
	"context"
	"errors"
	"strings"
	"time"

	"aquadrop/internal/apperr"
	"aquadrop/internal/domain"
	"aquadrop/internal/geo"
	"aquadrop/internal/logx"
)

// Config stores engine tuning knobs.
type Config struct {
	DefaultRadiusKm  float64
	OperationTimeout time.Duration
}

// Engine matches orders to vendors: filters by stock and service area,
// ranks by distance, and commits the assignment. Greedy and per-order; it
// never holds locks across the candidate scan, so vendor state may move
// underneath it. Only the final conditional write is guarded.
type Engine struct {
	vendors   VendorStore
	orders    OrderStore
	notifier  Notifier
	estimator Estimator

	cfg     Config
	logger  logx.Logger
	metrics Metrics
	now     func() time.Time
}

// NewEngine creates and configures an allocation Engine.
func NewEngine(vendors VendorStore, orders OrderStore, notifier Notifier, estimator Estimator, cfg Config, metrics Metrics, logger logx.Logger) *Engine {
	if cfg.DefaultRadiusKm <= 0 {
		cfg.DefaultRadiusKm = 10
	}
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 3 * time.Second
	}
	if estimator == nil {
		estimator = NewEstimator(30, 5*time.Minute)
	}
	return &Engine{
		vendors:   vendors,
		orders:    orders,
		notifier:  notifier,
		estimator: estimator,
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (e *Engine) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.cfg.OperationTimeout)
}

// FindNearestVendor selects the closest vendor that is online, verified,
// stocks every required brand, and services the customer's location.
// The stock filter runs before the service-area filter so callers can tell
// "nobody stocks this" apart from "stocked vendors exist but too far".
func (e *Engine) FindNearestVendor(ctx context.Context, customer domain.Coordinate, requiredBrands []string) (domain.AllocationResult, error) {
	if !customer.Valid() {
		return domain.AllocationResult{}, apperr.ErrInvalid
	}

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	candidates, err := e.vendors.ListEligible(ctx)
	if err != nil {
		return domain.AllocationResult{}, err
	}
	if len(candidates) == 0 {
		return domain.AllocationResult{}, e.fail(apperr.ErrNoVendorsAvailable)
	}

	stocked := candidates[:0:0]
	for _, v := range candidates {
		if v.StocksAll(requiredBrands) {
			stocked = append(stocked, v)
		}
	}
	if len(stocked) == 0 {
		return domain.AllocationResult{}, e.fail(apperr.ErrNoStockAvailable)
	}

	best, bestDistance, found := nearestInServiceArea(customer, stocked)
	if !found {
		return domain.AllocationResult{}, e.fail(apperr.ErrNoVendorsInArea)
	}

	minutes, _ := e.estimator.Estimate(bestDistance, e.now())
	return domain.AllocationResult{
		Vendor:           best,
		DistanceKm:       bestDistance,
		EstimatedMinutes: minutes,
	}, nil
}

// nearestInServiceArea scans stocked vendors and keeps the closest one whose
// own service radius covers the customer. Ties resolve to the lower vendor
// ID so repeated calls are deterministic. Vendors that never reported a
// position are skipped.
func nearestInServiceArea(customer domain.Coordinate, vendors []domain.Vendor) (*domain.Vendor, float64, bool) {
	var (
		best     *domain.Vendor
		bestDist float64
	)
	for i := range vendors {
		v := &vendors[i]
		if v.Location == nil {
			continue
		}
		d := geo.Distance(customer, *v.Location)
		if d > v.ServiceRadiusKm {
			continue
		}
		if best == nil || d < bestDist || (d == bestDist && v.ID < best.ID) {
			best = v
			bestDist = d
		}
	}
	return best, bestDist, best != nil
}

// AutoAssignOrder loads the order, finds the nearest eligible vendor and
// commits the assignment. The write is conditional on the order being
// unassigned, so a concurrent retry observes ErrAlreadyAssigned instead of
// overwriting. Notification failure never rolls the assignment back.
func (e *Engine) AutoAssignOrder(ctx context.Context, orderID string) (domain.Assignment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return domain.Assignment{}, apperr.ErrInvalid
	}

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	ord, err := e.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Assignment{}, err
	}
	if ord == nil {
		return domain.Assignment{}, apperr.ErrOrderNotFound
	}
	if ord.Assigned() {
		return domain.Assignment{}, apperr.ErrAlreadyAssigned
	}

	res, err := e.FindNearestVendor(ctx, ord.DeliveryLocation, ord.RequiredBrands())
	if err != nil {
		return domain.Assignment{}, err
	}

	minutes, eta := e.estimator.Estimate(res.DistanceKm, e.now())
	ok, err := e.orders.AssignVendor(ctx, orderID, res.Vendor.ID, eta, domain.StatusPending)
	if err != nil {
		return domain.Assignment{}, err
	}
	if !ok {
		return domain.Assignment{}, e.fail(apperr.ErrAlreadyAssigned)
	}

	e.metrics.assigned()
	e.logger.Info("order assigned",
		logx.String("event", "order_assigned"),
		logx.String("order_id", orderID),
		logx.Int64("vendor_id", res.Vendor.ID),
		logx.Float64("distance_km", res.DistanceKm),
		logx.Int("estimated_minutes", minutes),
	)

	e.notify(ctx, res.Vendor.ID, orderID)

	return domain.Assignment{
		OrderID:             orderID,
		VendorID:            res.Vendor.ID,
		DistanceKm:          res.DistanceKm,
		EstimatedMinutes:    minutes,
		EstimatedDeliveryAt: eta,
	}, nil
}

// VendorsInRadius returns online and verified vendors within radiusKm of
// center, without any stock filtering. Used by map and browse views.
func (e *Engine) VendorsInRadius(ctx context.Context, center domain.Coordinate, radiusKm float64) ([]domain.Vendor, error) {
	if !center.Valid() {
		return nil, apperr.ErrInvalid
	}
	if radiusKm <= 0 {
		radiusKm = e.cfg.DefaultRadiusKm
	}

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	candidates, err := e.vendors.ListEligible(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Vendor, 0, len(candidates))
	for _, v := range candidates {
		if v.Location == nil {
			continue
		}
		if geo.Within(center, *v.Location, radiusKm) {
			out = append(out, v)
		}
	}
	return out, nil
}

// UpdateVendorLocation overwrites the vendor's live position.
// Idempotent and last-write-wins; a brief position regression from
// out-of-order updates self-corrects on the next ping.
func (e *Engine) UpdateVendorLocation(ctx context.Context, vendorID int64, loc domain.Coordinate) error {
	if vendorID <= 0 || !loc.Valid() {
		return apperr.ErrInvalid
	}

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	ok, err := e.vendors.UpdateLocation(ctx, vendorID, loc)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrVendorNotFound
	}

	e.logger.Debug("vendor location updated",
		logx.Int64("vendor_id", vendorID),
		logx.Float64("lat", loc.Latitude),
		logx.Float64("lon", loc.Longitude),
	)
	return nil
}

// VendorActiveOrders returns the vendor's in-flight orders, newest first.
func (e *Engine) VendorActiveOrders(ctx context.Context, vendorID int64) ([]domain.Order, error) {
	if vendorID <= 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	v, err := e.vendors.Get(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.ErrVendorNotFound
	}
	return e.orders.ListByVendor(ctx, vendorID, domain.ActiveStatuses())
}

func (e *Engine) notify(ctx context.Context, vendorID int64, orderID string) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.NotifyOrderAssigned(ctx, vendorID, orderID); err != nil {
		e.metrics.notifyFailed()
		e.logger.Error("vendor notification failed",
			logx.Int64("vendor_id", vendorID),
			logx.String("order_id", orderID),
			logx.Err(err),
		)
	}
}

func (e *Engine) fail(err error) error {
	e.metrics.allocationFailed(reasonLabel(err))
	return err
}

func reasonLabel(err error) string {
	switch {
	case errors.Is(err, apperr.ErrNoVendorsAvailable):
		return "no_vendors"
	case errors.Is(err, apperr.ErrNoStockAvailable):
		return "no_stock"
	case errors.Is(err, apperr.ErrNoVendorsInArea):
		return "out_of_area"
	case errors.Is(err, apperr.ErrAlreadyAssigned):
		return "already_assigned"
	default:
		return "other"
	}
}

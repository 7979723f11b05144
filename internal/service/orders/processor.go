package orders

import (
	"context"
	"errors"

	"aquadrop/internal/apperr"
	"aquadrop/internal/logx"
)

// Processor reacts to order events by driving auto-assignment.
type Processor struct {
	allocator AllocatorPort
	logger    logx.Logger
	factory   *actionFactory
}

// NewProcessor creates a new orders.Processor.
func NewProcessor(allocator AllocatorPort, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		allocator: allocator,
		logger:    logger,
	}
	p.factory = newActionFactory(p.onPlaced)
	return p
}

// Handle processes a single order event. Statuses without an action are
// acknowledged and skipped.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

// onPlaced attempts the assignment. Business outcomes are final for this
// event: replaying a message cannot conjure stock or vendors, and a
// duplicate delivery means the first attempt already won. Store outages
// are returned so the consumer retries the message.
func (p *Processor) onPlaced(ctx context.Context, e Event) error {
	_, err := p.allocator.AutoAssignOrder(ctx, e.OrderID)
	if err == nil {
		return nil
	}
	if errors.Is(err, apperr.ErrStoreUnavailable) {
		return err
	}
	if terminalAllocationError(err) {
		p.logger.Warn("order left unassigned",
			logx.String("order_id", e.OrderID),
			logx.Err(err),
		)
		return nil
	}
	return err
}

func terminalAllocationError(err error) bool {
	for _, target := range []error{
		apperr.ErrInvalid,
		apperr.ErrOrderNotFound,
		apperr.ErrAlreadyAssigned,
		apperr.ErrNoVendorsAvailable,
		apperr.ErrNoStockAvailable,
		apperr.ErrNoVendorsInArea,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"aquadrop/internal/domain"
)

// OrderRepo represents order repository.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

// Get - returns order by its ID with items, or nil when absent.
func (r *OrderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx, `
        SELECT id, delivery_address, latitude, longitude, vendor_id, status,
               estimated_delivery_at, created_at
        FROM orders WHERE id=$1
    `, id).Scan(&o.ID, &o.DeliveryAddress, &o.DeliveryLocation.Latitude, &o.DeliveryLocation.Longitude,
		&o.VendorID, &o.Status, &o.EstimatedDeliveryAt, &o.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, storeErr(err, "get order %q", id)
	}

	items, err := r.loadItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

// AssignVendor binds a vendor to an order with the computed ETA, moving the
// order to the given status. The update is conditional on the order being
// unassigned so concurrent attempts cannot overwrite each other; returns
// false when no row matched.
func (r *OrderRepo) AssignVendor(ctx context.Context, orderID string, vendorID int64, eta time.Time, status domain.OrderStatus) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET vendor_id = $2,
            estimated_delivery_at = $3,
            status = $4,
            updated_at = now()
        WHERE id = $1 AND vendor_id IS NULL
    `, orderID, vendorID, eta, string(status))
	if err != nil {
		return false, storeErr(err, "assign order %q to vendor %d", orderID, vendorID)
	}
	return ct.RowsAffected() > 0, nil
}

// ListByVendor returns the vendor's orders in the given statuses, newest first.
func (r *OrderRepo) ListByVendor(ctx context.Context, vendorID int64, statuses []domain.OrderStatus) ([]domain.Order, error) {
	ss := make([]string, 0, len(statuses))
	for _, s := range statuses {
		ss = append(ss, string(s))
	}

	rows, err := r.db.Query(ctx, `
        SELECT id, delivery_address, latitude, longitude, vendor_id, status,
               estimated_delivery_at, created_at
        FROM orders
        WHERE vendor_id = $1 AND status = ANY($2)
        ORDER BY created_at DESC
    `, vendorID, ss)
	if err != nil {
		return nil, storeErr(err, "list orders for vendor %d", vendorID)
	}
	defer rows.Close()

	var (
		orders []domain.Order
		ids    []string
	)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.DeliveryAddress, &o.DeliveryLocation.Latitude, &o.DeliveryLocation.Longitude,
			&o.VendorID, &o.Status, &o.EstimatedDeliveryAt, &o.CreatedAt); err != nil {
			return nil, storeErr(err, "scan order")
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "list orders for vendor %d", vendorID)
	}
	if len(orders) == 0 {
		return nil, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

func (r *OrderRepo) loadItems(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	rows, err := r.db.Query(ctx, `
        SELECT order_id, brand, size, quantity, price
        FROM order_items
        WHERE order_id = ANY($1)
        ORDER BY order_id, brand, size
    `, orderIDs)
	if err != nil {
		return nil, storeErr(err, "load order items")
	}
	defer rows.Close()

	out := make(map[string][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			orderID string
			item    domain.OrderItem
		)
		if err := rows.Scan(&orderID, &item.Brand, &item.Size, &item.Quantity, &item.Price); err != nil {
			return nil, storeErr(err, "scan order item")
		}
		out[orderID] = append(out[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "load order items")
	}
	return out, nil
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"aquadrop/internal/domain"
)

// VendorRepo represents vendor repository.
type VendorRepo struct{ db *pgxpool.Pool }

// NewVendorRepo creates a new VendorRepo.
func NewVendorRepo(db *pgxpool.Pool) *VendorRepo { return &VendorRepo{db: db} }

const vendorColumns = `id, name, phone, latitude, longitude, service_radius_km, is_online, is_verified`

// Get - returns vendor by its ID with inventory, or nil when absent.
func (r *VendorRepo) Get(ctx context.Context, id int64) (*domain.Vendor, error) {
	var (
		v        domain.Vendor
		lat, lon *float64
	)
	err := r.db.QueryRow(ctx,
		`SELECT `+vendorColumns+` FROM vendors WHERE id=$1`, id,
	).Scan(&v.ID, &v.Name, &v.Phone, &lat, &lon, &v.ServiceRadiusKm, &v.Online, &v.Verified)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, storeErr(err, "get vendor %d", id)
	}
	v.Location = coordinate(lat, lon)

	inv, err := r.loadInventory(ctx, []int64{v.ID})
	if err != nil {
		return nil, err
	}
	v.Inventory = inv[v.ID]
	return &v, nil
}

// ListEligible returns online and verified vendors with their inventory,
// ordered by id.
func (r *VendorRepo) ListEligible(ctx context.Context) ([]domain.Vendor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+vendorColumns+` FROM vendors WHERE is_online AND is_verified ORDER BY id`)
	if err != nil {
		return nil, storeErr(err, "list eligible vendors")
	}
	defer rows.Close()

	var (
		vendors []domain.Vendor
		ids     []int64
	)
	for rows.Next() {
		var (
			v        domain.Vendor
			lat, lon *float64
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Phone, &lat, &lon, &v.ServiceRadiusKm, &v.Online, &v.Verified); err != nil {
			return nil, storeErr(err, "scan vendor")
		}
		v.Location = coordinate(lat, lon)
		vendors = append(vendors, v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "list eligible vendors")
	}
	if len(vendors) == 0 {
		return nil, nil
	}

	inv, err := r.loadInventory(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range vendors {
		vendors[i].Inventory = inv[vendors[i].ID]
	}
	return vendors, nil
}

// UpdateLocation overwrites the vendor's last known position. Returns true
// if a row was affected. Last write wins; no history is kept.
func (r *VendorRepo) UpdateLocation(ctx context.Context, id int64, loc domain.Coordinate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE vendors
        SET latitude = $2, longitude = $3, updated_at = now()
        WHERE id = $1
    `, id, loc.Latitude, loc.Longitude)
	if err != nil {
		return false, storeErr(err, "update vendor location %d", id)
	}
	return ct.RowsAffected() > 0, nil
}

func (r *VendorRepo) loadInventory(ctx context.Context, vendorIDs []int64) (map[int64][]domain.InventoryLine, error) {
	rows, err := r.db.Query(ctx, `
        SELECT vendor_id, brand, stock, is_available
        FROM vendor_inventory
        WHERE vendor_id = ANY($1)
        ORDER BY vendor_id, brand
    `, vendorIDs)
	if err != nil {
		return nil, storeErr(err, "load inventory")
	}
	defer rows.Close()

	out := make(map[int64][]domain.InventoryLine, len(vendorIDs))
	for rows.Next() {
		var (
			vendorID int64
			line     domain.InventoryLine
		)
		if err := rows.Scan(&vendorID, &line.Brand, &line.Stock, &line.Available); err != nil {
			return nil, storeErr(err, "scan inventory line")
		}
		out[vendorID] = append(out[vendorID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "load inventory")
	}
	return out, nil
}

func coordinate(lat, lon *float64) *domain.Coordinate {
	if lat == nil || lon == nil {
		return nil
	}
	return &domain.Coordinate{Latitude: *lat, Longitude: *lon}
}

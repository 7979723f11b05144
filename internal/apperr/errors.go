package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrOrderNotFound indicates that the referenced order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ErrVendorNotFound indicates that the referenced vendor does not exist.
var ErrVendorNotFound = errors.New("vendor not found")

// ErrNoVendorsAvailable indicates that no vendor is online and verified.
var ErrNoVendorsAvailable = errors.New("no vendors available")

// ErrNoStockAvailable indicates that online vendors exist but none stocks
// every required brand.
var ErrNoStockAvailable = errors.New("no vendor stocks the required brands")

// ErrNoVendorsInArea indicates that stocked vendors exist but the delivery
// point is outside all of their service radii.
var ErrNoVendorsInArea = errors.New("no vendors service this area")

// ErrAlreadyAssigned indicates that the order already has a vendor bound to
// it. Assignment is written at most once by this service.
var ErrAlreadyAssigned = errors.New("order already assigned")

// ErrStoreUnavailable wraps persistence failures. Callers may retry these;
// the business-rule errors above are terminal.
var ErrStoreUnavailable = errors.New("store unavailable")

package handlers

import (
	"errors"
	"net/http"

	"aquadrop/internal/apperr"
	"aquadrop/internal/domain"
	"aquadrop/internal/logx"
)

// VendorHandler serves vendor-facing endpoints.
type VendorHandler struct {
	usecase allocationUsecase
	logger  logx.Logger
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(logger logx.Logger, uc allocationUsecase) *VendorHandler {
	return &VendorHandler{usecase: uc, logger: logger}
}

// Nearby handles GET /vendors/nearby?lat=&lon=&radius_km=.
// radius_km is optional; the engine substitutes the default radius.
func (h *VendorHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	lat, err := floatQuery(r, "lat")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	lon, err := floatQuery(r, "lon")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	var radiusKm float64
	if r.URL.Query().Get("radius_km") != "" {
		radiusKm, err = floatQuery(r, "radius_km")
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	list, err := h.usecase.VendorsInRadius(r.Context(), domain.Coordinate{Latitude: lat, Longitude: lon}, radiusKm)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, vendorsToResponse(list))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid coordinates")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// UpdateLocation handles PUT /vendors/{id}/location.
func (h *VendorHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateLocationRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err = h.usecase.UpdateVendorLocation(r.Context(), id, domain.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude})
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid coordinates")
	case errors.Is(err, apperr.ErrVendorNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "vendor not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// ActiveOrders handles GET /vendors/{id}/orders/active.
func (h *VendorHandler) ActiveOrders(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	list, err := h.usecase.VendorActiveOrders(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, ordersToResponse(list))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
	case errors.Is(err, apperr.ErrVendorNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "vendor not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"aquadrop/internal/apperr"
	"aquadrop/internal/logx"
)

// AllocationHandler serves the order assignment endpoint.
type AllocationHandler struct {
	usecase allocationUsecase
	logger  logx.Logger
}

// NewAllocationHandler creates a new AllocationHandler.
func NewAllocationHandler(logger logx.Logger, uc allocationUsecase) *AllocationHandler {
	return &AllocationHandler{usecase: uc, logger: logger}
}

// Assign handles POST /orders/{id}/assign.
// Picks the nearest eligible vendor for the order and commits the
// assignment. Allocation failures come back as 409 with a reason code.
func (h *AllocationHandler) Assign(w http.ResponseWriter, r *http.Request) {
	orderID := strings.TrimSpace(chi.URLParam(r, "id"))
	if orderID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order id")
		return
	}

	a, err := h.usecase.AutoAssignOrder(r.Context(), orderID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, assignmentToResponse(a))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrOrderNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
	case errors.Is(err, apperr.ErrAlreadyAssigned):
		writeErrorCode(h.logger, w, r, http.StatusConflict, "already_assigned", "order already assigned")
	case errors.Is(err, apperr.ErrNoVendorsAvailable):
		writeErrorCode(h.logger, w, r, http.StatusConflict, "no_vendors_available", "no vendors available")
	case errors.Is(err, apperr.ErrNoStockAvailable):
		writeErrorCode(h.logger, w, r, http.StatusConflict, "no_stock_available", "no vendor stocks the required brands")
	case errors.Is(err, apperr.ErrNoVendorsInArea):
		writeErrorCode(h.logger, w, r, http.StatusConflict, "no_vendors_in_area", "no vendors service this area")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

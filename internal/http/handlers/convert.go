package handlers

import "aquadrop/internal/domain"

func assignmentToResponse(a domain.Assignment) assignResponse {
	return assignResponse{
		OrderID:             a.OrderID,
		VendorID:            a.VendorID,
		DistanceKm:          a.DistanceKm,
		EstimatedMinutes:    a.EstimatedMinutes,
		EstimatedDeliveryAt: a.EstimatedDeliveryAt,
	}
}

func vendorToResponse(v domain.Vendor) vendorDTO {
	dto := vendorDTO{
		ID:              v.ID,
		Name:            v.Name,
		Phone:           v.Phone,
		ServiceRadiusKm: v.ServiceRadiusKm,
	}
	if v.Location != nil {
		lat, lon := v.Location.Latitude, v.Location.Longitude
		dto.Latitude, dto.Longitude = &lat, &lon
	}
	return dto
}

func vendorsToResponse(list []domain.Vendor) []vendorDTO {
	out := make([]vendorDTO, 0, len(list))
	for _, v := range list {
		out = append(out, vendorToResponse(v))
	}
	return out
}

func orderToResponse(o domain.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDTO{
			Brand:    it.Brand,
			Size:     it.Size,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return orderDTO{
		ID:                  o.ID,
		DeliveryAddress:     o.DeliveryAddress,
		Status:              string(o.Status),
		Items:               items,
		EstimatedDeliveryAt: o.EstimatedDeliveryAt,
		CreatedAt:           o.CreatedAt,
	}
}

func ordersToResponse(list []domain.Order) []orderDTO {
	out := make([]orderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, orderToResponse(o))
	}
	return out
}

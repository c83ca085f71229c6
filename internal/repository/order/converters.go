package order

import "dispatch/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:          o.ID,
		CityID:      o.CityID,
		Address:     o.Address,
		Status:      entities.OrderStatusType(o.Status),
		PromisedAt:  o.PromisedAt,
		DeliveredAt: o.DeliveredAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		DeletedAt:   o.DeletedAt,
	}
}

func ToCandidate(c CompletionCandidateDB) entities.CompletionCandidate {
	return entities.CompletionCandidate{
		OrderID:    c.OrderID,
		CityID:     c.CityID,
		PromisedAt: c.PromisedAt.UTC(),
		Zone:       c.Timezone,
	}
}

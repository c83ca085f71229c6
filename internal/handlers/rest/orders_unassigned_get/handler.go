package orders_unassigned_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/service/city"
	"dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "orders_unassigned_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP - GET /orders/unassigned?city_id=&date=YYYY-MM-DD.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	cityID, err := strconv.ParseInt(query.Get("city_id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	date, err := dto.ParseDate(query.Get("date"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	unassigned, err := h.service.ListUnassigned(r.Context(), cityID, date)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidCityID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, city.ErrCityNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.Error("list unassigned orders", logger.NewField("city_id", cityID), logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orders := make([]dto.Order, len(unassigned.Orders))
	for i, orderEntity := range unassigned.Orders {
		orders[i] = dto.FromOrder(orderEntity)
	}
	response := dto.UnassignedOrders{
		CityID:       unassigned.CityID,
		Date:         unassigned.Date.Format(dto.DateLayout),
		WorkingDay:   unassigned.WorkingDay,
		SlotCapacity: unassigned.SlotCapacity,
		Orders:       orders,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

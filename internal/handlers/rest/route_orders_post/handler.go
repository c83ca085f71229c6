package route_orders_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/service/route"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "route_orders_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP ставит пакет заказов в маршрут. Если часть заказов отклонена,
// отвечает 207 и перечисляет отклоненные вместе с маршрутом, где они уже стоят.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	routeID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req dto.AssignOrdersRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.AssignmentItem, len(req.Orders))
	for i, item := range req.Orders {
		items[i] = entities.AssignmentItem{
			OrderID:   item.OrderID,
			Sequence:  item.Sequence,
			Latitude:  item.Latitude,
			Longitude: item.Longitude,
			MapLink:   item.MapLink,
			Notes:     item.Notes,
		}
	}

	result, err := h.service.AssignOrders(r.Context(), routeID, items)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrEmptyBatch):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, route.ErrRouteNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, route.ErrRouteLocked):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("assign orders", logger.NewField("route_id", routeID), logger.NewField("error", err))
			// остановки уже созданы, упали только счетчики маршрута: отдаем, что успело примениться
			if result != nil && len(result.Created) > 0 {
				h.writeResult(w, http.StatusInternalServerError, result)
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	status := http.StatusOK
	if result.Err() != nil {
		status = http.StatusMultiStatus
		h.log.Warn("orders partially assigned",
			logger.NewField("route_id", routeID),
			logger.NewField("assigned", len(result.Created)),
			logger.NewField("rejected", len(result.Errors)),
		)
	}

	h.writeResult(w, status, result)
}

func (h *Handler) writeResult(w http.ResponseWriter, status int, result *entities.AssignmentResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(dto.FromAssignmentResult(*result))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

package route_put

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
	handlerLog := log.With(logger.NewField("handler", "route_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP меняет дату, заметки или курьера маршрута; город маршрута не меняется.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req dto.RouteModify
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	routeModify := entities.RouteModify{
		ID:        &id,
		CourierID: req.CourierID,
		Notes:     req.Notes,
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		routeModify.Date = &date
	}

	routeEntity, err := h.service.UpdateRoute(r.Context(), routeModify)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrInvalidRouteID),
			errors.Is(err, route.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, route.ErrRouteNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, route.ErrRouteLocked),
			errors.Is(err, route.ErrCourierUnavailable):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("update route", logger.NewField("route_id", id), logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromRoute(*routeEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

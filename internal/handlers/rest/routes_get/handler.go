package routes_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	handlerLog := log.With(logger.NewField("handler", "routes_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдает маршруты по фильтрам ?city_id=&date=&status=&courier_id=.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	routeEntities, err := h.service.GetRoutes(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.Error("get routes", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	routeDTOs := make([]dto.Route, len(routeEntities))
	for i, routeEntity := range routeEntities {
		routeDTOs[i] = dto.FromRoute(routeEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(routeDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.RouteFilter, error) {
	var filter entities.RouteFilter
	query := r.URL.Query()

	if raw := query.Get("city_id"); raw != "" {
		cityID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.CityID = &cityID
	}
	if raw := query.Get("courier_id"); raw != "" {
		courierID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.CourierID = &courierID
	}
	if raw := query.Get("date"); raw != "" {
		date, err := dto.ParseDate(raw)
		if err != nil {
			return filter, err
		}
		filter.Date = &date
	}
	if raw := query.Get("status"); raw != "" {
		status := entities.RouteStatusType(raw)
		filter.Status = &status
	}
	return filter, nil
}

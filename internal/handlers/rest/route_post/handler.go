package route_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/service/city"
	"dispatch/internal/service/route"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "route_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteModify
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	routeModify := entities.RouteModify{
		CityID:    req.CityID,
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

	routeEntity, err := h.service.CreateRoute(r.Context(), routeModify)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrMissingRequiredFields),
			errors.Is(err, city.ErrCityNotFound):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, route.ErrCourierUnavailable):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("create route", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.log.Info("route created",
		logger.NewField("route_id", routeEntity.ID),
		logger.NewField("city_id", routeEntity.CityID),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromRoute(*routeEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

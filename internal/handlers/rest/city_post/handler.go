package city_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/service/city"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "city_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.CityCreate
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	workingDays := make([]time.Weekday, len(req.WorkingDays))
	for i, day := range req.WorkingDays {
		workingDays[i] = time.Weekday(day)
	}

	id, err := h.service.CreateCity(r.Context(), entities.City{
		Name:         req.Name,
		Timezone:     req.Timezone,
		WorkingDays:  workingDays,
		SlotCapacity: req.SlotCapacity,
	})
	if err != nil {
		switch {
		case errors.Is(err, city.ErrInvalidName),
			errors.Is(err, entities.ErrNoWorkingDays),
			errors.Is(err, entities.ErrInvalidWorkingDay),
			errors.Is(err, entities.ErrInvalidSlotCapacity),
			errors.Is(err, entities.ErrInvalidTimezone):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, city.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("create city", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.CityCreateResponse{ID: id})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

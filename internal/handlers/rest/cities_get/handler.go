package cities_get

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "cities_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cityEntities, err := h.service.GetCities(r.Context())
	if err != nil {
		h.log.Error("get cities", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cityDTOs := make([]dto.City, len(cityEntities))
	for i, cityEntity := range cityEntities {
		cityDTOs[i] = dto.FromCity(cityEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(cityDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

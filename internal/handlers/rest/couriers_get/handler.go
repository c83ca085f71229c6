package couriers_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "couriers_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдает курьеров, опционально фильтруя по ?city_id= и ?status=.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var filter entities.CourierFilter

	query := r.URL.Query()
	if raw := query.Get("city_id"); raw != "" {
		cityID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || cityID <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.CityID = &cityID
	}
	if raw := query.Get("status"); raw != "" {
		status := entities.CourierStatusType(raw)
		if !status.IsValid() {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.Status = &status
	}

	courierEntities, err := h.service.GetCouriers(r.Context(), filter)
	if err != nil {
		h.log.Error("get couriers", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	courierDTOs := make([]dto.Courier, len(courierEntities))
	for i, courierEntity := range courierEntities {
		courierDTOs[i] = dto.FromCourier(courierEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(courierDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

package ping_get

import (
	"encoding/json"
	"net/http"
	"time"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/pkg/logger"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
	now func() time.Time
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With(logger.NewField("handler", "ping_get"))

	return &Handler{
		log: handlerLog,
		now: time.Now,
	}
}

// ServeHTTP отдает pong и UTC-время сервера, по нему удобно сверять часы с клиентами.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := pong
	res := dto.PingResponse{
		Message:    &message,
		ServerTime: h.now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
	"dispatch/internal/service/orderevents"
	"dispatch/pkg/logger"
)

type Handler struct {
	orderEvents              Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderEvents Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_status_changed"))

	return &Handler{
		orderEvents:              orderEvents,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение. true - выйти из ConsumeClaim без коммита,
// сообщение будет перечитано.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.status.changed handler received bad message")
		OrderEventsTotal.WithLabelValues(outcomeMalformed).Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.status.changed processing")

	updated, err := h.orderEvents.ProcessOrderStatusChange(ctx, entities.OrderStatusEvent{
		OrderID:   event.OrderID,
		Status:    entities.OrderStatusType(event.Status),
		ChangedAt: event.ChangedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			OrderEventsTotal.WithLabelValues(outcomeRetried).Inc()
			return true

		case errors.Is(err, orderevents.ErrInvalidEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler invalid event")
			OrderEventsTotal.WithLabelValues(outcomeRejected).Inc()

		case errors.Is(err, order.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler unknown order")
			OrderEventsTotal.WithLabelValues(outcomeRejected).Inc()

		case errors.Is(err, order.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler transition not allowed")
			OrderEventsTotal.WithLabelValues(outcomeRejected).Inc()

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.status.changed handler failed to process order")
			OrderEventsTotal.WithLabelValues(outcomeFailed).Inc()
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("order", updated.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", updated.Status.String()),
		logger.NewField("offset", message.Offset),
	).Info("order.status.changed: processed")
	OrderEventsTotal.WithLabelValues(outcomeProcessed).Inc()

	sess.MarkMessage(message, "")
	return false
}

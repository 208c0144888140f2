package controller

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"picko/internal/domain"
	"picko/internal/dto"
	apperrors "picko/internal/errors"
)

type OrderService interface {
	AllOrders() []domain.Order
	ActiveOrders() []domain.Order
	CompletedOrders() []domain.Order
	AddOrder(order domain.Order) error
	AppendStatus(id uuid.UUID, name domain.StatusType, at time.Time) (domain.Order, error)
	CancelOrder(id uuid.UUID, at time.Time) (domain.Order, error)
	Reset(toSeed bool) error
}

type OrderController struct {
	service OrderService
	logger  *zap.Logger
}

func NewOrderController(service OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{
		service: service,
		logger:  logger,
	}
}

func (c *OrderController) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, dto.NewOrderResponses(c.service.AllOrders()))
}

func (c *OrderController) HandleListActiveOrders(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, dto.NewOrderResponses(c.service.ActiveOrders()))
}

func (c *OrderController) HandleListCompletedOrders(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, dto.NewOrderResponses(c.service.CompletedOrders()))
}

func (c *OrderController) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	order, err := req.ToOrder(uuid.New(), time.Now())
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	if err := c.service.AddOrder(order); err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.NewOrderResponse(order))
}

func (c *OrderController) HandleAppendStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.parseOrderID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	status, err := domain.ToStatusType(req.Name)
	if err != nil {
		c.writeValidationError(w, "invalid status", apperrors.ValidationDetail{
			Field:   "name",
			Message: err.Error(),
		})
		return
	}

	order, err := c.service.AppendStatus(orderID, status, time.Now())
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

func (c *OrderController) HandleCancelOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.parseOrderID(w, r)
	if !ok {
		return
	}

	order, err := c.service.CancelOrder(orderID, time.Now())
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

// HandleReset serves the two external reset triggers: seed=true restores the
// demo data, seed=false clears everything.
func (c *OrderController) HandleReset(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	toSeed, err := strconv.ParseBool(r.URL.Query().Get("seed"))
	if err != nil {
		c.writeValidationError(w, "invalid seed parameter", apperrors.ValidationDetail{
			Field:   "seed",
			Message: "seed must be true or false",
		})
		return
	}

	if err := c.service.Reset(toSeed); err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]bool{"seeded": toSeed})
}

func (c *OrderController) parseOrderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderId"))
	if err != nil {
		c.writeValidationError(w, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a valid UUID",
		})
		return uuid.Nil, false
	}
	return orderID, true
}

func (c *OrderController) handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}
	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, map[string]string{
			"error":   "CONFLICT",
			"message": ce.Message,
		})
		return
	}

	logger.Error("order operation failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}

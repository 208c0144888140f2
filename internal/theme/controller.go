package theme

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "picko/internal/errors"
)

type Controller struct {
	service *Service
	logger  *zap.Logger
}

func NewController(service *Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

type themePayload struct {
	Theme string `json:"theme"`
}

func (c *Controller) HandleGetTheme(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, themePayload{Theme: string(c.service.Get())})
}

func (c *Controller) HandleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req themePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "request body must be valid JSON",
		})
		return
	}

	if err := c.service.Set(Theme(req.Theme)); err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":   "VALIDATION_ERROR",
				"message": ve.Message,
			})
			return
		}
		c.logger.Error("failed to set theme", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, themePayload{Theme: req.Theme})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}

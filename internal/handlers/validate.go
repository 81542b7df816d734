package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/nationalcode/internal/models"
	"github.com/AlenaMolokova/nationalcode/internal/utils"
	"go.uber.org/zap"
)

type ValidateHandler struct {
	validator CodeValidator
	logger    *zap.Logger
}

func NewValidateHandler(validator CodeValidator, logger *zap.Logger) *ValidateHandler {
	return &ValidateHandler{validator: validator, logger: logger}
}

// ServeHTTP answers 200 for every classification, including rejected codes.
func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in, err := readCodeInput(w, r)
	if err != nil {
		h.logger.Debug("bad validate request", zap.Error(err))
		writeReadError(w, err)
		return
	}

	res := h.validator.Validate(in)
	resp := models.CheckResponse{Code: res.Code, Valid: res.Valid, Message: res.Message}
	if err := utils.WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("failed to encode validate response", zap.Error(err))
	}
}

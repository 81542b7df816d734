package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/nationalcode/internal/middleware"
	"github.com/AlenaMolokova/nationalcode/internal/models"
	"github.com/AlenaMolokova/nationalcode/internal/utils"
	"go.uber.org/zap"
)

type CheckHandler struct {
	recorder CheckRecorder
	logger   *zap.Logger
}

func NewCheckHandler(recorder CheckRecorder, logger *zap.Logger) *CheckHandler {
	return &CheckHandler{recorder: recorder, logger: logger}
}

func (h *CheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	in, err := readCodeInput(w, r)
	if err != nil {
		h.logger.Debug("bad check request", zap.Int64("user_id", userID), zap.Error(err))
		writeReadError(w, err)
		return
	}

	check, err := h.recorder.CheckAndRecord(r.Context(), userID, in)
	if err != nil {
		h.logger.Error("failed to record check", zap.Int64("user_id", userID), zap.Error(err))
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("code checked",
		zap.Int64("user_id", userID),
		zap.Int64("check_id", check.ID),
		zap.Bool("valid", check.Valid),
		zap.String("message", check.Message),
	)
	if err := utils.WriteJSON(w, http.StatusOK, models.NewCheckResponse(check)); err != nil {
		h.logger.Error("failed to encode check response", zap.Error(err))
	}
}

type ChecksGetHandler struct {
	lister CheckLister
	logger *zap.Logger
}

func NewChecksGetHandler(lister CheckLister, logger *zap.Logger) *ChecksGetHandler {
	return &ChecksGetHandler{lister: lister, logger: logger}
}

func (h *ChecksGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	checks, err := h.lister.GetUserChecks(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get checks", zap.Int64("user_id", userID), zap.Error(err))
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(checks) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]models.CheckResponse, len(checks))
	for i, c := range checks {
		response[i] = models.NewCheckResponse(c)
	}
	if err := utils.WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("failed to encode checks response", zap.Error(err))
	}
}

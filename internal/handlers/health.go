package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

type PingHandler struct {
	db     Pinger
	logger *zap.Logger
}

func NewPingHandler(db Pinger, logger *zap.Logger) *PingHandler {
	return &PingHandler{db: db, logger: logger}
}

func (h *PingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Warn("database ping failed", zap.Error(err))
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

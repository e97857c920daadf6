package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/nats-io/nats.go"
	"gorm.io/gorm"
)

// HealthChecker checks the health of service dependencies
type HealthChecker struct {
	db     *gorm.DB
	nc     *nats.Conn
	logger *log.Helper
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(db *gorm.DB, nc *nats.Conn, logger log.Logger) *HealthChecker {
	return &HealthChecker{
		db:     db,
		nc:     nc,
		logger: log.NewHelper(logger),
	}
}

// CheckLiveness performs a basic liveness check
func (h *HealthChecker) CheckLiveness(ctx context.Context) error {
	return nil
}

// CheckReadiness performs a readiness check on all dependencies
func (h *HealthChecker) CheckReadiness(ctx context.Context) error {
	if err := h.checkDatabase(ctx); err != nil {
		h.logger.Warnf("database health check failed: %v", err)
		return fmt.Errorf("database not ready: %w", err)
	}

	// NATS is optional; only check it when configured
	if h.nc != nil && !h.nc.IsConnected() {
		h.logger.Warnf("NATS health check failed: not connected")
		return fmt.Errorf("NATS not ready")
	}

	return nil
}

func (h *HealthChecker) checkDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// LivenessHandler returns an HTTP handler for liveness probes
func (h *HealthChecker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.CheckLiveness(r.Context()); err != nil {
			h.logger.Errorf("liveness check failed: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = fmt.Fprintf(w, "Service not live: %v", err)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// ReadinessHandler returns an HTTP handler for readiness probes
func (h *HealthChecker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.CheckReadiness(r.Context()); err != nil {
			h.logger.Warnf("readiness check failed: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = fmt.Fprintf(w, "Service not ready: %v", err)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

package server

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	// GORM pings once when opening the connection.
	mock.ExpectPing()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestCheckLiveness(t *testing.T) {
	db, _ := setupMockDB(t)
	hc := NewHealthChecker(db, nil, log.NewStdLogger(io.Discard))

	assert.NoError(t, hc.CheckLiveness(context.Background()))
}

func TestCheckReadiness(t *testing.T) {
	t.Run("database healthy, no NATS configured", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectPing()

		hc := NewHealthChecker(db, nil, log.NewStdLogger(io.Discard))
		assert.NoError(t, hc.CheckReadiness(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database ping failure fails readiness", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectPing().WillReturnError(sql.ErrConnDone)

		hc := NewHealthChecker(db, nil, log.NewStdLogger(io.Discard))
		err := hc.CheckReadiness(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database not ready")
	})
}

func TestHealthHandlers(t *testing.T) {
	t.Run("liveness returns 200", func(t *testing.T) {
		db, _ := setupMockDB(t)
		hc := NewHealthChecker(db, nil, log.NewStdLogger(io.Discard))

		w := httptest.NewRecorder()
		hc.LivenessHandler()(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("readiness returns 503 when database is down", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectPing().WillReturnError(sql.ErrConnDone)

		hc := NewHealthChecker(db, nil, log.NewStdLogger(io.Discard))

		w := httptest.NewRecorder()
		hc.ReadinessHandler()(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "Service not ready")
	})
}

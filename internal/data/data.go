package data

import (
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/nats-io/nats.go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/arahhq/hr-office/internal/conf"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(NewData, NewEmployeeRepo, NewAgreementRepo)

// Data holds the shared persistence and messaging handles.
type Data struct {
	db        *gorm.DB
	nc        *nats.Conn
	publisher *EventPublisher
}

// NewData opens the database and, when configured, the NATS connection.
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	logHelper := log.NewHelper(logger)

	db, err := gorm.Open(postgres.Open(c.Database.Source), &gorm.Config{})
	if err != nil {
		logHelper.Errorf("failed to connect to database: %v", err)
		return nil, nil, err
	}

	logHelper.Info("database connected successfully")

	var nc *nats.Conn
	var publisher *EventPublisher

	if c.Nats != nil && c.Nats.Url != "" {
		nc, err = nats.Connect(c.Nats.Url,
			nats.MaxReconnects(-1),
			nats.ReconnectWait(2*time.Second),
			nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
				logHelper.Warnf("NATS disconnected: %v", err)
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				logHelper.Infof("NATS reconnected to %s", nc.ConnectedUrl())
			}),
		)
		if err != nil {
			logHelper.Warnf("failed to connect to NATS (continuing without events): %v", err)
			nc = nil
		} else {
			logHelper.Infof("connected to NATS at %s", c.Nats.Url)
			publisher = NewEventPublisher(nc, logger)
		}
	} else {
		logHelper.Info("NATS not configured, events disabled")
	}

	cleanup := func() {
		if nc != nil {
			nc.Close()
			logHelper.Info("NATS connection closed")
		}

		sqlDB, err := db.DB()
		if err != nil {
			logHelper.Errorf("failed to get database instance: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logHelper.Errorf("failed to close database: %v", err)
		}
		logHelper.Info("closing the data resources")
	}

	return &Data{db: db, nc: nc, publisher: publisher}, cleanup, nil
}

// GetDB exposes the database handle for health checks.
func (d *Data) GetDB() *gorm.DB {
	return d.db
}

// GetNATS exposes the NATS connection for health checks.
func (d *Data) GetNATS() *nats.Conn {
	return d.nc
}

//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/arahhq/hr-office/internal/biz"
	"github.com/arahhq/hr-office/internal/conf"
	"github.com/arahhq/hr-office/internal/data"
	"github.com/arahhq/hr-office/internal/observability"
	"github.com/arahhq/hr-office/internal/server"
	"github.com/arahhq/hr-office/internal/service"
	"github.com/arahhq/hr-office/internal/sheet"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireApp init kratos application.
func wireApp(
	serverConf *conf.Server,
	dataConf *conf.Data,
	documentsConf *conf.Documents,
	obsConf *conf.Observability,
	environment string,
	serviceName observability.ServiceName,
	version observability.ServiceVersion,
	logger log.Logger,
) (*kratos.App, func(), error) {
	panic(wire.Build(
		server.ProviderSet,
		data.ProviderSet,
		biz.ProviderSet,
		service.ProviderSet,
		sheet.ProviderSet,
		observability.ProviderSet,
		observability.NewServiceInfo,
		newApp,
	))
}

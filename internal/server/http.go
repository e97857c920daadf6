package server

import (
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	kratosMiddleware "github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/arahhq/hr-office/internal/conf"
	"github.com/arahhq/hr-office/internal/observability"
	"github.com/arahhq/hr-office/internal/service"
)

// NewHTTPServer builds the HTTP server and mounts the API routes.
func NewHTTPServer(
	c *conf.Server,
	docs *conf.Documents,
	obs *observability.Observability,
	employeeSvc *service.EmployeeService,
	letterSvc *service.LetterService,
	uploadSvc *service.UploadService,
	health *HealthChecker,
	logger log.Logger,
) *http.Server {
	middlewares := []kratosMiddleware.Middleware{
		recovery.Recovery(),
	}
	middlewares = append(middlewares, obs.ServerMiddleware()...)

	var opts = []http.ServerOption{
		http.Middleware(middlewares...),
	}
	if c.Http.Network != "" {
		opts = append(opts, http.Network(c.Http.Network))
	}
	if c.Http.Addr != "" {
		opts = append(opts, http.Address(c.Http.Addr))
	}
	if c.Http.Timeout != "" {
		if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
			opts = append(opts, http.Timeout(d))
		} else {
			log.NewHelper(logger).Warnf("invalid http timeout %q, using default", c.Http.Timeout)
		}
	}

	srv := http.NewServer(opts...)

	r := srv.Route("/api/v1")
	// Static sub-paths are registered before the {id} routes so the router
	// never treats "template" or "upload" as a record ID.
	r.GET("/employees/template", employeeSvc.DownloadTemplate)
	r.POST("/employees/upload", employeeSvc.BulkUpload)
	r.POST("/employees", employeeSvc.Create)
	r.GET("/employees", employeeSvc.List)
	r.GET("/employees/{id}", employeeSvc.Get)
	r.PUT("/employees/{id}", employeeSvc.Update)
	r.DELETE("/employees/{id}", employeeSvc.Delete)

	r.POST("/letters/generate", letterSvc.Generate)
	r.GET("/letters/history/{employee_id}", letterSvc.History)
	r.POST("/letters/download-docx", letterSvc.DownloadDocx)

	r.POST("/assets/template-image", uploadSvc.TemplateImage)
	r.POST("/assets/template-pdf", uploadSvc.TemplatePDF)

	srv.HandleFunc("/healthz", health.LivenessHandler())
	srv.HandleFunc("/readyz", health.ReadinessHandler())
	srv.Handle("/metrics", obs.MetricsHandler())

	publicDir := "public"
	if docs != nil && docs.PublicDir != "" {
		publicDir = docs.PublicDir
	}
	srv.HandlePrefix("/public/", nethttp.StripPrefix("/public/", nethttp.FileServer(nethttp.Dir(publicDir))))

	return srv
}

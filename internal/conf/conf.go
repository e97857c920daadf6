// Package conf holds the bootstrap configuration scanned from
// configs/config.yaml plus environment overrides.
package conf

// Bootstrap is the top-level configuration.
type Bootstrap struct {
	Environment   string         `json:"environment"`
	Server        *Server        `json:"server"`
	Data          *Data          `json:"data"`
	Documents     *Documents     `json:"documents"`
	Observability *Observability `json:"observability"`
}

// Server configures the transport listeners.
type Server struct {
	Http *HTTP `json:"http"`
}

// HTTP configures the HTTP listener.
type HTTP struct {
	Network string `json:"network"`
	Addr    string `json:"addr"`
	// Timeout is a Go duration string, e.g. "5s".
	Timeout string `json:"timeout"`
}

// Data configures persistence and messaging.
type Data struct {
	Database *Database `json:"database"`
	Nats     *Nats     `json:"nats"`
}

// Database configures the PostgreSQL connection.
type Database struct {
	Source string `json:"source"`
}

// Nats configures the optional event bus connection.
type Nats struct {
	Url string `json:"url"`
}

// Documents configures document generation and static template assets.
type Documents struct {
	// PublicDir is where uploaded template images/PDFs are stored and served from.
	PublicDir string `json:"public_dir"`
	// CompanyName is the default service-provider name interpolated into agreements.
	CompanyName string `json:"company_name"`
	// MaxUploadBytes bounds bulk-import and asset upload request bodies.
	MaxUploadBytes int64 `json:"max_upload_bytes"`
}

// Observability configures logging, metrics and tracing.
type Observability struct {
	Logging *Logging `json:"logging"`
	Metrics *Metrics `json:"metrics"`
	Tracing *Tracing `json:"tracing"`
}

type Logging struct {
	Enabled bool   `json:"enabled"`
	Level   string `json:"level"`
}

type Metrics struct {
	Enabled   bool   `json:"enabled"`
	Namespace string `json:"namespace"`
	Subsystem string `json:"subsystem"`
}

type Tracing struct {
	Enabled    bool    `json:"enabled"`
	Endpoint   string  `json:"endpoint"`
	SampleRate float64 `json:"sample_rate"`
	Insecure   bool    `json:"insecure"`
}

package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Service  ServiceConfig  `yaml:"service"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Ops      OpsConfig      `yaml:"ops"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// UpstreamConfig holds settings of the external dictionary API client.
type UpstreamConfig struct {
	BaseURL      string        `yaml:"base_url"       env:"UPSTREAM_BASE_URL"       env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout      time.Duration `yaml:"timeout"        env:"UPSTREAM_TIMEOUT"        env-default:"8s"`
	MaxIdleConns int           `yaml:"max_idle_conns" env:"UPSTREAM_MAX_IDLE_CONNS"` // 0 selects the client default
}

// ServiceConfig holds the identity reported by the root endpoint.
type ServiceConfig struct {
	Name string `yaml:"name" env:"SERVICE_NAME" env-default:"Bino Dictionary API connector"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,HEAD,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// OpsConfig holds settings of the liveness and metrics listener. The
// listener runs unless Disabled is set: cleanenv re-applies env-default to
// any zero-valued field, so the flag must default to false.
type OpsConfig struct {
	Disabled bool   `yaml:"disabled" env:"OPS_DISABLED"`
	Addr     string `yaml:"addr"     env:"OPS_ADDR"     env-default:":9090"`
}

// Enabled reports whether the ops listener should run.
func (c OpsConfig) Enabled() bool {
	return !c.Disabled
}

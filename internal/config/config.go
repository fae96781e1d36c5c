package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Mail     MailConfig     `yaml:"mail"`
	Shop     ShopConfig     `yaml:"shop"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings. The browser UI is served from its own
// origin, so the defaults allow everything.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3001"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds store connection settings. For the sqlite driver the
// DSN is a file path (or ":memory:"); pool settings only apply to postgres.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"`
}

// Supported SMTP transport security modes.
const (
	MailTLSNone     = "none"
	MailTLSStartTLS = "starttls"
	MailTLSSSL      = "ssl"
)

// MailConfig holds SMTP settings for outgoing reports. An empty Host
// disables mail.
type MailConfig struct {
	Host        string        `yaml:"host"         env:"MAIL_HOST"`
	Port        int           `yaml:"port"         env:"MAIL_PORT"         env-default:"465"`
	Username    string        `yaml:"username"     env:"MAIL_USERNAME"`
	Password    string        `yaml:"password"     env:"MAIL_PASSWORD"`
	From        string        `yaml:"from"         env:"MAIL_FROM"`
	TLS         string        `yaml:"tls"          env:"MAIL_TLS"          env-default:"ssl"`
	SendTimeout time.Duration `yaml:"send_timeout" env:"MAIL_SEND_TIMEOUT" env-default:"15s"`
}

// Enabled reports whether an SMTP host is configured.
func (c MailConfig) Enabled() bool {
	return c.Host != ""
}

// FromAddress returns the sender address, falling back to the SMTP username.
func (c MailConfig) FromAddress() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}

// presetDefaults fills the fields whose zero value is a valid setting.
// cleanenv re-applies env-default to any field left zero by the YAML file,
// so these defaults are set before reading instead.
func presetDefaults(cfg *Config) {
	cfg.Database.MinConns = 1
	cfg.Database.AutoMigrate = true
	cfg.CORS.AllowedOrigins = "*"
	cfg.CORS.MaxAge = 86400
}

// ShopConfig holds business settings.
type ShopConfig struct {
	Name          string `yaml:"name"           env:"SHOP_NAME"           env-default:"Ordilan"`
	Timezone      string `yaml:"timezone"       env:"SHOP_TIMEZONE"       env-default:"Europe/Paris"`
	ReportSubject string `yaml:"report_subject" env:"SHOP_REPORT_SUBJECT" env-default:"Rapport d'historique de travaux"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

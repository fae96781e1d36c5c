package config

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	_ "time/tzdata" // shop time zone must resolve on hosts without zoneinfo
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("database.driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, c.Database.Driver)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if _, err := c.Shop.Location(); err != nil {
		return fmt.Errorf("shop.timezone: %w", err)
	}

	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	return nil
}

// Location resolves the configured shop time zone. An empty value means UTC.
func (s ShopConfig) Location() (*time.Location, error) {
	if strings.TrimSpace(s.Timezone) == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(s.Timezone)
}

func (m *MailConfig) validate() error {
	if !m.Enabled() {
		return nil
	}

	switch strings.ToLower(m.TLS) {
	case MailTLSNone, MailTLSStartTLS, MailTLSSSL:
	default:
		return fmt.Errorf("tls must be one of none, starttls, ssl (got %q)", m.TLS)
	}

	if m.Port < 1 || m.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", m.Port)
	}

	from := m.FromAddress()
	if _, err := mail.ParseAddress(from); err != nil {
		return fmt.Errorf("from address %q: %w", from, err)
	}

	return nil
}

package server

import (
	"os"

	"go.uber.org/zap"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
	// SSLCert is the path to the public SSL certificate file.
	SSLCert string `mapstructure:"ssl_cert" default:""`
	// SSLKey is the path to the private SSL key file.
	SSLKey string `mapstructure:"ssl_key" default:""`
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// TLSEnabled reports whether both a certificate and a key path are configured.
func (c Config) TLSEnabled() bool {
	return c.SSLCert != "" && c.SSLKey != ""
}

// TLSReady reports whether TLS is configured and both files are readable.
// When TLS is configured but a file is missing, a warning is logged and the
// server falls back to plain HTTP.
func (c Config) TLSReady(logg *zap.Logger) bool {
	if !c.TLSEnabled() {
		return false
	}
	for _, path := range []string{c.SSLCert, c.SSLKey} {
		f, err := os.Open(path)
		if err != nil {
			logg.Warn("TLS file not readable, falling back to plain HTTP",
				zap.String("path", path), zap.Error(err))
			return false
		}
		_ = f.Close()
	}
	return true
}

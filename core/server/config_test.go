package server_test

import (
	"os"
	"path/filepath"
	"testing"

	"phrase-agent/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfig_Addr(t *testing.T) {
	c := server.Config{Host: "localhost", Port: "8000"}
	assert.Equal(t, "localhost:8000", c.Addr())
}

func TestConfig_TLSEnabled(t *testing.T) {
	tests := []struct {
		name string
		cert string
		key  string
		want bool
	}{
		{"Both", "cert.pem", "key.pem", true},
		{"CertOnly", "cert.pem", "", false},
		{"KeyOnly", "", "key.pem", false},
		{"Neither", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{SSLCert: tt.cert, SSLKey: tt.key}
			assert.Equal(t, tt.want, c.TLSEnabled())
		})
	}
}

func TestConfig_TLSReady(t *testing.T) {
	dir := t.TempDir()
	cert := filepath.Join(dir, "cert.pem")
	key := filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(cert, []byte("cert"), 0o600))
	require.NoError(t, os.WriteFile(key, []byte("key"), 0o600))

	logg := zap.NewNop()

	c := server.Config{SSLCert: cert, SSLKey: key}
	assert.True(t, c.TLSReady(logg))

	// Missing key file falls back to plain HTTP.
	c = server.Config{SSLCert: cert, SSLKey: filepath.Join(dir, "missing.pem")}
	assert.False(t, c.TLSReady(logg))

	c = server.Config{}
	assert.False(t, c.TLSReady(logg))
}

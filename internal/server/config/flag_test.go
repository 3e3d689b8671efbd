package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-h", ":8081", "-d", "db",
			"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
			"-o", "https://cdn", "-t", "5", "-l", "debug",
		}, expected: &Config{
			EndpointAddrGRPC: "127.0.0.1:9090",
			EndpointAddrHTTP: ":8081",
			DatabaseDSN:      "db",
			S3RootUser:       "user",
			S3RootPassword:   "password",
			S3Bucket:         "bucket",
			S3Region:         "us-west-1",
			S3BaseEndpoint:   "http://endpoint",
			PublicBaseURL:    "https://cdn",
			PresignTTL:       5 * time.Minute,
			LogLevel:         "debug",
		}},
		{name: "Test2 bad ttl", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

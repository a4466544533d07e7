package delivery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
cloudwatch_log_group_names:
  - app-logs
  - /aws/eks/audit
cloudwatch_filter_pattern: '{ $.level = "ERROR" }'
destination_bucket_arn: arn:aws:s3:::audit-archive
s3_compression_format: GZIP
name: audit-pipeline
suffix: 4f2a9c8d1e6b3a7f
tags:
  team: platform
  env: production
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"app-logs", "/aws/eks/audit"}, cfg.LogGroupNames)
	assert.Equal(t, `{ $.level = "ERROR" }`, cfg.FilterPattern)
	assert.Equal(t, "arn:aws:s3:::audit-archive", cfg.BucketARN)
	assert.Equal(t, "GZIP", cfg.CompressionFormat)
	assert.Equal(t, "audit-pipeline", cfg.Name)
	assert.Equal(t, "4f2a9c8d1e6b3a7f", cfg.Suffix)
	assert.Equal(t, map[string]string{"team": "platform", "env": "production"}, cfg.Tags)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := writeConfigFile(t, "cloudwatch_log_group_names: [unclosed")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, DefaultName, cfg.Name)
	assert.Equal(t, DefaultCompressionFormat, cfg.CompressionFormat)

	cfg = Config{Name: "custom", CompressionFormat: "GZIP"}.withDefaults()
	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, "GZIP", cfg.CompressionFormat)
}

// TestNew_ConfigErrors checks that every impossible configuration fails
// before any resource is built, with an error naming the offending field.
func TestNew_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "no log groups",
			cfg:     Config{BucketARN: "arn:aws:s3:::archive"},
			wantErr: "cloudwatch_log_group_names",
		},
		{
			name: "empty log group entry",
			cfg: Config{
				LogGroupNames: []string{"app-logs", ""},
				BucketARN:     "arn:aws:s3:::archive",
			},
			wantErr: "cloudwatch_log_group_names[1]",
		},
		{
			name: "duplicate log group",
			cfg: Config{
				LogGroupNames: []string{"app-logs", "app-logs"},
				BucketARN:     "arn:aws:s3:::archive",
			},
			wantErr: "duplicates",
		},
		{
			name: "bucket not an ARN",
			cfg: Config{
				LogGroupNames: []string{"app-logs"},
				BucketARN:     "audit-archive",
			},
			wantErr: "destination_bucket_arn",
		},
		{
			name: "endpoint not https",
			cfg: Config{
				LogGroupNames: []string{"app-logs"},
				HTTPEndpoint:  "http://collector.example.com/events",
			},
			wantErr: "destination_http_endpoint",
		},
		{
			name: "unknown compression format",
			cfg: Config{
				LogGroupNames:     []string{"app-logs"},
				BucketARN:         "arn:aws:s3:::archive",
				CompressionFormat: "LZ4",
			},
			wantErr: "s3_compression_format",
		},
		{
			name: "malformed suffix",
			cfg: Config{
				LogGroupNames: []string{"app-logs"},
				BucketARN:     "arn:aws:s3:::archive",
				Suffix:        "NOT-HEX",
			},
			wantErr: "suffix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolveDestination(t *testing.T) {
	t.Run("s3", func(t *testing.T) {
		dest, err := resolveDestination(Config{
			BucketARN:         "arn:aws:s3:::archive",
			CompressionFormat: "GZIP",
		})
		require.NoError(t, err)
		s3dest, ok := dest.(S3Destination)
		require.True(t, ok, "expected S3Destination, got %T", dest)
		assert.Equal(t, "arn:aws:s3:::archive", s3dest.BucketARN)
		assert.Equal(t, "GZIP", s3dest.CompressionFormat)
	})

	t.Run("http", func(t *testing.T) {
		dest, err := resolveDestination(Config{
			HTTPEndpoint: "https://collector.example.com/events",
		})
		require.NoError(t, err)
		httpDest, ok := dest.(HTTPDestination)
		require.True(t, ok, "expected HTTPDestination, got %T", dest)
		assert.Equal(t, "https://collector.example.com/events", httpDest.EndpointURL)
	})

	t.Run("neither", func(t *testing.T) {
		_, err := resolveDestination(Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no destination configured")
	})

	t.Run("both", func(t *testing.T) {
		_, err := resolveDestination(Config{
			BucketARN:    "arn:aws:s3:::archive",
			HTTPEndpoint: "https://collector.example.com/events",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})
}

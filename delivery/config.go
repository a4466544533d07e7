// Package delivery expands a log-delivery configuration into the full set
// of CloudFormation records for a CloudWatch-Logs-to-Firehose pipeline: the
// delivery stream, its customer-managed KMS key, the delivery and
// subscription IAM roles with their managed policies, the error-capture
// bucket, the endpoint credentials secret, and one subscription filter per
// source log group.
//
// Callers build a pipeline from a Config and render it:
//
//	cfg, err := delivery.LoadConfig("pipeline.yaml")
//	pipe, err := delivery.New(cfg)
//	tmpl, err := pipe.Template()
//
// Every physical resource name carries a random hex suffix so repeated
// deployments of the same configuration never collide. Logical IDs are
// fixed so templates from the same config stay diffable.
package delivery

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultName is the pipeline name used when the configuration does not
// set one.
const DefaultName = "cloud-platform-firehose-log-delivery"

// DefaultCompressionFormat is the S3 destination compression used when the
// configuration does not set one.
const DefaultCompressionFormat = "UNCOMPRESSED"

// compressionFormats are the values Firehose accepts for an S3 destination.
var compressionFormats = map[string]bool{
	"UNCOMPRESSED":  true,
	"GZIP":          true,
	"ZIP":           true,
	"Snappy":        true,
	"HADOOP_SNAPPY": true,
}

// Config is the caller-facing description of one pipeline. Exactly one of
// BucketARN and HTTPEndpoint must be set; everything else is optional.
type Config struct {
	// LogGroupNames are the CloudWatch log groups to subscribe to the
	// delivery stream, in caller order. At least one is required.
	LogGroupNames []string `yaml:"cloudwatch_log_group_names"`

	// FilterPattern is applied to every subscription filter. Empty matches
	// all events and is the default.
	FilterPattern string `yaml:"cloudwatch_filter_pattern"`

	// BucketARN selects the S3 destination branch.
	BucketARN string `yaml:"destination_bucket_arn"`

	// HTTPEndpoint selects the HTTP endpoint destination branch. Must be
	// an https URL.
	HTTPEndpoint string `yaml:"destination_http_endpoint"`

	// CompressionFormat applies to the S3 destination branch only.
	CompressionFormat string `yaml:"s3_compression_format"`

	// Tags are propagated to every taggable resource in the pipeline.
	Tags map[string]string `yaml:"tags"`

	// Name is the base for every physical resource name.
	Name string `yaml:"name"`

	// Suffix pins the random name suffix, for reproducible templates. When
	// empty a fresh suffix is generated per pipeline.
	Suffix string `yaml:"suffix"`
}

// LoadConfig reads a pipeline configuration from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// withDefaults returns a copy with unset optional fields filled in.
func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.CompressionFormat == "" {
		c.CompressionFormat = DefaultCompressionFormat
	}
	return c
}

// validate rejects impossible configurations before any resource is built.
// Every error names the offending field.
func (c Config) validate() error {
	if len(c.LogGroupNames) == 0 {
		return errors.New("cloudwatch_log_group_names must list at least one log group")
	}
	seen := make(map[string]int, len(c.LogGroupNames))
	for i, group := range c.LogGroupNames {
		if group == "" {
			return fmt.Errorf("cloudwatch_log_group_names[%d] is empty", i)
		}
		if prev, ok := seen[group]; ok {
			return fmt.Errorf("cloudwatch_log_group_names[%d] duplicates entry %d (%q)", i, prev, group)
		}
		seen[group] = i
	}
	if c.BucketARN != "" && !strings.HasPrefix(c.BucketARN, "arn:") {
		return fmt.Errorf("destination_bucket_arn %q is not an ARN", c.BucketARN)
	}
	if c.HTTPEndpoint != "" && !strings.HasPrefix(c.HTTPEndpoint, "https://") {
		return fmt.Errorf("destination_http_endpoint %q must use https", c.HTTPEndpoint)
	}
	if !compressionFormats[c.CompressionFormat] {
		return fmt.Errorf("s3_compression_format %q is not one of %s", c.CompressionFormat, strings.Join(compressionFormatNames(), ", "))
	}
	if c.Suffix != "" {
		if err := validateSuffix(c.Suffix); err != nil {
			return fmt.Errorf("suffix: %w", err)
		}
	}
	return nil
}

func compressionFormatNames() []string {
	names := make([]string, 0, len(compressionFormats))
	for name := range compressionFormats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

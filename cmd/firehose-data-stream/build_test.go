package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const buildTestConfig = `cloudwatch_log_group_names:
  - app-logs
destination_bucket_arn: arn:aws:s3:::audit-archive
suffix: 4f2a9c8d1e6b3a7f
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunBuild_WritesTemplate(t *testing.T) {
	configPath := writeConfig(t, buildTestConfig)
	outFile := filepath.Join(filepath.Dir(configPath), "template.json")

	if err := runBuild(configPath, "json", outFile); err != nil {
		t.Fatalf("runBuild() error = %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		"AWSTemplateFormatVersion",
		"LogDeliveryStream",
		"arn:aws:s3:::audit-archive",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunBuild_UnknownFormat(t *testing.T) {
	configPath := writeConfig(t, buildTestConfig)

	err := runBuild(configPath, "toml", "")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("runBuild() error = %v, want unknown format", err)
	}
}

func TestRunBuild_InvalidConfig(t *testing.T) {
	configPath := writeConfig(t, "cloudwatch_log_group_names: []\n")

	err := runBuild(configPath, "json", "")
	if err == nil || err.Error() != "build failed" {
		t.Errorf("runBuild() error = %v, want build failed", err)
	}
}

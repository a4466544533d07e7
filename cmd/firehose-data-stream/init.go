package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
)

// validProjectName matches valid project names (alphanumeric, hyphens, underscores)
var validProjectName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [project-name]",
		Short: "Create a new pipeline project",
		Long: `Init creates a new pipeline project with a starter configuration.

The project is created in a subdirectory with the given name.
Multiple pipelines can coexist in the same workspace.

Examples:
    firehose-data-stream init audit-logs      # Creates ./audit-logs/
    firehose-data-stream init security-feed   # Creates ./security-feed/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(".", args[0])
		},
	}
}

// runInit creates a new project in {workspaceDir}/{projectName}/
func runInit(workspaceDir, projectName string) error {
	// Validate project name
	if !validProjectName.MatchString(projectName) {
		return fmt.Errorf("invalid project name %q: must start with a letter and contain only letters, numbers, hyphens, or underscores", projectName)
	}

	projectPath := filepath.Join(workspaceDir, projectName)
	if _, err := os.Stat(projectPath); err == nil {
		return fmt.Errorf("project already exists: %s", projectPath)
	}

	if err := os.MkdirAll(projectPath, 0755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	configYAML := fmt.Sprintf(`# Log delivery pipeline configuration.
# Exactly one destination must be set.

name: %s

# CloudWatch log groups to subscribe to the delivery stream.
cloudwatch_log_group_names:
  - /aws/eks/example-cluster/application

# Subscription filter pattern. Empty matches all events.
cloudwatch_filter_pattern: ""

# Destination: an S3 bucket...
destination_bucket_arn: arn:aws:s3:::example-archive
# s3_compression_format: GZIP

# ...or an HTTP endpoint (remove the bucket ARN above to use this).
# destination_http_endpoint: https://logs.example.com/v1/ingest

# Tags propagated to every taggable resource.
tags:
  team: platform

# Pin the random name suffix for reproducible templates.
# suffix: 4f2a9c8d1e6b3a7f
`, projectName)

	if err := os.WriteFile(filepath.Join(projectPath, "config.yaml"), []byte(configYAML), 0644); err != nil {
		return fmt.Errorf("writing config.yaml: %w", err)
	}

	gitignore := `# Build output
template.json
template.yaml

# IDE
.idea/
.vscode/
*.swp
*.swo

# OS
.DS_Store
Thumbs.db
`
	if err := os.WriteFile(filepath.Join(projectPath, ".gitignore"), []byte(gitignore), 0644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Printf("Created project: %s/\n", projectPath)
	fmt.Printf("  ├── config.yaml\n")
	fmt.Printf("  └── .gitignore\n")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  firehose-data-stream build -c %s/config.yaml\n", projectName)
	fmt.Println()

	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/delivery"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/internal/template"
)

func newBuildCmd() *cobra.Command {
	var (
		configPath   string
		outputFormat string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Synthesize the CloudFormation template",
		Long: `Build expands the pipeline configuration into a CloudFormation template.

Examples:
    firehose-data-stream build -c config.yaml
    firehose-data-stream build -c config.yaml -o template.json
    firehose-data-stream build -c config.yaml --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(configPath, outputFormat, outputFile)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Pipeline configuration file")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

// loadPipeline reads the configuration and expands the full pipeline. Every
// configuration error surfaces here, before any output is produced.
func loadPipeline(configPath string) (*delivery.Pipeline, error) {
	cfg, err := delivery.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return delivery.New(cfg)
}

func runBuild(configPath, format, outputFile string) error {
	pipe, err := loadPipeline(configPath)
	if err != nil {
		return outputResult(datastream.BuildResult{
			Success: false,
			Errors:  []string{err.Error()},
		}, format, outputFile)
	}

	tmpl, err := pipe.Template()
	if err != nil {
		return outputResult(datastream.BuildResult{
			Success: false,
			Errors:  []string{err.Error()},
		}, format, outputFile)
	}

	records := pipe.Records()
	resourceNames := make([]string, 0, len(records))
	for _, rec := range records {
		resourceNames = append(resourceNames, rec.Name)
	}

	return outputResult(datastream.BuildResult{
		Success:   true,
		Template:  *tmpl,
		Resources: resourceNames,
	}, format, outputFile)
}

func outputResult(result datastream.BuildResult, format, outputFile string) error {
	// Handle build failures - output errors to stderr
	if !result.Success {
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("build failed")
	}

	// Output the raw CloudFormation template
	var data []byte
	var err error

	switch format {
	case "json":
		data, err = template.ToJSON(&result.Template)
	case "yaml":
		data, err = template.ToYAML(&result.Template)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if err != nil {
		return err
	}

	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}

	return os.WriteFile(outputFile, data, 0644)
}

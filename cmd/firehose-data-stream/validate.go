package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/internal/validation"
)

// newValidateCmd creates the "validate" subcommand for checking the expanded pipeline.
func newValidateCmd() *cobra.Command {
	var (
		configPath   string
		outputFormat string
		strict       bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the expanded pipeline",
		Long: `Validate expands the pipeline and checks the resulting template for issues.

Checks performed:
  - Configuration: log groups present, exactly one destination set
  - Reference validity: all references point to declared resources
  - Resource schemas: required properties, value types, allowed values

Examples:
    firehose-data-stream validate -c config.yaml
    firehose-data-stream validate -c config.yaml --strict
    firehose-data-stream validate -c config.yaml --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(configPath, outputFormat, strict)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Pipeline configuration file")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "Warn about properties the schema does not know")

	return cmd
}

// runValidate expands the pipeline and validates the built template.
func runValidate(configPath, format string, strict bool) error {
	pipe, err := loadPipeline(configPath)
	if err != nil {
		return outputValidateResult(datastream.ValidateResult{
			Success: false,
			Errors:  []string{err.Error()},
		}, format)
	}

	// Building validates references and dependency ordering
	tmpl, err := pipe.Template()
	if err != nil {
		return outputValidateResult(datastream.ValidateResult{
			Success: false,
			Errors:  []string{err.Error()},
		}, format)
	}

	schemaResult, err := validation.ValidateTemplate(tmpl, validation.Options{Strict: strict})
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	validateResult := datastream.ValidateResult{
		Success:   schemaResult.Valid,
		Resources: len(tmpl.Resources),
	}
	for _, e := range schemaResult.Errors {
		validateResult.Errors = append(validateResult.Errors, formatSchemaError(e))
	}
	for _, w := range schemaResult.Warnings {
		validateResult.Warnings = append(validateResult.Warnings, formatSchemaError(w))
	}

	return outputValidateResult(validateResult, format)
}

func formatSchemaError(e datastream.SchemaError) string {
	if e.Property == "" {
		return fmt.Sprintf("%s: %s", e.Resource, e.Message)
	}
	return fmt.Sprintf("%s.%s: %s", e.Resource, e.Property, e.Message)
}

func outputValidateResult(result datastream.ValidateResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if result.Success {
			fmt.Printf("Validation passed: %d resources OK\n", result.Resources)
			for _, warnMsg := range result.Warnings {
				fmt.Printf("  WARNING: %s\n", warnMsg)
			}
			return nil
		}

		fmt.Println("Validation FAILED:")
		for _, errMsg := range result.Errors {
			fmt.Printf("  ERROR: %s\n", errMsg)
		}
		for _, warnMsg := range result.Warnings {
			fmt.Printf("  WARNING: %s\n", warnMsg)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Success {
		os.Exit(1)
	}

	return nil
}

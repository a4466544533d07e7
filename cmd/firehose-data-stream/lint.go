package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/internal/validation"
)

func newLintCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "lint <template>",
		Short: "Run cfn-lint against a built template",
		Long: `Lint checks a built CloudFormation template with the full cfn-lint rule set.

The linter runs in-process; no external toolchain is required.

Examples:
    firehose-data-stream build -c config.yaml -o template.json
    firehose-data-stream lint template.json
    firehose-data-stream lint template.json --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(args[0], outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runLint(templatePath, format string) error {
	lintResult, err := validation.RunCfnLint(templatePath)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	// Warnings and informational findings are reported but do not fail the
	// lint; the formatted messages already lead with the rule ID.
	result := datastream.LintResult{
		Success: lintResult.Passed,
	}
	for _, msg := range lintResult.Errors {
		result.Issues = append(result.Issues, datastream.LintIssue{
			File:     templatePath,
			Severity: "error",
			Message:  msg,
		})
	}
	for _, msg := range lintResult.Warnings {
		result.Issues = append(result.Issues, datastream.LintIssue{
			File:     templatePath,
			Severity: "warning",
			Message:  msg,
		})
	}
	for _, msg := range lintResult.Informational {
		result.Issues = append(result.Issues, datastream.LintIssue{
			File:     templatePath,
			Severity: "info",
			Message:  msg,
		})
	}

	return outputLintResult(result, format)
}

func outputLintResult(result datastream.LintResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if len(result.Issues) == 0 {
			fmt.Println("No issues found.")
			return nil
		}

		for _, issue := range result.Issues {
			fmt.Printf("%s: %s: %s\n", issue.File, issue.Severity, issue.Message)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Success {
		os.Exit(1)
	}

	return nil
}

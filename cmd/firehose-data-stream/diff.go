package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/internal/differ"
)

func newDiffCmd() *cobra.Command {
	var (
		outputFormat string
		ignoreOrder  bool
	)

	cmd := &cobra.Command{
		Use:   "diff <template1> <template2>",
		Short: "Compare two CloudFormation templates",
		Long: `Diff compares two built templates and reports resource-level differences.

Useful for reviewing what a config change does to the deployed stack:
    firehose-data-stream build -c config.yaml -o new.json
    firehose-data-stream diff deployed.json new.json

Examples:
    firehose-data-stream diff old.json new.json
    firehose-data-stream diff old.json new.yaml --ignore-order
    firehose-data-stream diff old.json new.json --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1], outputFormat, ignoreOrder)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&ignoreOrder, "ignore-order", false, "Ignore array element order when comparing")

	return cmd
}

func runDiff(file1, file2, format string, ignoreOrder bool) error {
	result, err := differ.CompareFiles(file1, file2, differ.Options{
		IgnoreOrder: ignoreOrder,
	})
	if err != nil {
		return fmt.Errorf("diff failed: %w", err)
	}

	return outputDiffResult(result, format)
}

func outputDiffResult(result *differ.Result, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(struct {
			Diff    datastream.TemplateDiff `json:"diff"`
			Summary datastream.DiffSummary  `json:"summary"`
		}{result.Diff, result.Summary}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if result.Summary.Total == 0 {
			fmt.Println("No differences found.")
			return nil
		}

		for _, entry := range result.Diff.Added {
			fmt.Printf("+ %s [%s]\n", entry.Resource, entry.Type)
		}
		for _, entry := range result.Diff.Removed {
			fmt.Printf("- %s [%s]\n", entry.Resource, entry.Type)
		}
		for _, entry := range result.Diff.Modified {
			fmt.Printf("~ %s [%s]\n", entry.Resource, entry.Type)
			for _, change := range entry.Changes {
				fmt.Printf("    %s\n", change)
			}
		}

		fmt.Printf("\n%d added, %d removed, %d modified\n",
			result.Summary.Added, result.Summary.Removed, result.Summary.Modified)

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}

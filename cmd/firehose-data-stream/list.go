package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
)

func newListCmd() *cobra.Command {
	var (
		configPath   string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the resources the pipeline expands to",
		Long: `List expands the pipeline and displays every resource it declares.

Examples:
    firehose-data-stream list -c config.yaml
    firehose-data-stream list -c config.yaml --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(configPath, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Pipeline configuration file")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runList(configPath, format string) error {
	pipe, err := loadPipeline(configPath)
	if err != nil {
		return err
	}

	records := pipe.Records()
	listResult := datastream.ListResult{
		Resources: make([]datastream.ListResource, 0, len(records)),
	}

	for _, rec := range records {
		listResult.Resources = append(listResult.Resources, datastream.ListResource{
			Name: rec.Name,
			Type: rec.Resource.ResourceType(),
		})
	}

	// Sort by name for consistent output
	sort.Slice(listResult.Resources, func(i, j int) bool {
		return listResult.Resources[i].Name < listResult.Resources[j].Name
	})

	return outputListResult(listResult, format)
}

func outputListResult(result datastream.ListResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if len(result.Resources) == 0 {
			fmt.Println("No resources found.")
			return nil
		}

		fmt.Printf("Pipeline resources (%d):\n\n", len(result.Resources))
		for _, res := range result.Resources {
			fmt.Printf("  %s: %s\n", res.Name, res.Type)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/delivery"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/internal/preflight"
)

// newPreflightCmd creates the "preflight" subcommand for checking live AWS state.
func newPreflightCmd() *cobra.Command {
	var (
		configPath   string
		profile      string
		region       string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "preflight",
		Short: "Check the AWS account for the pipeline's collaborators",
		Long: `Preflight checks that the resources the pipeline consumes but does not own
exist in the target account: the source log groups and, for the S3 branch,
the destination bucket.

Every check is read-only. Credentials come from the default chain
(environment, shared config, instance role).

Examples:
    firehose-data-stream preflight -c config.yaml
    firehose-data-stream preflight -c config.yaml --profile audit --region eu-west-2
    firehose-data-stream preflight -c config.yaml --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreflight(cmd.Context(), configPath, profile, region, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Pipeline configuration file")
	cmd.Flags().StringVar(&profile, "profile", "", "AWS shared config profile")
	cmd.Flags().StringVar(&region, "region", "", "AWS region override")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runPreflight(ctx context.Context, configPath, profile, region, format string) error {
	cfg, err := delivery.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// Reject configs the pipeline itself would refuse before any AWS call
	if _, err := delivery.New(cfg); err != nil {
		return err
	}

	awsCfg, err := preflight.LoadAWSConfig(ctx, profile, region)
	if err != nil {
		return err
	}

	report := preflight.FromConfig(awsCfg).Run(ctx, preflight.Input{
		LogGroupNames: cfg.LogGroupNames,
		BucketARN:     cfg.BucketARN,
	})

	return outputPreflightReport(report, format)
}

func outputPreflightReport(report *preflight.Report, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		for _, check := range report.Checks {
			status := "ok  "
			if !check.OK {
				status = "FAIL"
			}
			if check.Detail != "" {
				fmt.Printf("  %s  %s: %s\n", status, check.Name, check.Detail)
			} else {
				fmt.Printf("  %s  %s\n", status, check.Name)
			}
		}
		if report.Passed() {
			fmt.Printf("\nPreflight passed: %d checks OK\n", len(report.Checks))
		} else {
			fmt.Println("\nPreflight FAILED")
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !report.Passed() {
		os.Exit(1)
	}

	return nil
}

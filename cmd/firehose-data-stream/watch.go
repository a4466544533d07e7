package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/internal/template"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/internal/validation"
)

// newWatchCmd creates the "watch" subcommand for auto-rebuilding on config changes.
func newWatchCmd() *cobra.Command {
	var (
		configPath   string
		validateOnly bool
		debounce     time.Duration
		outputFormat string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Auto-rebuild on config file changes",
		Long: `Watch monitors the pipeline configuration and automatically rebuilds.

The watch command:
- Monitors the config file for changes
- Validates the expanded pipeline on each change
- Rebuilds if validation passes (unless --validate-only)
- Debounces rapid changes to avoid excessive rebuilds

Pin 'suffix' in the config for stable physical names across rebuilds.

Examples:
    firehose-data-stream watch -c config.yaml -o template.json
    firehose-data-stream watch -c config.yaml --validate-only
    firehose-data-stream watch -c config.yaml --debounce 1s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(configPath, watchOptions{
				validateOnly: validateOnly,
				debounce:     debounce,
				outputFormat: outputFormat,
				outputFile:   outputFile,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Pipeline configuration file")
	cmd.Flags().BoolVar(&validateOnly, "validate-only", false, "Only validate, skip writing the template")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Debounce duration for rapid changes")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format for build: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for build (default: stdout)")

	return cmd
}

type watchOptions struct {
	validateOnly bool
	debounce     time.Duration
	outputFormat string
	outputFile   string
}

// runWatch monitors the config file and revalidates/rebuilds on changes.
func runWatch(configPath string, opts watchOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	absConfig, err := filepath.Abs(configPath)
	if err != nil {
		return err
	}

	// Watch the directory: editors replace files on save, which drops a
	// watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(absConfig)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absConfig), err)
	}
	fmt.Printf("Watching: %s\n", absConfig)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Initial build
	fmt.Println("Running initial validate/build...")
	runValidateAndBuild(configPath, opts)

	// Debounce timer
	var debounceTimer *time.Timer
	rebuildChan := make(chan struct{}, 1)

	fmt.Println("\nWatching for changes... (Ctrl+C to stop)")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only react to the config file itself
			if filepath.Clean(event.Name) != absConfig {
				continue
			}

			// Only process write/create events
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Debounce: reset timer on each change
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(opts.debounce, func() {
				select {
				case rebuildChan <- struct{}{}:
				default:
				}
			})

		case <-rebuildChan:
			fmt.Printf("\n[%s] Change detected, rebuilding...\n", time.Now().Format("15:04:05"))
			runValidateAndBuild(configPath, opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

		case <-sigChan:
			fmt.Println("\nStopping watch...")
			return nil
		}
	}
}

// runValidateAndBuild validates the pipeline and optionally writes the template.
func runValidateAndBuild(configPath string, opts watchOptions) {
	pipe, err := loadPipeline(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	tmpl, err := pipe.Template()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Build error: %v\n", err)
		return
	}

	result, err := validation.ValidateTemplate(tmpl, validation.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation error: %v\n", err)
		return
	}
	if !result.Valid {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "Error: %s\n", formatSchemaError(e))
		}
		fmt.Println("Validation failed, skipping build")
		return
	}

	fmt.Println("Validation passed")

	if opts.validateOnly {
		return
	}

	var data []byte
	switch opts.outputFormat {
	case "json":
		data, err = template.ToJSON(tmpl)
	case "yaml":
		data, err = template.ToYAML(tmpl)
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", opts.outputFormat)
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
		return
	}

	if opts.outputFile == "" {
		fmt.Println("Build successful")
		fmt.Printf("Generated %d resources\n", len(tmpl.Resources))
	} else {
		if err := os.WriteFile(opts.outputFile, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
			return
		}
		fmt.Printf("Build successful, wrote %s\n", opts.outputFile)
	}
}

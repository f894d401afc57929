package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"chest-sorter/core/config"
	"chest-sorter/core/logger"
	"chest-sorter/core/reconcile"
	"chest-sorter/feature/container"
	"chest-sorter/feature/settings"

	"github.com/spf13/cobra"
)

// sortCmd sorts a container file or a stored container.
var sortCmd = &cobra.Command{
	Use:   "sort <file|id>",
	Short: "Sort a container file or a stored container",
	Long: `Sorts a YAML or JSON container file in place, or a container of the configured backend.

Examples:
  # Sort a fixture by count, printing the report
  sort chest.yaml --mode count --json

  # Preview the layout of a stored container
  sort spawn-chest --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		mode, _ := cmd.Flags().GetString("mode")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log, logger.World(cfg.Server.World))
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		opts := container.SortOptions{DryRun: dryRun}
		if mode != "" {
			if opts.Mode, err = reconcile.ParseMode(mode); err != nil {
				return err
			}
		}

		target := args[0]
		var store container.Store
		id := target
		if isContainerFile(target) {
			fs := container.NewFileStore(target)
			doc, err := container.ReadFile(target)
			if err != nil {
				return err
			}
			store, id = fs, doc.ID
		} else {
			b, err := openBackends(ctx, cfg, logg)
			if err != nil {
				return err
			}
			store = b.store
		}

		svc := container.NewService(store, settings.NewStore(settings.FromConfig(cfg.Sorter)), logg)
		report, err := svc.Sort(ctx, id, opts)
		if err != nil {
			return fmt.Errorf("failed to sort %s: %w", target, err)
		}

		if jsonOutput {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
		} else {
			printSortReport(report)
		}

		if !report.Result.Success {
			return errors.New("sort was not applied: " + report.Result.Reason)
		}
		return nil
	},
}

// isContainerFile treats existing files and names with a document extension as files.
func isContainerFile(target string) bool {
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		return true
	}
	switch filepath.Ext(target) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func printSortReport(r *container.SortReport) {
	fmt.Printf("\n=== Sort %s ===\n", r.ContainerID)
	fmt.Printf("Backend: %s\n", r.Backend)
	fmt.Printf("Mode: %s\n", r.Result.Mode)
	fmt.Printf("Groups: %d\n", r.Result.Groups)
	if r.DryRun {
		fmt.Println("Dry run, nothing written. Planned layout:")
		for i, s := range r.Layout {
			if s != nil {
				fmt.Printf("  %3d  %-40s x%d\n", i, reconcile.Canonicalize(s), s.Quantity)
			}
		}
		return
	}
	if r.Feedback != "" {
		fmt.Println(r.Feedback)
	}
	if r.Result.RolledBack {
		fmt.Println("Original layout restored.")
	}
}

func init() {
	RootCmd.AddCommand(sortCmd)

	sortCmd.Flags().String("mode", "", "Sorting mode (alpha, count, type); defaults to SORTER_MODE")
	sortCmd.Flags().Bool("dry-run", false, "Print the planned layout without writing")
	sortCmd.Flags().Bool("json", false, "Output the report as JSON")
}

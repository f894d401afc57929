package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"chest-sorter/core/config"
	"chest-sorter/core/logger"
	"chest-sorter/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the container backend",
	Long:  `Checks the storage folder structure, the container tables and the stored container contents.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the storage folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the container tables against the models",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// contentsCmd represents the integrity contents command
var contentsCmd = &cobra.Command{
	Use:   "contents",
	Short: "Check stored containers for overstacked slots and unreadable data",
	Long:  `Loads every container of the configured backend. Outputs metrics by default or a detailed JSON file with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		startTime := time.Now()

		svc, logg, err := newIntegrityService(cmd.Context())
		if err != nil {
			return err
		}
		defer logg.Sync()

		report, err := svc.CheckContents(cmd.Context())
		if err != nil {
			return fmt.Errorf("contents check failed: %w", err)
		}

		if jsonOutput {
			filename := fmt.Sprintf("integrity_contents_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			logg.Info("Detailed JSON report saved", zap.String("file", filename), zap.Int("issues", len(report.Issues)))
		}

		problems := make(map[string]int)
		for _, issue := range report.Issues {
			problems[issue.Problem]++
		}

		fmt.Println("\n=== Container Contents Metrics ===")
		fmt.Printf("Backend: %s\n", report.Backend)
		fmt.Printf("Checked: %d\n", report.Checked)
		fmt.Printf("Unloaded: %d\n", report.Unloaded)
		for problem, n := range problems {
			fmt.Printf("%s: %d\n", problem, n)
		}
		fmt.Printf("Execution Time: %s\n", time.Since(startTime))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, serverCmd, contentsCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
	contentsCmd.Flags().Bool("json", false, "Save a detailed JSON report")
}

func newIntegrityService(ctx context.Context) (*integrity.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log, logger.World(cfg.Server.World))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	b, err := openBackends(ctx, cfg, logg)
	if err != nil {
		return nil, nil, err
	}
	logg = logg.With(logger.Backend(b.store.Name()))

	return integrity.NewService(b.client, cfg.Storage.Bucket, logg, b.db, b.store), logg, nil
}

func runIntegrityChecks(ctx context.Context, runStructure, runServer, runContents bool) error {
	svc, logg, err := newIntegrityService(ctx)
	if err != nil {
		return err
	}
	defer logg.Sync()

	// Checks for the other backends only run when asked for explicitly.
	all := runStructure && runServer && runContents

	if runStructure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		switch {
		case err != nil && all:
			logg.Info("Skipping structure check", zap.String("reason", err.Error()))
		case err != nil:
			return fmt.Errorf("structure check failed: %w", err)
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		default:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			if !all && fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			} else if !all {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if runServer {
		logg.Info("Checking server schema integrity...")
		report, err := svc.CheckServer()
		switch {
		case err != nil && all:
			logg.Info("Skipping server schema check", zap.String("reason", err.Error()))
		case err != nil:
			return fmt.Errorf("server schema check failed: %w", err)
		case report.Matched:
			logg.Info("Server schema matches expected definition.", zap.String("driver", report.Driver))
		default:
			logg.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runContents {
		logg.Info("Checking container contents...")
		report, err := svc.CheckContents(ctx)
		if err != nil {
			return fmt.Errorf("contents check failed: %w", err)
		}
		if len(report.Issues) == 0 {
			logg.Info("Container contents are intact.", zap.Int("checked", report.Checked))
		}
		for _, issue := range report.Issues {
			logg.Warn("Container issue",
				logger.Container(issue.Container),
				zap.Int("slot", issue.Slot),
				zap.String("problem", issue.Problem),
				zap.String("detail", issue.Detail),
			)
		}
	}
	return nil
}

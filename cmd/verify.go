package cmd

import (
	"fmt"

	"chest-sorter/core/reconcile"
	"chest-sorter/feature/container"

	"github.com/spf13/cobra"
)

// verifyCmd compares the contents of two container files.
var verifyCmd = &cobra.Command{
	Use:   "verify <before> <after>",
	Short: "Check that two container files hold the same items",
	Long: `Compares two container files as multisets of canonical items. Slot positions
are ignored; any difference in quantity per item or in container size is reported.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		before, err := container.ReadFile(args[0])
		if err != nil {
			return err
		}
		after, err := container.ReadFile(args[1])
		if err != nil {
			return err
		}

		diag := reconcile.Verify(before.Slots, after.Slots)
		if diag == nil {
			fmt.Printf("Contents match (%s)\n", reconcile.Digest(after.Slots))
			return nil
		}

		fmt.Println("Contents differ:")
		for _, d := range diag.Deltas {
			fmt.Printf("  %s net %+d\n", d.Key, d.Delta)
		}
		return fmt.Errorf("verification failed: %s", diag)
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)
}

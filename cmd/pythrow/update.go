package pythrow

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update pythrow to the latest released version",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := selfUpdate(); err != nil {
				return fmt.Errorf("self-update failed: %w", err)
			}
			fmt.Println("pythrow is up to date")
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}

package pythrow

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pythrow/pythrow/internal/engine"
)

func init() {
	cmd := &cobra.Command{
		Use:   "checks",
		Short: "List available static checks",
		Run: func(_ *cobra.Command, _ []string) {
			for _, id := range engine.CheckIDs() {
				fmt.Println(id)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}

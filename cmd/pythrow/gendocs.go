package pythrow

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pythrow/pythrow/internal/engine"
	"github.com/spf13/cobra"
)

// gendocs regenerates the checks section in README.md between the markers
// <!-- BEGIN:CHECKS --> and <!-- END:CHECKS -->.
func init() {
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Regenerate README checks section",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := "README.md"
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			start := []byte("<!-- BEGIN:CHECKS -->")
			end := []byte("<!-- END:CHECKS -->")
			i := bytes.Index(b, start)
			j := bytes.Index(b, end)
			if i < 0 || j < 0 || j <= i {
				return fmt.Errorf("markers not found in README.md")
			}

			ids := engine.CheckIDs()
			var definite, heuristic []string
			for _, id := range ids {
				if strings.HasPrefix(id, "definite-") {
					definite = append(definite, id)
				} else {
					heuristic = append(heuristic, id)
				}
			}
			var out strings.Builder
			out.WriteString("\nCheck groups and IDs (run `pythrow checks` for the full, up-to-date list):\n\n")
			write := func(title string, ids []string) {
				if len(ids) == 0 {
					return
				}
				sort.Strings(ids)
				out.WriteString("- " + title + ":\n")
				out.WriteString("  - " + strings.Join(ids, ", ") + "\n")
			}
			write("Definite failures", definite)
			write("Heuristics", heuristic)

			var nb bytes.Buffer
			nb.Write(b[:i])
			nb.Write(start)
			nb.WriteString("\n")
			nb.WriteString(out.String())
			nb.Write(end)
			nb.Write(b[j+len(end):])
			return os.WriteFile(path, nb.Bytes(), 0644)
		},
	}
	rootCmd.AddCommand(cmd)
}

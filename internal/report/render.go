package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/pythrow/pythrow/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	ShowSource   bool
	Duration     time.Duration
	FilesScanned int
}

// AutoNoColor reports whether color should be suppressed because the writer
// is not a terminal.
func AutoNoColor(f *os.File) bool {
	return !term.IsTerminal(int(f.Fd()))
}

// PrintText renders the merged analysis in the documented transcript shape:
// a static findings block followed by the dynamic result.
func PrintText(w io.Writer, root string, findings []types.Finding, dyn *types.DynamicResult, opts PrintOptions) {
	fmt.Fprintf(w, "Analysis results for %s:\n", root)
	sortFindings(findings)
	if len(findings) == 0 {
		fmt.Fprintln(w, "No exception findings ✅")
	} else {
		maxCheck := 8
		for _, f := range findings {
			if l := len(f.Check); l > maxCheck {
				maxCheck = l
			}
		}
		fmt.Fprintln(w, "Static findings:")
		for _, f := range findings {
			sev := string(f.Severity)
			if !opts.NoColor {
				sev = colorSeverity(f.Severity)
			}
			fmt.Fprintf(w, "  %-6s %-*s %s  %s\n", sev, maxCheck, f.Check, location(f), f.Message)
			if opts.ShowSource && f.Source != "" {
				src := f.Source
				if !opts.NoColor {
					src = highlightLine(src, f.Path)
				}
				fmt.Fprintf(w, "         %s\n", src)
			}
		}
	}
	printDynamic(w, dyn)
	printFooter(w, findings, opts)
}

// PrintTable renders the static findings as a bordered table, then the
// dynamic block and footer as in PrintText.
func PrintTable(w io.Writer, root string, findings []types.Finding, dyn *types.DynamicResult, opts PrintOptions) {
	fmt.Fprintf(w, "Analysis results for %s:\n", root)
	sortFindings(findings)
	if len(findings) == 0 {
		fmt.Fprintln(w, "No exception findings ✅")
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("SEVERITY", "CHECK", "LOCATION", "MESSAGE")
		for _, f := range findings {
			_ = table.Append([]string{string(f.Severity), f.Check, location(f), f.Message})
		}
		_ = table.Render()
	}
	printDynamic(w, dyn)
	printFooter(w, findings, opts)
}

func sortFindings(findings []types.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Path == findings[j].Path {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Path < findings[j].Path
	})
}

func location(f types.Finding) string {
	if f.Line <= 0 {
		return f.Path
	}
	return fmt.Sprintf("%s:%d", f.Path, f.Line)
}

func printDynamic(w io.Writer, dyn *types.DynamicResult) {
	if dyn == nil {
		return
	}
	exc := "<nil>"
	if dyn.ExcType != "" {
		exc = dyn.ExcType
		if dyn.ExcMessage != "" {
			exc += ": " + dyn.ExcMessage
		}
	} else if dyn.Threw && dyn.ExcMessage != "" {
		exc = dyn.ExcMessage
	}
	fmt.Fprintf(w, "Dynamic result: threw=%v exc=%s timed_out=%v\n", dyn.Threw, exc, dyn.TimedOut)
	if dyn.TimedOut {
		fmt.Fprintf(w, "  execution killed after %.1fs (possible infinite loop or hang)\n", dyn.Duration.Seconds())
	}
	if dyn.Stdout != "" {
		for _, line := range strings.Split(dyn.Stdout, "\n") {
			fmt.Fprintf(w, "  stdout: %s\n", line)
		}
	}
}

func printFooter(w io.Writer, findings []types.Finding, opts PrintOptions) {
	high, med, low := 0, 0, 0
	for _, f := range findings {
		switch f.Severity {
		case types.SevHigh:
			high++
		case types.SevMed:
			med++
		default:
			low++
		}
	}
	if opts.Duration > 0 || opts.FilesScanned > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Findings: %d (high: %d, medium: %d, low: %d)\n", len(findings), high, med, low)
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Analysis duration: %.2fs\n", opts.Duration.Seconds())
		}
		if opts.FilesScanned > 0 {
			fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
		}
	}
}

func colorSeverity(s types.Severity) string {
	switch s {
	case types.SevHigh:
		return "\x1b[31mhigh\x1b[0m" // red
	case types.SevMed:
		return "\x1b[33mmedium\x1b[0m" // yellow
	default:
		return "\x1b[36mlow\x1b[0m" // cyan
	}
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/a2-coder/dvmm/internal/domain"
)

type theme struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Pass   lipgloss.Style
	Fail   lipgloss.Style
	Detail lipgloss.Style
	Card   lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Label:  lipgloss.NewStyle().Faint(true),
		Pass:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Detail: lipgloss.NewStyle().Faint(true).PaddingLeft(4),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func printRecords(w io.Writer, records []any, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case "dump":
		dumpConfig.Fdump(w, records...)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected json|yaml|dump)", format)
	}
}

func printReport(w io.Writer, report domain.RoundTripReport, id string, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"report_id": id,
			"report":    report,
		}
		return enc.Encode(payload)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any{"report_id": id, "report": report}); err != nil {
			return err
		}
		return enc.Close()
	case "pretty", "":
		printPrettyReport(w, report, id, defaultTheme())
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|yaml)", format)
	}
}

func printPrettyReport(w io.Writer, report domain.RoundTripReport, id string, th theme) {
	total := report.EndedAt.Sub(report.StartedAt)
	if report.StartedAt.IsZero() || report.EndedAt.IsZero() {
		total = 0
	}

	header := []string{
		th.Title.Render("Round trip: " + report.Entity),
		th.Label.Render("Direction: ") + string(report.Direction) + " then " + report.Direction.Input(),
		th.Label.Render("Source:    ") + report.Source,
		th.Label.Render("Started:   ") + report.StartedAt.Format(time.RFC3339),
		th.Label.Render("Duration:  ") + total.String(),
	}
	if id != "" {
		header = append(header, th.Label.Render("Report ID: ")+id)
	}
	fmt.Fprintln(w, th.Card.Render(strings.Join(header, "\n")))

	for _, c := range report.Checks {
		if c.Passed {
			fmt.Fprintf(w, "%s record %d\n", th.Pass.Render("✓"), c.Index)
			continue
		}
		fmt.Fprintf(w, "%s record %d\n", th.Fail.Render("✗"), c.Index)
		fmt.Fprintln(w, th.Detail.Render(c.Message))
	}

	fails := report.Failures()
	summary := fmt.Sprintf("%d passed / %d failed", len(report.Checks)-fails, fails)
	if fails > 0 {
		fmt.Fprintln(w, th.Fail.Render(summary))
		return
	}
	fmt.Fprintln(w, th.Pass.Render(summary))
}

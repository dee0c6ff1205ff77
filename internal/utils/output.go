package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/smartstep/internal/steps"
	"github.com/ramanasai/smartstep/internal/store"
)

// OutputFormat selects how CLI listings are printed.
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatJSON    OutputFormat = "json"
	FormatCompact OutputFormat = "compact"
)

// ParseFormat accepts the --output flag; unknown values fall back to default.
func ParseFormat(s string) OutputFormat {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON
	case FormatCompact:
		return FormatCompact
	}
	return FormatDefault
}

type RenderConfig struct {
	Format OutputFormat
	Width  int
	Color  bool
}

func DefaultRenderConfig() *RenderConfig {
	width := 60
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 20 && v < width {
			width = v
		}
	}
	return &RenderConfig{Format: FormatDefault, Width: width, Color: true}
}

// StepReport is the payload of `smartstep steps`.
type StepReport struct {
	Current   int            `json:"current"`
	Objective int            `json:"objective"`
	Percent   float64        `json:"percent"`
	Remaining int            `json:"remaining"`
	Metrics   []steps.Metric `json:"metrics"`
}

func NewStepReport(current, objective int) StepReport {
	r := steps.NewRing(current, objective)
	return StepReport{
		Current:   current,
		Objective: objective,
		Percent:   r.Percent(),
		Remaining: r.Remaining(),
		Metrics:   steps.Metrics(),
	}
}

type Renderer struct {
	config *RenderConfig
	styles *Styles
}

type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Bar       lipgloss.Style
	Empty     lipgloss.Style
	Success   lipgloss.Style
}

func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Renderer{config: config, styles: initStyles(config.Color)}
}

func initStyles(color bool) *Styles {
	if !color {
		return &Styles{
			Title:     lipgloss.NewStyle().Bold(true),
			Separator: lipgloss.NewStyle(),
			Label:     lipgloss.NewStyle(),
			Value:     lipgloss.NewStyle(),
			Bar:       lipgloss.NewStyle(),
			Empty:     lipgloss.NewStyle(),
			Success:   lipgloss.NewStyle(),
		}
	}
	return &Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Label:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
		Bar:       lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
	}
}

func (r *Renderer) separator() string {
	return r.styles.Separator.Render(strings.Repeat("─", r.config.Width))
}

// RenderProfile prints a saved profile. A nil profile means none was saved.
func (r *Renderer) RenderProfile(p *store.Profile) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return renderJSON(p)
	case FormatCompact:
		if p == nil {
			return "no profile\n", nil
		}
		return fmt.Sprintf("%s\t%s\t%s\t%s\n", p.Name, p.Age, p.Weight, p.Height), nil
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Profile"))
	b.WriteString("\n")
	b.WriteString(r.separator())
	b.WriteString("\n")
	if p == nil {
		b.WriteString(r.styles.Label.Render("No profile saved yet."))
		b.WriteString("\n")
		return b.String(), nil
	}
	rows := [][2]string{
		{"Name", p.Name},
		{"Age", string(p.Age)},
		{"Weight (kg)", string(p.Weight)},
		{"Height (cm)", string(p.Height)},
	}
	for _, row := range rows {
		v := row[1]
		if v == "" {
			v = "-"
		}
		b.WriteString(r.styles.Label.Render(fmt.Sprintf("%-12s", row[0])))
		b.WriteString(r.styles.Value.Render(v))
		b.WriteString("\n")
	}
	if !p.UpdatedAt.IsZero() {
		b.WriteString(r.styles.Label.Render("updated " + p.UpdatedAt.Local().Format("2006-01-02 15:04")))
		b.WriteString("\n")
	}
	return b.String(), nil
}

// RenderSteps prints the daily progress as a bar with the metric row.
func (r *Renderer) RenderSteps(rep StepReport) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return renderJSON(rep)
	case FormatCompact:
		return fmt.Sprintf("%d/%d %.0f%%\n", rep.Current, rep.Objective, rep.Percent*100), nil
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Steps today"))
	b.WriteString("\n")
	b.WriteString(r.separator())
	b.WriteString("\n")

	width := r.config.Width - 8
	if width < 10 {
		width = 10
	}
	filled := int(rep.Percent*float64(width) + 0.5)
	b.WriteString(r.styles.Bar.Render(strings.Repeat("█", filled)))
	b.WriteString(r.styles.Empty.Render(strings.Repeat("░", width-filled)))
	b.WriteString(fmt.Sprintf(" %3.0f%%\n", rep.Percent*100))

	b.WriteString(r.styles.Value.Render(fmt.Sprintf("%d / %d steps", rep.Current, rep.Objective)))
	if rep.Remaining == 0 {
		b.WriteString(r.styles.Success.Render("  objective reached"))
	} else {
		b.WriteString(r.styles.Label.Render(fmt.Sprintf("  %d to go", rep.Remaining)))
	}
	b.WriteString("\n")

	parts := make([]string, 0, len(rep.Metrics))
	for _, m := range rep.Metrics {
		parts = append(parts, r.styles.Label.Render(m.Label+": ")+r.styles.Value.Render(m.Value))
	}
	b.WriteString(strings.Join(parts, "   "))
	b.WriteString("\n")
	return b.String(), nil
}

func renderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sonicdash/sonic/internal/theme"
)

type swatchRow struct {
	Region  theme.Region
	Kind    theme.Kind
	Value   string
	Default bool
}

func swatchRowsFromResolved(res theme.Resolved) []swatchRow {
	assets := theme.StaticAssets{}
	rows := make([]swatchRow, 0, len(theme.Regions()))
	for _, v := range res.All() {
		value := v.Color
		if v.IsImage() {
			value = assets.AssetURL(v.Image)
		}
		rows = append(rows, swatchRow{Region: v.Region, Kind: v.Kind, Value: value, Default: v.Default})
	}
	return rows
}

func swatchTitle(profile string, found bool) string {
	if !found {
		if strings.TrimSpace(profile) == "" {
			return "defaults (no profile selected)"
		}
		return fmt.Sprintf("defaults (profile %q not found)", profile)
	}
	return "profile " + profile
}

// renderSwatches prints one line per region. Hex colors get a colored block
// when color is true.
func renderSwatches(w io.Writer, title string, rows []swatchRow, color bool) {
	titleStyle := lipgloss.NewStyle().Bold(true)
	nameStyle := lipgloss.NewStyle().Width(11)
	kindStyle := lipgloss.NewStyle().Width(10)
	if color {
		kindStyle = kindStyle.Foreground(lipgloss.Color(theme.DefaultColor(theme.RegionSecondary)))
	}

	fmt.Fprintln(w, titleStyle.Render(title))
	for _, r := range rows {
		swatch := "    "
		if color && r.Kind == theme.KindColor && strings.HasPrefix(r.Value, "#") {
			swatch = lipgloss.NewStyle().Background(lipgloss.Color(r.Value)).Render("    ")
		}
		line := swatch + " " + nameStyle.Render(string(r.Region)) + kindStyle.Render(string(r.Kind)) + r.Value
		if r.Default {
			line += " (default)"
		}
		fmt.Fprintln(w, line)
	}
}

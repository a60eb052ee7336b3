package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/workspace"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Width(18)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6B7280")).
			Padding(0, 1)
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info [path]",
	Short: "Show the packs of a project",
	Long: `Show the behavior and resource packs found in a project, with their
UUIDs, versions and dependencies.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(rootDir(args))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(ctx.Packs) == 0 {
			fmt.Fprintf(out, "No packs found under %s.\n", ctx.Root)
			return nil
		}

		fmt.Fprintln(out, titleStyle.Render(ctx.Root))
		for _, p := range ctx.Packs {
			fmt.Fprintln(out, renderPack(ctx, p))
		}
		return nil
	},
}

func renderPack(ctx *workspace.Context, p workspace.Pack) string {
	h := p.Manifest.Header
	rows := [][2]string{
		{"Type", p.Kind.Label() + " Pack"},
		{"Folder", relTo(ctx.Root, p.Dir)},
		{"UUID", h.UUID},
		{"Version", h.Version.String()},
		{"Min engine", h.MinEngineVersion.String()},
	}
	if h.Description != "" {
		rows = append(rows, [2]string{"Description", h.Description})
	}
	for _, dep := range p.Manifest.Dependencies {
		label := dep.UUID
		for _, other := range ctx.Packs {
			if other.Manifest.Header.UUID == dep.UUID {
				label = other.Name()
			}
		}
		rows = append(rows, [2]string{"Depends on", label + " " + dep.Version.String()})
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name()))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(r[0]))
		b.WriteString(valueStyle.Render(r[1]))
	}
	return cardStyle.Render(b.String())
}

func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

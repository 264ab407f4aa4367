package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	apperrors "github.com/mengfei0517/robocasa/pkg/errors"
	"github.com/mengfei0517/robocasa/pkg/pipeline"
	"github.com/mengfei0517/robocasa/pkg/scene"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the interactive scene browser command.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		seed    uint64
		catalog string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <document.yaml>",
		Short: "Browse a resolved scene interactively",
		Long: `Inspect resolves the document and opens an interactive browser over the
resolved entities: positions, sizes, provenance, and sampled state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			result, err := runner.Execute(cmd.Context(), pipeline.Options{
				DocumentPath: args[0],
				Seed:         seed,
				CatalogPath:  catalog,
				Logger:       logger,
			})
			if err != nil {
				return apperrors.FromResolution(err)
			}

			model := newSceneModel(result.Scene)
			if _, err := tea.NewProgram(model).Run(); err != nil {
				return fmt.Errorf("inspect ui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", pipeline.DefaultSeed, "random seed for placement sampling")
	cmd.Flags().StringVar(&catalog, "catalog", "", "TOML fixture-catalog override file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the resolution cache")

	return cmd
}

// =============================================================================
// SceneModel - Interactive resolved-entity browser
// =============================================================================

// sceneModel is the bubbletea model for browsing a resolved scene.
type sceneModel struct {
	scene  *scene.Scene
	cursor int
	height int
	offset int
}

func newSceneModel(s *scene.Scene) sceneModel {
	return sceneModel{scene: s, height: 15}
}

func (m sceneModel) Init() tea.Cmd {
	return nil
}

func (m sceneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.scene.Entities)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	}
	return m, nil
}

func (m sceneModel) View() string {
	if len(m.scene.Entities) == 0 {
		return StyleDim.Render("scene has no entities") + "\n"
	}

	list := m.renderList()
	detail := m.renderDetail(&m.scene.Entities[m.cursor])
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail)

	header := StyleTitle.Render(fmt.Sprintf("%s · seed %d", m.scene.Document, m.scene.Seed))
	footer := StyleDim.Render("↑/↓ navigate · q quit")
	return header + "\n\n" + body + "\n" + footer + "\n"
}

func (m sceneModel) renderList() string {
	var out string
	end := min(m.offset+m.height, len(m.scene.Entities))
	for i := m.offset; i < end; i++ {
		e := &m.scene.Entities[i]
		line := e.Name
		if e.Provenance == scene.ProvenanceSynthesized {
			line += listDimStyle.Render(" *")
		}
		if i == m.cursor {
			out += listSelectedStyle.Render("› "+line) + "\n"
		} else {
			out += listNormalStyle.Render("  "+line) + "\n"
		}
	}
	if end < len(m.scene.Entities) {
		out += listDimStyle.Render(fmt.Sprintf("  … %d more", len(m.scene.Entities)-end)) + "\n"
	}
	return out
}

func (m sceneModel) renderDetail(e *scene.Resolved) string {
	rows := [][]string{
		{"kind", string(e.Kind)},
		{"pos", fmtVec(e.Pos)},
		{"size", fmtVec(e.Size)},
		{"yaw", fmt.Sprintf("%.3f", e.Yaw)},
		{"provenance", string(e.Provenance)},
	}
	if e.Parent != "" {
		rows = append(rows, []string{"parent", e.Parent})
	}
	if e.RelPos != nil {
		rows = append(rows, []string{"rel pos", fmtVec(*e.RelPos)})
	}
	if e.DoorState != nil {
		rows = append(rows, []string{"door state", fmt.Sprintf("%.2f", *e.DoorState)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return StyleDim.PaddingLeft(1).PaddingRight(1)
			}
			return StyleValue.PaddingRight(1)
		}).
		Rows(rows...)

	return StyleHighlight.Render(e.Name) + "\n" + t.Render()
}

func fmtVec(v scene.Vec3) string {
	return fmt.Sprintf("%.3f, %.3f, %.3f", v[0], v[1], v[2])
}

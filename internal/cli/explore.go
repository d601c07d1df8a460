package cli

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/planargrid/pkg/pipeline"
	"github.com/matzehuels/planargrid/pkg/planar"
)

// maxPlotGrid is the largest grid drawn cell by cell in the explorer.
const maxPlotGrid = 48

// Explorer styles
var (
	plotEmptyStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	plotVertexStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	plotLonelyStyle = lipgloss.NewStyle().Foreground(colorWarn)
	paramKeyStyle   = lipgloss.NewStyle().Foreground(colorLabel)
)

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var flags genFlags

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explore graphs interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := c.options(cmd, &flags)
			if err != nil {
				return err
			}
			opts.Formats = []string{pipeline.FormatPNG}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			m := newExploreModel(cmd.Context(), runner, opts)
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithOutput(os.Stderr)).Run()
			return err
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

// =============================================================================
// exploreModel - Interactive parameter explorer
// =============================================================================

// generatedMsg carries a finished generation back to the model.
type generatedMsg struct {
	opts   pipeline.Options
	graph  *planar.Graph
	cached bool
	err    error
}

// savedMsg reports the outcome of writing a PNG.
type savedMsg struct {
	path string
	err  error
}

// exploreModel is the bubbletea model for the explorer.
type exploreModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	opts   pipeline.Options

	graph  *planar.Graph
	cached bool
	status string
	err    error
}

func newExploreModel(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) exploreModel {
	return exploreModel{ctx: ctx, runner: runner, opts: opts}
}

func (m exploreModel) Init() tea.Cmd {
	return m.generate()
}

// generate returns a command that builds the graph for the current options.
func (m exploreModel) generate() tea.Cmd {
	ctx, runner, opts := m.ctx, m.runner, m.opts
	return func() tea.Msg {
		g, hit, err := runner.GenerateWithCacheInfo(ctx, opts)
		return generatedMsg{opts: opts, graph: g, cached: hit, err: err}
	}
}

// save returns a command that renders the current graph to PNG.
func (m exploreModel) save() tea.Cmd {
	ctx, runner, opts, g := m.ctx, m.runner, m.opts, m.graph
	return func() tea.Msg {
		artifacts, err := runner.Render(ctx, g, opts)
		if err != nil {
			return savedMsg{err: err}
		}
		paths, err := writeArtifacts(defaultBase(".", opts.Seed), opts.Formats, artifacts)
		if err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{path: strings.Join(paths, ", ")}
	}
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		// Drop results for parameters that have since changed.
		if msg.opts.GraphKeyOpts() != m.opts.GraphKeyOpts() {
			return m, nil
		}
		m.graph, m.cached, m.err = msg.graph, msg.cached, msg.err
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
		} else {
			m.status = "wrote " + msg.path
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m exploreModel) handleKey(key string) (tea.Model, tea.Cmd) {
	o := &m.opts
	switch key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "n", " ", "right":
		o.Seed++
	case "N", "left":
		if o.Seed > 1 {
			o.Seed--
		}
	case "R":
		o.Seed = pipeline.RandomSeed()
	case "+", "=":
		o.GridSize = min(o.GridSize+1, maxPlotGrid)
	case "-":
		o.GridSize = max(o.GridSize-1, 1)
	case "]":
		o.VertexProbability = stepClamp(o.VertexProbability, 0.05, 0, 1)
	case "[":
		o.VertexProbability = stepClamp(o.VertexProbability, -0.05, 0, 1)
	case "}":
		o.RelativePotentialEdgeCount = stepClamp(o.RelativePotentialEdgeCount, 0.25, 0, 16)
	case "{":
		o.RelativePotentialEdgeCount = stepClamp(o.RelativePotentialEdgeCount, -0.25, 0, 16)
	case "s":
		o.AllowSelfEdges = !o.AllowSelfEdges
	case "m":
		o.AllowMultiEdges = !o.AllowMultiEdges
	case "w":
		if m.graph == nil {
			return m, nil
		}
		m.status = "saving..."
		return m, m.save()
	default:
		return m, nil
	}
	m.status = ""
	return m, m.generate()
}

// stepClamp adds step to v, rounds to two decimals and clamps to [lo, hi].
func stepClamp(v, step, lo, hi float64) float64 {
	v = math.Round((v+step)*100) / 100
	return math.Min(math.Max(v, lo), hi)
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Planar Grid Explorer"))
	b.WriteString("\n")
	b.WriteString(styleMuted.Render("n/N seed  R random  +/- grid  [/] p  {/} rel  s self  m multi  w save  q quit"))
	b.WriteString("\n\n")

	o := m.opts
	params := []string{
		param("seed", fmt.Sprint(o.Seed)),
		param("grid", fmt.Sprint(o.GridSize)),
		param("p", fmt.Sprintf("%.2f", o.VertexProbability)),
		param("rel", fmt.Sprintf("%.2f", o.RelativePotentialEdgeCount)),
		param("self", fmt.Sprint(o.AllowSelfEdges)),
		param("multi", fmt.Sprint(o.AllowMultiEdges)),
	}
	b.WriteString(strings.Join(params, "  "))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(styleWarning.Render(m.err.Error()))
		b.WriteString("\n")
	case m.graph == nil:
		b.WriteString(styleMuted.Render("generating..."))
		b.WriteString("\n")
	default:
		st := m.graph.Stats()
		source := stateFresh
		if m.cached {
			source = stateCached
		}
		b.WriteString(styleMuted.Render(fmt.Sprintf("v=%d e=%d c=%d f=%d · %s", st.V, st.E, st.C, st.F, source)))
		b.WriteString("\n\n")
		b.WriteString(plotGrid(m.graph))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(styleMuted.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}

func param(key, value string) string {
	return paramKeyStyle.Render(key+"=") + styleValue.Render(value)
}

// plotGrid draws one character per grid cell, row 0 at the top: "·" for an
// empty cell, the degree (capped at 9 as "+") for a vertex.
func plotGrid(g *planar.Graph) string {
	n := g.GridSize()
	if n > maxPlotGrid {
		return styleMuted.Render(fmt.Sprintf("(grid %d is too large to plot)", n)) + "\n"
	}

	cells := make([][]string, n)
	for y := range cells {
		cells[y] = make([]string, n)
		for x := range cells[y] {
			cells[y][x] = plotEmptyStyle.Render("·")
		}
	}
	for i, p := range g.Vertices() {
		d := g.Degree(i)
		switch {
		case d == 0:
			cells[p.Y][p.X] = plotLonelyStyle.Render("o")
		case d > 9:
			cells[p.Y][p.X] = plotVertexStyle.Render("+")
		default:
			cells[p.Y][p.X] = plotVertexStyle.Render(fmt.Sprint(d))
		}
	}

	var b strings.Builder
	for _, row := range cells {
		b.WriteString("  ")
		b.WriteString(strings.Join(row, " "))
		b.WriteString("\n")
	}
	return b.String()
}

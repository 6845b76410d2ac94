package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "covmap.dev/pkg/covmap/internal/model"
)

// reservedLines is the space kept for the title, a blank line and the footer.
const reservedLines = 4

type pagerKeyMap struct {
	Quit     key.Binding
	Down     key.Binding
	Up       key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

var pagerKeys = pagerKeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "d"), key.WithHelp("d", "page down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("u", "page up")),
	Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
}

// TUI implements UI using Bubble Tea for interactive display of long listings.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayResolutions shows the resolution table, paging it when it does not fit.
func (t *TUI) DisplayResolutions(ctx context.Context, resolutions []m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(resolutions) == 0 {
		_, err := fmt.Fprintln(t.output, "No coverage paths to resolve")
		return err
	}

	return t.page(renderTitle("Coverage path resolutions", true), renderResolutionsTable(resolutions, true))
}

// DisplayStatistics prints the run summary. It is always short enough to print.
func (t *TUI) DisplayStatistics(ctx context.Context, stats m.Statistics) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.output, "\n%s\n%s", renderTitle(stats.String(), true), renderStatisticsTable(stats))

	return err
}

// DisplayIndex shows the indexed files, paging them when they do not fit.
func (t *TUI) DisplayIndex(ctx context.Context, files []m.InputFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(files) == 0 {
		_, err := fmt.Fprintln(t.output, "No files indexed")
		return err
	}

	return t.page(renderTitle("Indexed files", true), renderIndexTable(files))
}

func (t *TUI) page(title, body string) error {
	model := newPagerModel(title, body)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// pagerModel scrolls through pre-rendered lines.
type pagerModel struct {
	title    string
	lines    []string
	height   int
	width    int
	offset   int
	quitting bool
}

func newPagerModel(title, body string) pagerModel {
	return pagerModel{
		title: title,
		lines: strings.Split(strings.TrimRight(body, "\n"), "\n"),
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width
		pm.offset = min(pm.offset, pm.maxOffset())

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, pagerKeys.Quit):
		pm.quitting = true
		return pm, tea.Quit
	case key.Matches(msg, pagerKeys.Down):
		pm.offset++
	case key.Matches(msg, pagerKeys.Up):
		pm.offset--
	case key.Matches(msg, pagerKeys.PageDown):
		pm.offset += pm.linesPerPage()
	case key.Matches(msg, pagerKeys.PageUp):
		pm.offset -= pm.linesPerPage()
	case key.Matches(msg, pagerKeys.Top):
		pm.offset = 0
	case key.Matches(msg, pagerKeys.Bottom):
		pm.offset = pm.maxOffset()
	}

	pm.offset = max(0, min(pm.offset, pm.maxOffset()))

	return pm, nil
}

func (pm pagerModel) linesPerPage() int {
	if pm.height == 0 {
		return 10
	}

	return max(1, pm.height-reservedLines)
}

func (pm pagerModel) maxOffset() int {
	return max(0, len(pm.lines)-pm.linesPerPage())
}

func (pm pagerModel) needsPagination() bool {
	return pm.height > 0 && len(pm.lines) > pm.linesPerPage()
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(pm.title)
	b.WriteString("\n\n")

	visible := pm.lines
	if pm.needsPagination() {
		end := min(pm.offset+pm.linesPerPage(), len(pm.lines))
		visible = pm.lines[pm.offset:end]
	}

	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if pm.needsPagination() {
		fmt.Fprintf(&b, "\n  lines %d-%d of %d  %s %s %s %s\n",
			pm.offset+1, min(pm.offset+pm.linesPerPage(), len(pm.lines)), len(pm.lines),
			pagerKeys.Down.Help().Key, pagerKeys.Up.Help().Key, pagerKeys.PageDown.Help().Key, pagerKeys.Quit.Help().Key+" "+pagerKeys.Quit.Help().Desc)
	}

	return b.String()
}

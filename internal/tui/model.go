package tui

import (
	"fmt"
	"strings"

	"envytui/internal/envy"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Panel identifies which region has input focus
type Panel int

const (
	PanelModes Panel = iota
	PanelOptions
)

// uiState is the modal state of the interface
type uiState int

const (
	stateNormal uiState = iota
	stateConfirmSwitch
	stateApplying
	stateConfirmReboot
	stateResult
)

// optionRow is a row in the options panel. The rows shown depend on the
// selected mode, so navigation can never land on an option that does not
// apply to it.
type optionRow int

const (
	rowRTD3 optionRow = iota
	rowRTD3Level
	rowForceComp
	rowCoolbits
)

// Messages for async operations
type statusMsg struct {
	installed bool
	mode      envy.Mode
	modeKnown bool
	gpu       envy.GPUInfo
	gpuOK     bool
}
type applyDoneMsg struct{ result envy.ApplyResult }
type resetDoneMsg struct{ result envy.ApplyResult }

// Model is the main application model
type Model struct {
	width  int
	height int

	// Selection state
	panel       Panel
	modeIndex   int
	optionIndex int

	// Per-mode option values; reset whenever the selected mode changes
	rtd3          bool
	rtd3Level     envy.RTD3Level
	forceComp     bool
	coolbits      bool
	coolbitsValue int

	// Detected environment
	installed   bool
	currentMode envy.Mode
	modeKnown   bool
	gpu         *envy.GPUInfo

	// Modal state
	state    uiState
	pending  envy.SwitchOptions
	lastArgs []string
	result   *envy.ApplyResult
	copied   bool

	spin spinner.Model
}

// New creates a new model
func New() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(Accent)

	return Model{
		installed:     true,
		rtd3Level:     envy.RTD3FineGrained,
		coolbitsValue: envy.DefaultCoolbitsValue,
		spin:          s,
	}
}

func (m Model) Init() tea.Cmd { return statusCmd }

func statusCmd() tea.Msg {
	msg := statusMsg{installed: envy.IsInstalled()}
	if msg.installed {
		msg.mode, msg.modeKnown = envy.QueryMode()
	}
	msg.gpu, msg.gpuOK = envy.QueryGPUInfo()
	return msg
}

func applyCmd(opts envy.SwitchOptions) tea.Cmd {
	return func() tea.Msg {
		return applyDoneMsg{result: envy.Switch(opts)}
	}
}

func resetCmd() tea.Msg {
	return resetDoneMsg{result: envy.Reset()}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state == stateApplying {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case statusMsg:
		m.installed = msg.installed
		m.currentMode = msg.mode
		m.modeKnown = msg.modeKnown
		if msg.gpuOK {
			gpu := msg.gpu
			m.gpu = &gpu
		}
		if !msg.installed {
			m.result = &envy.ApplyResult{Message: "envycontrol is not installed. Please install it first."}
			m.state = stateResult
		}
		return m, nil

	case applyDoneMsg:
		result := msg.result
		m.result = &result
		if result.Success {
			m.currentMode = result.Mode
			m.modeKnown = true
			m.state = stateConfirmReboot
		} else {
			m.state = stateResult
		}
		return m, nil

	case resetDoneMsg:
		result := msg.result
		m.result = &result
		if result.Success {
			m.modeKnown = false
		}
		m.state = stateResult
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state == stateApplying {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	switch m.state {
	case stateConfirmSwitch:
		return m.handleConfirmSwitchKey(key)
	case stateConfirmReboot:
		return m.handleConfirmRebootKey(key)
	case stateResult:
		return m.handleResultKey(key)
	}
	return m.handleNormalKey(key)
}

func (m Model) handleNormalKey(key string) (Model, tea.Cmd) {
	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "tab":
		return m.switchPanel(), nil
	case "up", "k":
		return m.moveUp(), nil
	case "down", "j":
		return m.moveDown(), nil
	case " ":
		return m.toggleOption(), nil
	case "enter":
		m.pending = m.switchOptions()
		m.state = stateConfirmSwitch
		return m, nil
	case "r":
		m.state = stateApplying
		m.lastArgs = envy.ResetArgs()
		m.copied = false
		return m, tea.Batch(resetCmd, m.spin.Tick)
	}
	return m, nil
}

func (m Model) handleConfirmSwitchKey(key string) (Model, tea.Cmd) {
	switch key {
	case "y", "enter":
		m.state = stateApplying
		m.lastArgs = envy.SwitchArgs(m.pending)
		m.copied = false
		return m, tea.Batch(applyCmd(m.pending), m.spin.Tick)
	case "n", "esc":
		m.state = stateNormal
	}
	return m, nil
}

func (m Model) handleConfirmRebootKey(key string) (Model, tea.Cmd) {
	switch key {
	case "y", "enter":
		if err := envy.Reboot(); err != nil {
			m.result = &envy.ApplyResult{Message: "Failed to reboot: " + err.Error()}
		} else {
			m.result = &envy.ApplyResult{Success: true, Mode: m.currentMode, Message: "Reboot requested."}
		}
		m.state = stateResult
	case "n", "esc":
		// keep the switch result on screen; the reboot can happen later
		m.state = stateResult
	}
	return m, nil
}

func (m Model) handleResultKey(key string) (Model, tea.Cmd) {
	if key == "c" && len(m.lastArgs) > 0 {
		err := envy.CopyToClipboard(envy.CommandLine(m.lastArgs))
		m.copied = err == nil
		return m, nil
	}
	m.state = stateNormal
	m.result = nil
	m.copied = false
	return m, nil
}

// ============================================================================
// Selection state transitions
// ============================================================================

func (m Model) selectedMode() envy.Mode {
	return envy.AllModes()[m.modeIndex]
}

// optionRows returns the option rows for the selected mode. Modes without
// options return nil, which makes the options panel unreachable.
func (m Model) optionRows() []optionRow {
	switch m.selectedMode() {
	case envy.ModeHybrid:
		return []optionRow{rowRTD3, rowRTD3Level}
	case envy.ModeNvidia:
		return []optionRow{rowForceComp, rowCoolbits}
	}
	return nil
}

func (m Model) switchPanel() Model {
	if m.panel == PanelModes {
		if len(m.optionRows()) == 0 {
			return m
		}
		m.panel = PanelOptions
	} else {
		m.panel = PanelModes
	}
	return m
}

func (m Model) moveUp() Model {
	if m.panel == PanelModes {
		return m.selectMode(-1)
	}
	rows := m.optionRows()
	if len(rows) == 0 {
		return m
	}
	m.optionIndex = (m.optionIndex + len(rows) - 1) % len(rows)
	return m
}

func (m Model) moveDown() Model {
	if m.panel == PanelModes {
		return m.selectMode(1)
	}
	rows := m.optionRows()
	if len(rows) == 0 {
		return m
	}
	m.optionIndex = (m.optionIndex + 1) % len(rows)
	return m
}

// selectMode moves the mode selection and resets option values, so flags
// from one mode never carry over into another mode's command.
func (m Model) selectMode(delta int) Model {
	n := len(envy.AllModes())
	m.modeIndex = (m.modeIndex + delta + n) % n
	m.optionIndex = 0
	m.rtd3 = false
	m.rtd3Level = envy.RTD3FineGrained
	m.forceComp = false
	m.coolbits = false
	m.coolbitsValue = envy.DefaultCoolbitsValue
	return m
}

func (m Model) toggleOption() Model {
	rows := m.optionRows()
	if m.panel != PanelOptions || len(rows) == 0 {
		return m
	}
	switch rows[m.optionIndex] {
	case rowRTD3:
		m.rtd3 = !m.rtd3
	case rowRTD3Level:
		m.rtd3Level = m.rtd3Level.Next()
	case rowForceComp:
		m.forceComp = !m.forceComp
	case rowCoolbits:
		m.coolbits = !m.coolbits
	}
	return m
}

func (m Model) switchOptions() envy.SwitchOptions {
	opts := envy.DefaultSwitchOptions(m.selectedMode())
	opts.RTD3 = m.rtd3
	opts.RTD3Level = m.rtd3Level
	opts.ForceComp = m.forceComp
	opts.Coolbits = m.coolbits
	opts.CoolbitsValue = m.coolbitsValue
	return opts
}

// ============================================================================
// Views
// ============================================================================

func (m Model) View() string {
	switch m.state {
	case stateConfirmSwitch:
		return m.viewConfirmSwitch()
	case stateApplying:
		return m.viewApplying()
	case stateConfirmReboot:
		return m.viewConfirmReboot()
	case stateResult:
		return m.viewResult()
	}
	return m.viewMain()
}

func (m Model) contentWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 80
}

func (m Model) viewMain() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	panelWidth := m.contentWidth()/2 - 3
	if panelWidth < 30 {
		panelWidth = 30
	}
	left := m.viewModesPanel(panelWidth)
	right := m.viewOptionsPanel(panelWidth)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewHeader() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("EnvyTUI") + SubtitleStyle.Render("  GPU mode switcher for envycontrol") + "\n")

	if m.modeKnown {
		b.WriteString(SubtitleStyle.Render("Current mode: ") +
			ModeStyle(m.currentMode).Bold(true).Render(m.currentMode.Label()) + "\n")
	} else {
		b.WriteString(SubtitleStyle.Render("Current mode: ") + DimStyle.Render("Unknown") + "\n")
	}

	if m.gpu != nil {
		b.WriteString(DimStyle.Render(m.gpu.Name+" │ "+m.gpu.Temperature+" │ "+m.gpu.MemoryDisplay()) + "\n")
	}
	return b.String()
}

func (m Model) viewModesPanel(width int) string {
	var b strings.Builder
	b.WriteString(SubtitleStyle.Render("Graphics Mode") + "\n\n")

	for i, mode := range envy.AllModes() {
		cursor := "  "
		label := NormalStyle.Render(mode.Label())
		if i == m.modeIndex {
			cursor = SelectedStyle.Render("> ")
			label = ModeStyle(mode).Bold(true).Render(mode.Label())
		}
		marker := ""
		if m.modeKnown && m.currentMode == mode {
			marker = SuccessStyle.Render(" ●")
		}
		b.WriteString(cursor + label + marker + "\n")
		b.WriteString(DimStyle.Render("  "+mode.Description()) + "\n\n")
	}

	style := PanelStyle
	if m.panel == PanelModes {
		style = FocusedPanelStyle
	}
	return style.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewOptionsPanel(width int) string {
	var b strings.Builder
	b.WriteString(SubtitleStyle.Render("Options") + "\n\n")

	rows := m.optionRows()
	if len(rows) == 0 {
		b.WriteString(DimStyle.Render("No additional options for this mode.") + "\n")
		b.WriteString(DimStyle.Render("The dGPU is powered off to save battery.") + "\n")
	} else {
		for i, row := range rows {
			cursor := "  "
			if m.panel == PanelOptions && i == m.optionIndex {
				cursor = SelectedStyle.Render("> ")
			}
			b.WriteString(cursor + m.renderOptionRow(row) + "\n")
			b.WriteString(DimStyle.Render("  "+optionRowDescription(row)) + "\n\n")
		}
	}

	style := PanelStyle
	if m.panel == PanelOptions {
		style = FocusedPanelStyle
	}
	return style.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderOptionRow(row optionRow) string {
	checkbox := func(on bool) string {
		if on {
			return SuccessStyle.Render("[x] ")
		}
		return DimStyle.Render("[ ] ")
	}

	switch row {
	case rowRTD3:
		return checkbox(m.rtd3) + NormalStyle.Render(envy.OptionRTD3.Label())
	case rowRTD3Level:
		return "    " + NormalStyle.Render("RTD3 Level: "+m.rtd3Level.String())
	case rowForceComp:
		return checkbox(m.forceComp) + NormalStyle.Render(envy.OptionForceComp.Label())
	case rowCoolbits:
		return checkbox(m.coolbits) +
			NormalStyle.Render(fmt.Sprintf("%s (value: %d)", envy.OptionCoolbits.Label(), m.coolbitsValue))
	}
	return ""
}

func optionRowDescription(row optionRow) string {
	switch row {
	case rowRTD3:
		return envy.OptionRTD3.Description()
	case rowRTD3Level:
		return "Space cycles the aggressiveness. Higher levels save more power but may add wake latency."
	case rowForceComp:
		return envy.OptionForceComp.Description()
	case rowCoolbits:
		return envy.OptionCoolbits.Description()
	}
	return ""
}

func (m Model) viewFooter() string {
	keys := []string{
		RenderKey("↑↓/jk", "Navigate"),
		RenderKey("Tab", "Switch panel"),
		RenderKey("Space", "Toggle"),
		RenderKey("Enter", "Apply"),
		RenderKey("r", "Reset"),
		RenderKey("q", "Quit"),
	}
	return FooterStyle.Render(strings.Join(keys, "  "))
}

func (m Model) viewConfirmSwitch() string {
	var b strings.Builder
	b.WriteString(WarningStyle.Render("Switch to "+m.pending.Mode.Label()+" mode?") + "\n\n")
	b.WriteString(DimStyle.Render(envy.CommandLine(envy.SwitchArgs(m.pending))) + "\n\n")
	b.WriteString(RenderKey("y/Enter", "Yes") + "  " + RenderKey("n/Esc", "No"))
	return m.overlay(ConfirmBoxStyle.Render(b.String()))
}

func (m Model) viewApplying() string {
	var b strings.Builder
	b.WriteString(m.spin.View() + NormalStyle.Render(" Applying changes...") + "\n\n")
	b.WriteString(DimStyle.Render(envy.CommandLine(m.lastArgs)))
	return m.overlay(ConfirmBoxStyle.BorderForeground(Accent).Render(b.String()))
}

func (m Model) viewConfirmReboot() string {
	var b strings.Builder
	msg := "Mode switched successfully."
	if m.result != nil {
		msg = m.result.Message
	}
	b.WriteString(SuccessStyle.Render(msg) + "\n")
	b.WriteString(NormalStyle.Render("Reboot now for the change to take effect?") + "\n\n")
	b.WriteString(RenderKey("y/Enter", "Reboot") + "  " + RenderKey("n/Esc", "Later"))
	return m.overlay(ConfirmBoxStyle.Render(b.String()))
}

func (m Model) viewResult() string {
	if m.result == nil {
		return m.viewMain()
	}

	var b strings.Builder
	style := ErrorBoxStyle
	if m.result.Success {
		style = SuccessBoxStyle
		b.WriteString(SuccessStyle.Render(m.result.Message) + "\n")
		b.WriteString(DimStyle.Render("Reboot for the change to take effect.") + "\n\n")
	} else {
		b.WriteString(ErrorStyle.Render(m.result.Message) + "\n\n")
	}

	if len(m.lastArgs) > 0 {
		if m.copied {
			b.WriteString(SuccessStyle.Render("Copied to clipboard!") + "\n")
		} else {
			b.WriteString(RenderKey("c", "Copy command") + "\n")
		}
	}
	b.WriteString(DimStyle.Render("Press any key to continue"))
	return m.overlay(style.Render(b.String()))
}

func (m Model) overlay(box string) string {
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

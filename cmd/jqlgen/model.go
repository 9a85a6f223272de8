package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jqlgen/pkg/completion"
	"jqlgen/pkg/jql"
)

// appState represents the application state machine.
type appState int

const (
	stateIdle appState = iota
	stateProcessing
)

// focusTarget identifies which input field receives keystrokes.
type focusTarget int

const (
	focusIntent focusTarget = iota
	focusJiraErr
)

// action is a user-triggered operation against the generator.
type action int

const (
	actionGenerate action = iota
	actionRefine
)

// appModel is the root bubbletea model: a two-column form with the intent
// and Jira-error inputs on the left and the generated query plus explanation
// on the right.
type appModel struct {
	ctx       context.Context
	gen       *jql.Generator
	modelName string

	intent  textarea.Model
	jiraErr textarea.Model
	focus   focusTarget

	query       string
	explanation string
	parsed      bool
	errText     string // user-facing failure text; rendered apart from the query field

	state       appState
	spinnerIdx  int
	statusFlash string
	duration    time.Duration

	// Every dispatched request gets a fresh id; a completion is applied
	// only when its id matches the latest issued, so a slow stale response
	// can never overwrite a newer one.
	reqID     uint64
	cancelReq context.CancelFunc

	width  int
	height int
}

func newField(placeholder string, height int) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(height)
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Prompt = lipgloss.NewStyle()
	ta.BlurredStyle.Prompt = lipgloss.NewStyle()
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))
	return ta
}

func newAppModel(ctx context.Context, gen *jql.Generator, modelName string) appModel {
	intent := newField("Describe what you want to search for in natural language...", 3)
	intent.Focus()

	jiraErr := newField("If the JQL query didn't work, paste the error message from Jira here...", 4)

	return appModel{
		ctx:       ctx,
		gen:       gen,
		modelName: modelName,
		intent:    intent,
		jiraErr:   jiraErr,
		focus:     focusIntent,
		state:     stateIdle,
	}
}

func (m appModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case completeMsg:
		return m.handleComplete(msg)

	case copiedMsg:
		m.statusFlash = ""
		return m, nil

	case tickMsg:
		if m.state == stateProcessing {
			m.spinnerIdx++
			return m, tickCmd()
		}
		return m, nil
	}

	return m.updateFocusedField(msg)
}

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	leftWidth := m.width/2 - 1
	rightWidth := m.width - leftWidth - 2

	left := m.viewInputs(leftWidth)
	right := m.viewOutputs(rightWidth)

	columns := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	return lipgloss.JoinVertical(lipgloss.Left, columns, m.viewStatusBar())
}

func (m *appModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	fieldWidth := max(m.width/2-5, 20)
	m.intent.SetWidth(fieldWidth)
	m.jiraErr.SetWidth(fieldWidth)
	initMarkdownRenderer(m.width - m.width/2 - 5)

	return m, nil
}

func (m *appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.cancelReq != nil {
			m.cancelReq()
		}
		return m, tea.Quit

	case tea.KeyTab, tea.KeyShiftTab:
		m.toggleFocus()
		return m, nil

	case tea.KeyEnter:
		if msg.Alt {
			break // textarea inserts the newline
		}
		if m.focus == focusJiraErr {
			return m, m.dispatch(actionRefine)
		}
		return m, m.dispatch(actionGenerate)

	case tea.KeyCtrlG:
		return m, m.dispatch(actionGenerate)

	case tea.KeyCtrlR:
		return m, m.dispatch(actionRefine)

	case tea.KeyCtrlX:
		m.reset()
		return m, nil

	case tea.KeyCtrlY:
		return m, m.copyQuery()
	}

	return m.updateFocusedField(msg)
}

func (m *appModel) updateFocusedField(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusIntent {
		m.intent, cmd = m.intent.Update(msg)
	} else {
		m.jiraErr, cmd = m.jiraErr.Update(msg)
	}
	return m, cmd
}

func (m *appModel) toggleFocus() {
	if m.focus == focusIntent {
		m.focus = focusJiraErr
		m.intent.Blur()
		m.jiraErr.Focus()
	} else {
		m.focus = focusIntent
		m.jiraErr.Blur()
		m.intent.Focus()
	}
}

// dispatch cancels any in-flight request and starts a new one. The returned
// command runs the completion call in a goroutine and delivers a completeMsg
// tagged with this request's id.
func (m *appModel) dispatch(act action) tea.Cmd {
	if m.cancelReq != nil {
		m.cancelReq()
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelReq = cancel

	m.reqID++
	id := m.reqID
	m.state = stateProcessing

	gen := m.gen
	intent := m.intent.Value()
	jiraErr := m.jiraErr.Value()
	start := time.Now()

	run := func() tea.Msg {
		var (
			res jql.Result
			err error
		)
		switch act {
		case actionGenerate:
			res, err = gen.Generate(ctx, intent)
		case actionRefine:
			res, err = gen.Refine(ctx, intent, jiraErr)
		}
		return completeMsg{id: id, result: res, err: err, duration: time.Since(start)}
	}

	return tea.Batch(run, tickCmd())
}

func (m *appModel) handleComplete(msg completeMsg) (tea.Model, tea.Cmd) {
	// A newer request has been issued since this one; drop it.
	if msg.id != m.reqID {
		return m, nil
	}

	m.state = stateIdle
	m.cancelReq = nil
	m.duration = msg.duration

	if msg.err != nil {
		m.errText = completion.UserMessage(msg.err)
		return m, nil
	}

	m.query = msg.result.Query
	m.explanation = msg.result.Explanation
	m.parsed = msg.result.Parsed
	m.errText = ""

	return m, nil
}

// reset clears all four visible fields unconditionally. Bumping the request
// id also invalidates any in-flight completion so a late response cannot
// repopulate the cleared outputs.
func (m *appModel) reset() {
	if m.cancelReq != nil {
		m.cancelReq()
		m.cancelReq = nil
	}
	m.reqID++
	m.state = stateIdle

	m.intent.Reset()
	m.jiraErr.Reset()
	m.query = ""
	m.explanation = ""
	m.parsed = false
	m.errText = ""
	m.statusFlash = ""
}

func (m *appModel) copyQuery() tea.Cmd {
	if m.query == "" {
		return nil
	}
	if err := clipboard.WriteAll(m.query); err != nil {
		m.statusFlash = "copy failed: " + err.Error()
	} else {
		m.statusFlash = "copied!"
	}
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return copiedMsg{}
	})
}

func (m appModel) viewInputs(width int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Jira JQL Filter Creator"))
	sb.WriteString("\n\n")

	intentLabel := labelStyle
	errLabel := labelStyle
	intentBorder := blurredBorder
	errBorder := blurredBorder
	if m.focus == focusIntent {
		intentLabel = labelFocusedStyle
		intentBorder = focusedBorder
	} else {
		errLabel = labelFocusedStyle
		errBorder = focusedBorder
	}

	sb.WriteString(intentLabel.Render("Search Query"))
	sb.WriteString("\n")
	sb.WriteString(intentBorder.Width(width - 2).Render(m.intent.View()))
	sb.WriteString("\n\n")

	sb.WriteString(errLabel.Render("Jira Error Message"))
	sb.WriteString("\n")
	sb.WriteString(errBorder.Width(width - 2).Render(m.jiraErr.View()))
	sb.WriteString("\n\n")

	sb.WriteString(dimStyle.Render(
		"enter generate · ctrl+r refine · ctrl+x reset\n" +
			"ctrl+y copy query · tab switch field · ctrl+c quit",
	))

	return lipgloss.NewStyle().Width(width).Render(sb.String())
}

func (m appModel) viewOutputs(width int) string {
	var sb strings.Builder

	sb.WriteString(labelStyle.Render("JQL Query"))
	sb.WriteString("\n")

	switch {
	case m.state == stateProcessing:
		frame := spinnerFrames[m.spinnerIdx%len(spinnerFrames)]
		sb.WriteString(queryBlockStyle.Width(width - 2).Render(
			spinnerStyle.Render(frame + " generating..."),
		))
	case m.query != "":
		sb.WriteString(queryBlockStyle.Width(width - 2).Render(queryTextStyle.Render(m.query)))
	default:
		sb.WriteString(queryBlockStyle.Width(width - 2).Render(dimStyle.Render("(empty)")))
	}
	sb.WriteString("\n")

	if m.errText != "" {
		sb.WriteString("\n")
		sb.WriteString(errorBlockStyle.Render(errorTextStyle.Render(m.errText)))
		sb.WriteString("\n")
	}

	if m.query != "" && !m.parsed && m.state == stateIdle {
		sb.WriteString(unparsedNoteStyle.Render("reply had no explanation section"))
		sb.WriteString("\n")
	}

	if m.explanation != "" {
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render("Explanation"))
		sb.WriteString("\n")
		sb.WriteString(renderMarkdown(m.explanation))
	}

	return lipgloss.NewStyle().Width(width).Render(sb.String())
}

func (m appModel) viewStatusBar() string {
	parts := []string{m.modelName}

	if m.duration > 0 {
		parts = append(parts, fmt.Sprintf("%.1fs", m.duration.Seconds()))
	}
	if m.statusFlash != "" {
		parts = append(parts, m.statusFlash)
	}

	return statusStyle.Render(truncate(strings.Join(parts, " · "), m.width))
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

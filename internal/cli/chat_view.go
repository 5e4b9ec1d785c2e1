package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoevodin/kedobot/internal/cli/formatter"
	"github.com/avoevodin/kedobot/internal/flow"
)

// localUserID identifies the terminal operator in the session store.
const localUserID int64 = 1

// chatView runs the calculator conversation in the terminal. It plays
// the role a messenger platform plays in production: renders replies,
// turns keyboards into numbered options and feeds input back to the flow.
type chatView struct {
	machine *flow.Machine
	session *flow.Session

	input      textinput.Model
	transcript []string
	options    []flow.Option
	quitting   bool
}

func newChatView(machine *flow.Machine, session *flow.Session) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 200

	v := &chatView{
		machine: machine,
		session: session,
		input:   ti,
	}
	v.appendReplies([]flow.Reply{machine.Welcome()})
	return v
}

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			v.quitting = true
			return v, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(v.input.Value())
			v.input.Reset()
			if text == "" {
				return v, nil
			}
			return v.handleInput(text)
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) View() string {
	var b strings.Builder

	for _, line := range v.transcript {
		b.WriteString(line)
		b.WriteString("\n")
	}

	for i, opt := range v.options {
		fmt.Fprintf(&b, "  %s %s\n",
			formatter.StyleHeader.Render(fmt.Sprintf("[%d]", i+1)),
			formatter.StyleFg.Render(opt.Label))
	}

	if v.quitting {
		return b.String()
	}

	prompt := formatter.StylePurple.Render("вы") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(v.input.View())
	return b.String()
}

func (v *chatView) handleInput(text string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(text) {
	case "/quit", "/exit", "quit", "exit":
		v.quitting = true
		return v, tea.Quit
	}

	v.transcript = append(v.transcript, formatter.Dim("вы> ")+text)

	replies, err := v.dispatch(text)
	if err != nil {
		v.transcript = append(v.transcript, formatter.StyleRed.Render("Ошибка: "+err.Error()))
		return v, nil
	}
	v.appendReplies(replies)
	return v, nil
}

// dispatch maps input to a flow event: a slash command, a number or
// label of one of the offered options, or plain text.
func (v *chatView) dispatch(text string) ([]flow.Reply, error) {
	ctx := context.Background()

	switch strings.ToLower(text) {
	case "/start":
		return v.machine.HandleAction(ctx, v.session, flow.ActionStart)
	case "/restart":
		return v.machine.HandleAction(ctx, v.session, flow.ActionRestart)
	case "/stop":
		return v.machine.HandleAction(ctx, v.session, flow.ActionStop)
	}

	if action, ok := v.pickOption(text); ok {
		return v.machine.HandleAction(ctx, v.session, action)
	}
	return v.machine.HandleText(ctx, v.session, text)
}

func (v *chatView) pickOption(text string) (flow.Action, bool) {
	if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(v.options) {
		return v.options[n-1].Action, true
	}
	for _, opt := range v.options {
		if strings.EqualFold(text, opt.Label) {
			return opt.Action, true
		}
	}
	return "", false
}

func (v *chatView) appendReplies(replies []flow.Reply) {
	v.options = nil
	for _, r := range replies {
		v.transcript = append(v.transcript, formatter.StyleBlue.Render("бот> ")+r.Text)
		if r.Chart != nil {
			v.transcript = append(v.transcript, formatter.FormatCostChart(*r.Chart))
		}
		if len(r.Options) > 0 {
			v.options = r.Options
		}
	}
}

// runChat wires the flow over the App services and blocks until the
// operator leaves the chat.
func runChat(app *App) error {
	machine := flow.NewMachine(app.Calculator, app.Leads)
	session := flow.NewManager().Ensure(localUserID)

	program := tea.NewProgram(newChatView(machine, session))
	_, err := program.Run()
	return err
}

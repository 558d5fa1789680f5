package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/cheddup/internal/app"
	"github.com/MKhiriev/cheddup/internal/service"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	copiedStatus = "Copied!"
	statusTTL    = 2 * time.Second
)

// ChatModel is the chat view: one question input, the last answer and the
// documents it was built from.
type ChatModel struct {
	ctx  context.Context
	chat service.ChatService

	input      textinput.Model
	spinner    spinner.Model
	submitting bool
	answer     string
	success    bool
	sources    []string
	status     string
	statusSeq  int

	copyToClipboard func(string) error
}

// NewChatModel creates a [ChatModel] with a focused question input.
func NewChatModel(ctx context.Context, chat service.ChatService) *ChatModel {
	input := textinput.New()
	input.Placeholder = app.ChatPlaceholder
	input.Width = 60
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &ChatModel{
		ctx:             ctx,
		chat:            chat,
		input:           input,
		spinner:         s,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m *ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatDoneMsg:
		m.submitting = false
		m.answer = msg.result.Answer
		m.success = msg.result.Success
		m.sources = msg.result.Sources
		return m, nil
	case copiedMsg:
		return m, m.showStatus(copiedStatus)
	case copyFailedMsg:
		return m, m.showStatus(msg.err.Error())
	case clearStatusMsg:
		// an older timer must not hide a newer status
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.send):
			return m, m.submit()
		case key.Matches(msg, keys.copy):
			if !m.success || m.answer == "" {
				return m, nil
			}
			return m, m.cmdCopy(m.answer)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	question := m.input.Value()
	if strings.TrimSpace(question) == "" {
		m.answer = app.MsgEnterQuestion
		m.success = false
		m.sources = nil
		return nil
	}

	m.answer = ""
	m.success = false
	m.sources = nil
	m.submitting = true
	return tea.Batch(m.spinner.Tick, m.cmdAsk(question))
}

func (m *ChatModel) cmdAsk(question string) tea.Cmd {
	ctx := m.ctx
	chat := m.chat

	return func() tea.Msg {
		return chatDoneMsg{result: chat.Ask(ctx, question)}
	}
}

func (m *ChatModel) cmdCopy(text string) tea.Cmd {
	write := m.copyToClipboard

	return func() tea.Msg {
		if err := write(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m *ChatModel) showStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	return cmdClearStatus(m.statusSeq)
}

func cmdClearStatus(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *ChatModel) View() string {
	var b strings.Builder
	card := app.CardFor(app.RouteChat)

	b.WriteString(card.Body)
	b.WriteString("\n\n")
	b.WriteString("[")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")

	if m.submitting {
		b.WriteString(renderButton(app.LabelSending, true))
		b.WriteString(" ")
		b.WriteString(m.spinner.View())
	} else {
		b.WriteString(renderButton(app.LabelSend, false))
	}
	b.WriteString("\n")

	if m.answer != "" {
		b.WriteString("\n")
		if m.success {
			b.WriteString(m.answer)
		} else {
			b.WriteString(renderStatus(m.answer, false))
		}
		b.WriteString("\n")
	}

	if len(m.sources) > 0 {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Sources:"))
		b.WriteString("\n")
		for _, name := range m.sources {
			b.WriteString("  • ")
			b.WriteString(name)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage(cardTitle(card), strings.TrimRight(b.String(), "\n"), hotKeys(keys.send, keys.copy))
}

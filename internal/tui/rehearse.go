package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/f3rmion/readafter/internal/clipboard"
	"github.com/f3rmion/readafter/internal/pinyin"
	"github.com/f3rmion/readafter/internal/speech"
	"github.com/f3rmion/readafter/internal/tui/banner"
)

// Script is one marked text to rehearse.
type Script struct {
	Title string
	Text  string
}

// Options configures the rehearsal screen.
type Options struct {
	Start  speech.Position
	Sink   speech.Sink      // Optional voice for the "s" key
	Banner *banner.Renderer // Optional block-art cue
}

// cue is a single breath segment on screen.
type cue struct {
	title string
	pos   speech.Position
	u     speech.Utterance
}

type spokenMsg struct{ err error }

type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Model is the Bubble Tea model for rehearsing marked text.
type Model struct {
	cues   []cue
	pos    int
	parser *pinyin.Parser
	sink   speech.Sink
	banner *banner.Renderer

	showPinyin bool
	showBanner bool

	jumping bool
	jump    textinput.Model

	speaking bool
	status   string
	err      error

	width  int
	height int
}

// New creates a rehearsal model over scripts.
func New(scripts []Script, opts Options) Model {
	var cues []cue
	start := 0
	for i, s := range scripts {
		for j, u := range speech.Utterances(s.Text) {
			pos := speech.Position{Text: i, Segment: j}
			if pos == opts.Start {
				start = len(cues)
			}
			cues = append(cues, cue{title: s.Title, pos: pos, u: u})
		}
	}

	ti := textinput.New()
	ti.Placeholder = "segment number"
	ti.CharLimit = 6
	ti.Width = 16
	ti.PromptStyle = InputPromptStyle
	ti.TextStyle = InputTextStyle

	return Model{
		cues:       cues,
		pos:        start,
		parser:     pinyin.NewParser(),
		sink:       opts.Sink,
		banner:     opts.Banner,
		showPinyin: true,
		jump:       ti,
	}
}

// Position returns the segment on screen, for resuming later.
func (m Model) Position() speech.Position {
	if len(m.cues) == 0 {
		return speech.Position{}
	}
	return m.cues[m.pos].pos
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.jumping {
			return m.updateJump(msg)
		}
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "right", "l", " ", "enter", "n":
			m.move(1)
		case "left", "h", "backspace":
			m.move(-1)
		case "home":
			m.pos = 0
		case "end":
			m.pos = max(len(m.cues)-1, 0)
		case "p":
			m.showPinyin = !m.showPinyin
		case "b":
			m.showBanner = !m.showBanner
		case "g", ":":
			m.jumping = true
			m.jump.SetValue("")
			cmd := m.jump.Focus()
			return m, cmd
		case "s":
			return m, m.speak()
		case "y":
			return m, m.copy()
		}
		return m, nil

	case spokenMsg:
		m.speaking = false
		m.err = msg.err
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m Model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.jumping = false
		m.jump.Blur()
		return m, nil
	case "enter":
		m.jumping = false
		m.jump.Blur()
		n, err := strconv.Atoi(strings.TrimSpace(m.jump.Value()))
		if err != nil || n < 1 || n > len(m.cues) {
			m.err = fmt.Errorf("no segment %q", m.jump.Value())
			return m, nil
		}
		m.err = nil
		m.pos = n - 1
		return m, nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

func (m *Model) move(delta int) {
	if len(m.cues) == 0 {
		return
	}
	m.pos = min(max(m.pos+delta, 0), len(m.cues)-1)
	m.err = nil
}

func (m *Model) speak() tea.Cmd {
	if m.sink == nil || len(m.cues) == 0 || m.speaking {
		return nil
	}
	m.speaking = true
	sink, text := m.sink, m.cues[m.pos].u.Spoken
	return func() tea.Msg {
		return spokenMsg{err: sink.Speak(context.Background(), text)}
	}
}

func (m *Model) copy() tea.Cmd {
	if len(m.cues) == 0 {
		return nil
	}
	if err := clipboard.Write(m.cues[m.pos].u.Text); err != nil {
		m.err = err
		return nil
	}
	m.status = "Copied!"
	return clearStatusAfter(2 * time.Second)
}

// View renders the model.
func (m Model) View() string {
	if len(m.cues) == 0 {
		return TitleStyle.Render("readafter") + "\n\nNothing to rehearse.\n"
	}

	width := m.width
	if width <= 0 {
		width = 80
	}
	textWidth := max(width-10, 10)
	c := m.cues[m.pos]

	var b strings.Builder
	b.WriteString(TitleStyle.Render("readafter · 跟读"))
	b.WriteString(" ")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%d/%d  %s", m.pos+1, len(m.cues), truncate(c.title, textWidth/2))))
	b.WriteString("\n")

	if m.pos > 0 {
		b.WriteString(NeighbourSegmentStyle.Render(wrapText(m.cues[m.pos-1].u.Text, textWidth)))
		b.WriteString("\n")
	}

	current := wrapText(c.u.Text, textWidth)
	if m.showPinyin {
		current += "\n" + m.renderPinyin(c.u.Spoken)
	}
	b.WriteString(CurrentSegmentStyle.Render(current))
	b.WriteString("\n")

	if m.showBanner && m.banner != nil {
		if art := m.banner.RenderPhrase(c.u.Spoken, 4, 8, 4); art != "" {
			b.WriteString(BannerStyle.Render(art))
			b.WriteString("\n")
		}
	}

	if m.pos < len(m.cues)-1 {
		b.WriteString(NeighbourSegmentStyle.Render(wrapText(m.cues[m.pos+1].u.Text, textWidth)))
		b.WriteString("\n")
	}

	switch {
	case m.jumping:
		b.WriteString("\n" + m.jump.View() + "\n")
	case m.err != nil:
		b.WriteString("\n" + ErrorStyle.Render(m.err.Error()) + "\n")
	case m.speaking:
		b.WriteString("\n" + StatusStyle.Render("Speaking…") + "\n")
	case m.status != "":
		b.WriteString("\n" + StatusStyle.Render(m.status) + "\n")
	}

	help := "←/→ move · g jump · p pinyin · y copy · q quit"
	if m.sink != nil {
		help = "s speak · " + help
	}
	if m.banner != nil {
		help = "b banner · " + help
	}
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}

func (m Model) renderPinyin(text string) string {
	var parts []string
	for _, s := range m.parser.Annotate(text) {
		if s.Pinyin != "" {
			parts = append(parts, ToneStyle(s.Tone).Render(s.Pinyin))
		}
	}
	return strings.Join(parts, " ")
}

// Run starts the rehearsal TUI and returns where the learner stopped.
func Run(scripts []Script, opts Options) (speech.Position, error) {
	p := tea.NewProgram(New(scripts, opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return opts.Start, err
	}
	return final.(Model).Position(), nil
}

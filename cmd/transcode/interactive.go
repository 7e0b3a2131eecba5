package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dracotranscoder "github.com/wippyai/draco-transcoder"
	"github.com/wippyai/draco-transcoder/loader"
	"github.com/wippyai/draco-transcoder/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	rangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type optionField struct {
	name  string
	hint  string
	value *int32
}

type interactiveModel struct {
	err      error
	lib      *loader.Library
	input    string
	output   string
	result   string
	opts     dracotranscoder.Options
	fields   []optionField
	inputs   []textinput.Model
	focusIdx int
	state    modelState
}

type modelState int

const (
	stateEditOptions modelState = iota
	stateRunning
	stateShowResult
)

func newInteractiveModel(input, output string, opts dracotranscoder.Options) *interactiveModel {
	m := &interactiveModel{
		input:  input,
		output: output,
		opts:   opts,
		state:  stateEditOptions,
	}
	m.fields = []optionField{
		{"position bits", "[0-30]", &m.opts.PositionBits},
		{"tex coord bits", "[0-30]", &m.opts.TexCoordBits},
		{"normal bits", "[0-30]", &m.opts.NormalBits},
		{"color bits", "[0-30]", &m.opts.ColorBits},
		{"tangent bits", "[0-30]", &m.opts.TangentBits},
		{"weight bits", "[0-30]", &m.opts.WeightBits},
		{"generic bits", "[0-30]", &m.opts.GenericBits},
		{"compression level", "[0-10]", &m.opts.CompressionLevel},
	}
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		ti := textinput.New()
		ti.Prompt = f.name + ": "
		ti.SetValue(strconv.FormatInt(int64(*f.value), 10))
		ti.Width = 6
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	return m
}

type loadedMsg struct {
	err error
	lib *loader.Library
}

type transcodeDoneMsg struct {
	err error
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadLibrary
}

func (m *interactiveModel) loadLibrary() tea.Msg {
	lib, err := loader.Default()
	return loadedMsg{lib: lib, err: err}
}

func (m *interactiveModel) runTranscode() tea.Msg {
	tc := transcoder.NewFromLibrary(m.lib)
	return transcodeDoneMsg{err: tc.Transcode(m.input, m.output, m.opts)}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateEditOptions || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "tab", "down":
			if m.state == stateEditOptions {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "shift+tab", "up":
			if m.state == stateEditOptions {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + len(m.inputs) - 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "enter":
			switch m.state {
			case stateEditOptions:
				if m.lib == nil {
					return m, nil
				}
				if err := m.applyInputs(); err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				m.state = stateRunning
				return m, m.runTranscode

			case stateShowResult:
				return m, tea.Quit
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateEditOptions
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.lib = msg.lib

	case transcodeDoneMsg:
		m.err = msg.err
		if msg.err == nil {
			m.result = fmt.Sprintf("Compressed %s to %s", m.input, m.output)
		}
		m.state = stateShowResult
	}

	if m.state == stateEditOptions {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// applyInputs parses every field back into the options record.
func (m *interactiveModel) applyInputs() error {
	for i, input := range m.inputs {
		v, err := strconv.ParseInt(strings.TrimSpace(input.Value()), 10, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", m.fields[i].name, err)
		}
		*m.fields[i].value = int32(v)
	}
	return nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Draco Transcoder"))
	b.WriteString(" ")
	b.WriteString(m.input)
	b.WriteString(" -> ")
	b.WriteString(m.output)
	b.WriteString("\n\n")

	switch m.state {
	case stateEditOptions:
		if m.lib == nil && m.err == nil {
			b.WriteString("Loading transcoder library...\n")
			break
		}
		if m.lib != nil {
			b.WriteString(helpStyle.Render("library: " + m.lib.Path()))
			b.WriteString("\n\n")
		}
		for i, input := range m.inputs {
			b.WriteString(fieldStyle.Render(input.View()))
			b.WriteString(" ")
			b.WriteString(rangeStyle.Render(m.fields[i].hint))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("tab/↑/↓ field • enter transcode • ctrl+c quit"))

	case stateRunning:
		b.WriteString("Transcoding...\n")

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter quit • esc edit options"))
	}

	return b.String()
}

func runInteractive(input, output string, opts dracotranscoder.Options) error {
	p := tea.NewProgram(newInteractiveModel(input, output, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

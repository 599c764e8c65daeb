package main

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/textcodec/utf16x"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	unitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	byteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	subStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// inputMode selects how the textinput line is interpreted.
type inputMode int

const (
	modeText inputMode = iota
	modeUnits
)

type inspectorModel struct {
	input  textinput.Model
	rows   []stepRow
	total  []byte
	errMsg string
	mode   inputMode
	strict bool
	native bool
}

// stepRow is one resolved scan step: the consumed units, their role, the
// resulting code point, and the emitted bytes.
type stepRow struct {
	units string
	role  string
	point string
	bytes string
	sub   bool
}

func newInspectorModel(strict, native bool) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "text to encode"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	return &inspectorModel{
		input:  ti,
		mode:   modeText,
		strict: strict,
		native: native,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			m.encode()
			return m, nil

		case "tab":
			if m.mode == modeText {
				m.mode = modeUnits
				m.input.Placeholder = "code units, e.g. 0xD83D 0xDE00"
			} else {
				m.mode = modeText
				m.input.Placeholder = "text to encode"
			}
			m.rows = nil
			m.total = nil
			m.errMsg = ""
			return m, nil

		case "ctrl+s":
			m.strict = !m.strict
			m.encode()
			return m, nil

		case "ctrl+n":
			m.native = !m.native
			m.encode()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectorModel) encode() {
	m.rows = nil
	m.total = nil
	m.errMsg = ""

	var units []uint16
	if m.mode == modeUnits {
		parsed, err := parseUnits(m.input.Value())
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		units = parsed
	} else {
		units = utf16.Encode([]rune(m.input.Value()))
	}

	var opts []utf16x.Option
	if m.strict {
		opts = append(opts, utf16x.WithStrict())
	}
	if m.native {
		opts = append(opts, utf16x.WithNative(utf16x.Native()))
	}
	m.total = utf16x.NewEncoder(opts...).Encode(units)
	m.rows = breakdown(units, m.strict)
}

// breakdown replays the scan policy step by step for display, encoding
// each resolved step in isolation.
func breakdown(units []uint16, strict bool) []stepRow {
	var opts []utf16x.Option
	if strict {
		opts = append(opts, utf16x.WithStrict())
	}
	enc := utf16x.NewEncoder(opts...)

	isHigh := func(u uint16) bool { return u >= 0xD800 && u < 0xDC00 }
	isLow := func(u uint16) bool { return u >= 0xDC00 && u < 0xE000 }

	var rows []stepRow
	for i := 0; i < len(units); {
		u := units[i]
		switch {
		case isHigh(u) && i+1 < len(units) && isLow(units[i+1]):
			lo := units[i+1]
			point := (uint32(u)-0xD800)<<10 + (uint32(lo) - 0xDC00) + 0x10000
			rows = append(rows, stepRow{
				units: fmt.Sprintf("%04X %04X", u, lo),
				role:  "surrogate pair",
				point: fmt.Sprintf("U+%05X", point),
				bytes: fmt.Sprintf("% X", enc.Encode(units[i:i+2])),
			})
			i += 2

		case isHigh(u):
			rows = append(rows, stepRow{
				units: fmt.Sprintf("%04X", u),
				role:  "unpaired high",
				point: "U+FFFD",
				bytes: fmt.Sprintf("% X", enc.Encode(units[i:i+1])),
				sub:   true,
			})
			i++

		case isLow(u):
			row := stepRow{
				units: fmt.Sprintf("%04X", u),
				role:  "lone low",
				point: fmt.Sprintf("U+%04X", u),
				bytes: fmt.Sprintf("% X", enc.Encode(units[i:i+1])),
			}
			if strict {
				row.point = "U+FFFD"
				row.sub = true
			}
			rows = append(rows, row)
			i++

		default:
			rows = append(rows, stepRow{
				units: fmt.Sprintf("%04X", u),
				role:  "scalar",
				point: fmt.Sprintf("U+%04X", u),
				bytes: fmt.Sprintf("% X", enc.Encode(units[i:i+1])),
			})
			i++
		}
	}
	return rows
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	mode := "text"
	if m.mode == modeUnits {
		mode = "units"
	}
	flags := ""
	if m.strict {
		flags += " strict"
	}
	if m.native {
		flags += " native"
	}
	b.WriteString(titleStyle.Render("UTF-16 → UTF-8 inspector ["+mode+flags+"]") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")

	if m.errMsg != "" {
		b.WriteString(subStyle.Render(m.errMsg) + "\n")
	}

	if len(m.rows) > 0 {
		b.WriteString(fmt.Sprintf("  %-10s %-15s %-8s %s\n", "UNITS", "ROLE", "POINT", "UTF-8"))
		for _, r := range m.rows {
			role := r.role
			if r.sub {
				role = subStyle.Render(role)
			}
			b.WriteString(fmt.Sprintf("  %-10s %-15s %-8s %s\n",
				unitStyle.Render(r.units), role, r.point, byteStyle.Render(r.bytes)))
		}
		b.WriteString("\n" + resultStyle.Render(fmt.Sprintf("%d bytes: % X", len(m.total), m.total)) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter encode · tab text/units · ctrl+s strict · ctrl+n native · esc quit"))
	return b.String()
}

func runInteractive(strict, native bool) error {
	p := tea.NewProgram(newInspectorModel(strict, native))
	_, err := p.Run()
	return err
}

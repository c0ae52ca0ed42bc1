package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Input reads a single line of text.
type Input struct {
	title    string
	desc     string
	value    *string
	secret   bool
	validate func(string) error
	err      error
}

var _ Field = (*Input)(nil)

// NewInput builds a text input field.
func NewInput() *Input {
	return &Input{value: new(string)}
}

// WithTitle sets the title.
func (i *Input) WithTitle(title string) *Input {
	i.title = title
	return i
}

// WithDescription sets the description.
func (i *Input) WithDescription(desc string) *Input {
	i.desc = desc
	return i
}

// WithValue sets the destination for the answer.
// Its current value is the initial text.
func (i *Input) WithValue(value *string) *Input {
	i.value = value
	return i
}

// WithSecret masks the text as it is typed.
func (i *Input) WithSecret() *Input {
	i.secret = true
	return i
}

// WithValidate checks the text before it is accepted.
func (i *Input) WithValidate(validate func(string) error) *Input {
	i.validate = validate
	return i
}

// Value reports the current text.
func (i *Input) Value() string { return *i.value }

// Title implements Field.
func (i *Input) Title() string { return i.title }

// Description implements Field.
func (i *Input) Description() string { return i.desc }

// Err implements Field.
func (i *Input) Err() error { return i.err }

// Init implements Field.
func (i *Input) Init() tea.Cmd { return nil }

// UnmarshalValue accepts a string answer.
func (i *Input) UnmarshalValue(unmarshal func(any) error) error {
	if err := unmarshal(i.value); err != nil {
		return err
	}
	i.check()
	return i.err
}

func (i *Input) check() {
	i.err = nil
	if i.validate != nil {
		i.err = i.validate(*i.value)
	}
}

// Update implements Field.
func (i *Input) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		i.check()
		if i.err != nil {
			return nil
		}
		return AcceptField
	case tea.KeyBackspace:
		if r := []rune(*i.value); len(r) > 0 {
			*i.value = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		*i.value += " "
	case tea.KeyRunes:
		*i.value += string(msg.Runes)
	default:
		return nil
	}

	if i.err != nil {
		i.check()
	}
	return nil
}

// Render implements Field.
func (i *Input) Render(w Writer) {
	if i.secret {
		_, _ = w.WriteString(strings.Repeat("*", len([]rune(*i.value))))
		return
	}
	_, _ = w.WriteString(*i.value)
}

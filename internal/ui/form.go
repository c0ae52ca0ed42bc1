package ui

import (
	"cmp"
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCanceled indicates that the user canceled a prompt.
var ErrCanceled = errors.New("prompt canceled")

type acceptFieldMsg struct{}

// AcceptField is a [tea.Cmd] that accepts the focused field
// and moves to the next one.
func AcceptField() tea.Msg {
	return acceptFieldMsg{}
}

// Writer receives the rendered view of a [Field].
type Writer interface {
	io.Writer
	io.StringWriter
}

// Field is a single field in a form.
type Field interface {
	// Init is called right before the field is first focused.
	Init() tea.Cmd

	// Update handles a key press while the field is focused.
	Update(msg tea.KeyMsg) tea.Cmd

	// Render renders the field's current value.
	Render(Writer)

	// UnmarshalValue sets the field's value without user input.
	// unmarshal behaves like json.Unmarshal:
	// it decodes the answer into the given pointer
	// or fails if the types are incompatible.
	UnmarshalValue(unmarshal func(any) error) error

	// Err reports a validation error.
	// A field must not accept while it has one.
	Err() error

	Title() string
	Description() string
}

// Form presents a series of fields for the user to fill.
type Form struct {
	fields   []Field
	accepted []string
	focused  int
	err      error
}

var _ tea.Model = (*Form)(nil)

// NewForm builds a new form with the given fields.
func NewForm(fields ...Field) *Form {
	return &Form{fields: fields}
}

// FormRunOptions specifies options for [Form.Run].
type FormRunOptions struct {
	Input  io.Reader // defaults to os.Stdin
	Output io.Writer // defaults to os.Stderr

	// WithoutSignals stops the form from handling SIGINT itself.
	WithoutSignals bool
}

// Run runs the form and blocks until it's accepted or canceled.
func (f *Form) Run(opts *FormRunOptions) error {
	opts = cmp.Or(opts, &FormRunOptions{})

	var teaOpts []tea.ProgramOption
	if i := opts.Input; i != nil {
		teaOpts = append(teaOpts, tea.WithInput(i))
	}
	if o := opts.Output; o != nil {
		teaOpts = append(teaOpts, tea.WithOutput(o))
	}
	if opts.WithoutSignals {
		teaOpts = append(teaOpts, tea.WithoutSignals())
	}

	if _, err := tea.NewProgram(f, teaOpts...).Run(); err != nil {
		return err
	}
	return f.Err()
}

// Err reports whether the form was canceled
// or any field is in an error state.
func (f *Form) Err() error {
	errs := []error{f.err}
	for _, field := range f.fields {
		errs = append(errs, field.Err())
	}
	return errors.Join(errs...)
}

// Init implements tea.Model.
func (f *Form) Init() tea.Cmd {
	if len(f.fields) == 0 {
		return tea.Quit
	}
	return f.fields[0].Init()
}

// Update implements tea.Model.
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if f.focused >= len(f.fields) {
		return f, tea.Quit
	}
	field := f.fields[f.focused]

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			f.err = ErrCanceled
			return f, tea.Quit
		}
		return f, field.Update(msg)

	case acceptFieldMsg:
		if field.Err() != nil {
			return f, nil
		}

		var sb strings.Builder
		sb.WriteString(_titleStyle.Render(field.Title()))
		sb.WriteString(": ")
		var value strings.Builder
		field.Render(&value)
		sb.WriteString(_acceptedStyle.Render(value.String()))
		f.accepted = append(f.accepted, sb.String())

		f.focused++
		if f.focused >= len(f.fields) {
			return f, tea.Quit
		}
		return f, f.fields[f.focused].Init()
	}

	return f, nil
}

// View implements tea.Model.
func (f *Form) View() string {
	var sb strings.Builder
	for _, line := range f.accepted {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if f.focused >= len(f.fields) {
		return sb.String()
	}

	field := f.fields[f.focused]
	sb.WriteString(_titleStyle.Render(field.Title()))
	sb.WriteString(": ")
	field.Render(&sb)
	sb.WriteString("\n")
	if desc := field.Description(); desc != "" {
		sb.WriteString(_descriptionStyle.Render(desc))
		sb.WriteString("\n")
	}
	if err := field.Err(); err != nil {
		sb.WriteString(_errorStyle.Render(err.Error()))
		sb.WriteString("\n")
	}
	return sb.String()
}

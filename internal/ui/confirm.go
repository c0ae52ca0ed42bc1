package ui

import tea "github.com/charmbracelet/bubbletea"

// Confirm is a yes or no question.
type Confirm struct {
	title string
	desc  string
	value *bool
}

var _ Field = (*Confirm)(nil)

// NewConfirm builds a confirm field.
func NewConfirm() *Confirm {
	return &Confirm{value: new(bool)}
}

// WithValue sets the destination for the answer.
// Its current value is the default.
func (c *Confirm) WithValue(value *bool) *Confirm {
	c.value = value
	return c
}

// WithTitle sets the question.
func (c *Confirm) WithTitle(title string) *Confirm {
	c.title = title
	return c
}

// WithDescription sets the description.
func (c *Confirm) WithDescription(desc string) *Confirm {
	c.desc = desc
	return c
}

// Value reports the current answer.
func (c *Confirm) Value() bool { return *c.value }

// Title implements Field.
func (c *Confirm) Title() string { return c.title }

// Description implements Field.
func (c *Confirm) Description() string { return c.desc }

// Err implements Field.
func (c *Confirm) Err() error { return nil }

// Init implements Field.
func (c *Confirm) Init() tea.Cmd { return nil }

// UnmarshalValue accepts a bool answer.
func (c *Confirm) UnmarshalValue(unmarshal func(any) error) error {
	return unmarshal(c.value)
}

// Update implements Field.
// y and n answer immediately; enter accepts the default.
func (c *Confirm) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		*c.value = true
		return AcceptField
	case "n", "N":
		*c.value = false
		return AcceptField
	case "enter", "tab":
		return AcceptField
	}
	return nil
}

// Render implements Field.
func (c *Confirm) Render(w Writer) {
	yes, no := "y", "N"
	if *c.value {
		yes, no = "Y", "n"
	}
	_, _ = w.WriteString("[" + _keyStyle.Render(yes) + "/" + _keyStyle.Render(no) + "]")
}

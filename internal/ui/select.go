package ui

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

var errNoMatch = errors.New("no options match the filter")

// filterList is the fuzzy-filtered option list
// shared by [Select] and [MultiSelect].
type filterList struct {
	options []string
	filter  []rune
	matches []fuzzy.Match // in display order
	cursor  int           // index into matches
}

func (l *filterList) refilter() {
	if len(l.filter) == 0 {
		l.matches = l.matches[:0]
		for i, opt := range l.options {
			l.matches = append(l.matches, fuzzy.Match{Str: opt, Index: i})
		}
	} else {
		l.matches = fuzzy.Find(string(l.filter), l.options)
	}
	l.cursor = min(l.cursor, max(len(l.matches)-1, 0))
}

// current returns the index of the option under the cursor.
func (l *filterList) current() (int, bool) {
	if len(l.matches) == 0 {
		return 0, false
	}
	return l.matches[l.cursor].Index, true
}

func (l *filterList) moveTo(option int) {
	for i, m := range l.matches {
		if m.Index == option {
			l.cursor = i
			return
		}
	}
}

// update handles navigation and filtering keys.
// It reports whether the key was consumed.
func (l *filterList) update(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "ctrl+k":
		if l.cursor > 0 {
			l.cursor--
		} else {
			l.cursor = max(len(l.matches)-1, 0)
		}
	case "down", "ctrl+j":
		if l.cursor < len(l.matches)-1 {
			l.cursor++
		} else {
			l.cursor = 0
		}
	case "backspace", "ctrl+h":
		if len(l.filter) > 0 {
			l.filter = l.filter[:len(l.filter)-1]
			l.refilter()
		}
	default:
		if msg.Type != tea.KeyRunes {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				l.filter = append(l.filter, r)
			}
		}
		l.refilter()
	}
	return true
}

func (l *filterList) render(w Writer, marker func(option int) string) {
	if len(l.filter) > 0 {
		_, _ = w.WriteString(string(l.filter))
	}
	for i, m := range l.matches {
		_, _ = w.WriteString("\n")
		if i == l.cursor {
			_, _ = w.WriteString(_cursorStyle.Render("▶ "))
		} else {
			_, _ = w.WriteString("  ")
		}
		if marker != nil {
			_, _ = w.WriteString(marker(m.Index))
		}

		for j, r := range m.Str {
			s := string(r)
			if slices.Contains(m.MatchedIndexes, j) {
				s = _highlightStyle.Render(s)
			}
			_, _ = w.WriteString(s)
		}
	}
}

// Select picks one of a list of strings.
// Typing filters the options with a fuzzy match.
type Select struct {
	title string
	desc  string
	value *string

	list     filterList
	accepted bool
}

var _ Field = (*Select)(nil)

// NewSelect builds a select field.
func NewSelect() *Select {
	return &Select{value: new(string)}
}

// WithTitle sets the title.
func (s *Select) WithTitle(title string) *Select {
	s.title = title
	return s
}

// WithDescription sets the description.
func (s *Select) WithDescription(desc string) *Select {
	s.desc = desc
	return s
}

// WithOptions sets the available options.
func (s *Select) WithOptions(options ...string) *Select {
	s.list.options = options
	s.list.refilter()
	return s
}

// WithValue sets the destination for the answer.
// If its current value is an option, that option is selected at first.
func (s *Select) WithValue(value *string) *Select {
	s.value = value
	return s
}

// Value reports the selected option.
func (s *Select) Value() string { return *s.value }

// Title implements Field.
func (s *Select) Title() string { return s.title }

// Description implements Field.
func (s *Select) Description() string { return s.desc }

// Err implements Field.
func (s *Select) Err() error {
	if len(s.list.matches) == 0 {
		return errNoMatch
	}
	return nil
}

// Init implements Field.
func (s *Select) Init() tea.Cmd {
	if i := slices.Index(s.list.options, *s.value); i >= 0 {
		s.list.moveTo(i)
	}
	return nil
}

// UnmarshalValue accepts the string label of an option.
func (s *Select) UnmarshalValue(unmarshal func(any) error) error {
	var label string
	if err := unmarshal(&label); err != nil {
		return err
	}
	if !slices.Contains(s.list.options, label) {
		return fmt.Errorf("%q is not one of: %v", label, strings.Join(s.list.options, ", "))
	}
	*s.value = label
	return nil
}

// Update implements Field.
func (s *Select) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "tab":
		i, ok := s.list.current()
		if !ok {
			return nil
		}
		*s.value = s.list.options[i]
		s.accepted = true
		return AcceptField
	}
	s.list.update(msg)
	return nil
}

// Render implements Field.
func (s *Select) Render(w Writer) {
	if s.accepted {
		_, _ = w.WriteString(*s.value)
		return
	}
	s.list.render(w, nil)
}

// MultiSelect picks any number of options from a list of strings.
// Space toggles the option under the cursor.
type MultiSelect struct {
	title string
	desc  string
	value *[]string

	list     filterList
	selected map[int]bool
	accepted bool
}

var _ Field = (*MultiSelect)(nil)

// NewMultiSelect builds a multi-select field.
func NewMultiSelect() *MultiSelect {
	return &MultiSelect{
		value:    new([]string),
		selected: make(map[int]bool),
	}
}

// WithTitle sets the title.
func (m *MultiSelect) WithTitle(title string) *MultiSelect {
	m.title = title
	return m
}

// WithDescription sets the description.
func (m *MultiSelect) WithDescription(desc string) *MultiSelect {
	m.desc = desc
	return m
}

// WithOptions sets the available options.
func (m *MultiSelect) WithOptions(options ...string) *MultiSelect {
	m.list.options = options
	m.list.refilter()
	return m
}

// WithValue sets the destination for the answer.
// Options already in it start out selected.
func (m *MultiSelect) WithValue(value *[]string) *MultiSelect {
	m.value = value
	return m
}

// Value reports the selected options in option order.
func (m *MultiSelect) Value() []string { return *m.value }

// Title implements Field.
func (m *MultiSelect) Title() string { return m.title }

// Description implements Field.
func (m *MultiSelect) Description() string { return m.desc }

// Err implements Field.
func (m *MultiSelect) Err() error { return nil }

// Init implements Field.
func (m *MultiSelect) Init() tea.Cmd {
	for i, opt := range m.list.options {
		if slices.Contains(*m.value, opt) {
			m.selected[i] = true
		}
	}
	return nil
}

// UnmarshalValue accepts a list of option labels.
func (m *MultiSelect) UnmarshalValue(unmarshal func(any) error) error {
	var labels []string
	if err := unmarshal(&labels); err != nil {
		return err
	}
	for _, label := range labels {
		if !slices.Contains(m.list.options, label) {
			return fmt.Errorf("%q is not one of: %v", label, strings.Join(m.list.options, ", "))
		}
	}
	*m.value = labels
	return nil
}

// Update implements Field.
func (m *MultiSelect) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case " ":
		if i, ok := m.list.current(); ok {
			m.selected[i] = !m.selected[i]
		}
		return nil
	case "enter", "tab":
		values := make([]string, 0, len(m.selected))
		for i, opt := range m.list.options {
			if m.selected[i] {
				values = append(values, opt)
			}
		}
		*m.value = values
		m.accepted = true
		return AcceptField
	}
	m.list.update(msg)
	return nil
}

// Render implements Field.
func (m *MultiSelect) Render(w Writer) {
	if m.accepted {
		_, _ = w.WriteString(strings.Join(*m.value, ", "))
		return
	}
	m.list.render(w, func(i int) string {
		if m.selected[i] {
			return _keyStyle.Render("[x] ")
		}
		return "[ ] "
	})
}

// Package autocomplete holds the keystroke-driven filtering behavior behind
// the branch combobox, decoupled from any UI toolkit. The caller feeds it the
// text buffer after every change event and renders Visible().
package autocomplete

import (
	"strings"
	"unicode/utf8"
)

// minFilterLen is how many characters must be typed before prefix filtering
// kicks in; shorter buffers always show the full candidate list.
const minFilterLen = 3

type Autocomplete struct {
	candidates []string
	buffer     string
	visible    []string
	index      int
}

func New(candidates []string) *Autocomplete {
	a := &Autocomplete{index: -1}
	a.SetCandidates(candidates)
	return a
}

// SetCandidates replaces the candidate list, uppercasing every entry. The
// typed buffer survives the swap and is re-filtered against the new list.
func (a *Autocomplete) SetCandidates(candidates []string) {
	a.candidates = make([]string, 0, len(candidates))
	for _, c := range candidates {
		a.candidates = append(a.candidates, strings.ToUpper(c))
	}
	a.refilter()
}

// Input registers the current text buffer, forcing it to uppercase, and
// returns the coerced value for the caller to write back into its widget.
func (a *Autocomplete) Input(text string) string {
	a.buffer = strings.ToUpper(text)
	a.refilter()
	return a.buffer
}

func (a *Autocomplete) Buffer() string {
	return a.buffer
}

// Visible is the candidate list the widget should currently display.
func (a *Autocomplete) Visible() []string {
	return a.visible
}

// Next cycles forward through the visible list, wrapping at the end. It
// reports false when there is nothing to select.
func (a *Autocomplete) Next() (string, bool) {
	if len(a.visible) == 0 {
		return "", false
	}
	a.index = (a.index + 1) % len(a.visible)
	return a.visible[a.index], true
}

// Prev cycles backward, wrapping at the start.
func (a *Autocomplete) Prev() (string, bool) {
	if len(a.visible) == 0 {
		return "", false
	}
	a.index = (a.index - 1 + len(a.visible)) % len(a.visible)
	return a.visible[a.index], true
}

func (a *Autocomplete) refilter() {
	a.index = -1

	if utf8.RuneCountInString(a.buffer) < minFilterLen {
		a.visible = a.candidates
		return
	}

	var matches []string
	for _, c := range a.candidates {
		if strings.HasPrefix(c, a.buffer) {
			matches = append(matches, c)
		}
	}

	// No prefix match falls back to the full list rather than an empty box.
	if len(matches) == 0 {
		a.visible = a.candidates
		return
	}
	a.visible = matches
}

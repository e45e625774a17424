package autocomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiltering(t *testing.T) {
	candidates := []string{"LAPTOP", "LAPTOP-15", "DESKTOP"}

	tests := []struct {
		name    string
		input   string
		visible []string
	}{
		{
			name:    "short input shows full list",
			input:   "la",
			visible: []string{"LAPTOP", "LAPTOP-15", "DESKTOP"},
		},
		{
			name:    "three characters filter by prefix",
			input:   "lap",
			visible: []string{"LAPTOP", "LAPTOP-15"},
		},
		{
			name:    "uppercase input filters the same",
			input:   "LAP",
			visible: []string{"LAPTOP", "LAPTOP-15"},
		},
		{
			name:    "no match falls back to full list",
			input:   "xyz",
			visible: []string{"LAPTOP", "LAPTOP-15", "DESKTOP"},
		},
		{
			name:    "empty input shows full list",
			input:   "",
			visible: []string{"LAPTOP", "LAPTOP-15", "DESKTOP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(candidates)
			a.Input(tt.input)
			assert.Equal(t, tt.visible, a.Visible())
		})
	}
}

func TestFilterThresholdCountsRunesNotBytes(t *testing.T) {
	candidates := []string{"ÜBERGERÄT", "LAPTOP"}

	tests := []struct {
		name    string
		input   string
		visible []string
	}{
		{
			name:    "two runes of multibyte text show full list",
			input:   "üb",
			visible: []string{"ÜBERGERÄT", "LAPTOP"},
		},
		{
			name:    "three runes of multibyte text filter by prefix",
			input:   "übe",
			visible: []string{"ÜBERGERÄT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(candidates)
			a.Input(tt.input)
			assert.Equal(t, tt.visible, a.Visible())
		})
	}
}

func TestInputForcesUppercase(t *testing.T) {
	a := New([]string{"MANILA"})
	assert.Equal(t, "MAN", a.Input("man"))
	assert.Equal(t, "MAN", a.Buffer())
}

func TestCandidatesAreUppercasedOnLoad(t *testing.T) {
	a := New([]string{"manila", "Cebu"})
	assert.Equal(t, []string{"MANILA", "CEBU"}, a.Visible())
}

func TestSetCandidatesKeepsBuffer(t *testing.T) {
	a := New([]string{"LAPTOP", "DESKTOP"})
	a.Input("lap")
	assert.Equal(t, []string{"LAPTOP"}, a.Visible())

	a.SetCandidates([]string{"laptop-15", "tablet"})
	assert.Equal(t, "LAP", a.Buffer())
	assert.Equal(t, []string{"LAPTOP-15"}, a.Visible())
}

func TestNavigationCyclesWithWraparound(t *testing.T) {
	a := New([]string{"LAPTOP", "LAPTOP-15", "DESKTOP"})

	first, ok := a.Next()
	assert.True(t, ok)
	assert.Equal(t, "LAPTOP", first)

	second, _ := a.Next()
	assert.Equal(t, "LAPTOP-15", second)

	third, _ := a.Next()
	assert.Equal(t, "DESKTOP", third)

	wrapped, _ := a.Next()
	assert.Equal(t, "LAPTOP", wrapped)

	back, _ := a.Prev()
	assert.Equal(t, "DESKTOP", back)
}

func TestPrevFromFreshStateWraps(t *testing.T) {
	a := New([]string{"A1", "B2", "C3"})

	// Matches the widget behavior: first Prev lands one before the start.
	selected, ok := a.Prev()
	assert.True(t, ok)
	assert.Equal(t, "B2", selected)
}

func TestNavigationOnEmptyListIsNoop(t *testing.T) {
	a := New(nil)

	_, ok := a.Next()
	assert.False(t, ok)
	_, ok = a.Prev()
	assert.False(t, ok)
}

func TestTypingResetsNavigation(t *testing.T) {
	a := New([]string{"LAPTOP", "LAPTOP-15"})
	a.Next()
	a.Next()

	a.Input("lap")
	selected, _ := a.Next()
	assert.Equal(t, "LAPTOP", selected)
}

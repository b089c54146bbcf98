package ui

import (
	"reflect"
	"testing"
	"time"
)

func TestTagsToggleAndBackspace(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "tab")

	m, _ = press(t, m, "b", "a", "n")
	if !reflect.DeepEqual(m.tags.matches, []int{1}) {
		t.Fatalf("expected banana only, got %v", m.tags.matches)
	}
	m, _ = press(t, m, "enter")
	if !m.tags.set.Has("banana") || m.tags.input.Value() != "" {
		t.Fatalf("enter should add banana and clear the input")
	}

	m, _ = press(t, m, "down", "down", "enter") // cherry
	if got := m.tags.set.Values(); !reflect.DeepEqual(got, []string{"banana", "cherry"}) {
		t.Fatalf("unexpected tags %v", got)
	}

	m, _ = press(t, m, "up", "enter") // banana again toggles off
	if m.tags.set.Has("banana") {
		t.Fatalf("second enter should remove banana")
	}

	m, _ = press(t, m, "backspace")
	if m.tags.set.Len() != 0 {
		t.Fatalf("backspace on empty input should drop the last tag")
	}
}

func TestAutocompletePickSkipsDisabled(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "tab", "tab")
	if m.focus != widgetAutocomplete {
		t.Fatalf("expected autocomplete focus")
	}

	m, _ = press(t, m, "down") // Banana is disabled, lands on Dog
	if m.ac.cursor != 2 {
		t.Fatalf("expected cursor on Dog, got %d", m.ac.cursor)
	}
	m, _ = press(t, m, "enter")
	if m.ac.selected == nil || m.ac.selected.Value != "d" {
		t.Fatalf("expected Dog picked, got %+v", m.ac.selected)
	}
	if m.Result().Autocomplete != "d" {
		t.Fatalf("result should carry the picked value")
	}

	m, _ = press(t, m, "esc")
	if m.ac.selected != nil || m.ac.input.Value() != "" {
		t.Fatalf("esc should clear the pick")
	}
}

func TestAutocompleteSearchesSecondaryText(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "tab", "tab", "a", "n", "i", "m")
	if !reflect.DeepEqual(m.ac.matches, []int{2}) {
		t.Fatalf("expected Dog via secondary text, got %v", m.ac.matches)
	}
}

func TestRangePicking(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "shift+tab")
	if m.focus != widgetRange {
		t.Fatalf("expected range focus")
	}
	// cursor starts on today, 15/10/2025
	m, _ = press(t, m, " ", "j", "l", "l", " ")
	r := m.Result().Range
	if r.Start != "2025-10-15" || r.End != "2025-10-24" || r.Days != 10 {
		t.Fatalf("unexpected range %+v", r)
	}

	m, _ = press(t, m, "]")
	if m.dates.month.Month() != time.November || m.dates.cursor.Day() != 1 {
		t.Fatalf("] should show the next month from its first day")
	}
	m, _ = press(t, m, "t")
	if m.dates.month.Month() != time.October || m.dates.cursor.Day() != 15 {
		t.Fatalf("t should jump back to today")
	}

	m, _ = press(t, m, "c")
	if m.dates.value.Start != nil {
		t.Fatalf("c should clear the range")
	}
}

func TestRangeCursorCrossesMonth(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "shift+tab", "j", "j", "j")
	if m.dates.month.Month() != time.November || m.dates.cursor.Day() != 5 {
		t.Fatalf("month should follow the cursor, got %v", m.dates.cursor)
	}
}

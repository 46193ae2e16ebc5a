package markup

import "testing"

func TestToggleBoldWrap(t *testing.T) {
	text, start, end := ToggleBold("Hello world", 6, 11)

	if text != "Hello **world**" {
		t.Errorf("expected 'Hello **world**', got %q", text)
	}
	if start != 6 || end != 15 {
		t.Errorf("expected selection [6:15), got [%d:%d)", start, end)
	}
}

func TestToggleBoldUnwrap(t *testing.T) {
	text, start, end := ToggleBold("Hello **world**", 6, 15)

	if text != "Hello world" {
		t.Errorf("expected 'Hello world', got %q", text)
	}
	if start != 6 || end != 11 {
		t.Errorf("expected selection [6:11), got [%d:%d)", start, end)
	}
}

func TestToggleInlineRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start ByteOffset
		end   ByteOffset
		tag   Tag
	}{
		{"bold", "Hello world", 6, 11, TagBold},
		{"italic", "Hello world", 6, 11, TagItalic},
		{"underline", "Hello world", 0, 5, TagUnderline},
		{"strike", "Hello world", 0, 11, TagStrike},
		{"mid word", "abcdef", 2, 4, TagBold},
		{"multiline", "one\ntwo\nthree", 4, 7, TagItalic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text1, s1, e1 := ToggleInline(tt.text, tt.start, tt.end, tt.tag)
			text2, s2, e2 := ToggleInline(text1, s1, e1, tt.tag)

			if text2 != tt.text {
				t.Errorf("round trip changed text: %q -> %q -> %q", tt.text, text1, text2)
			}
			if s2 != tt.start || e2 != tt.end {
				t.Errorf("round trip changed selection: [%d:%d) -> [%d:%d)",
					tt.start, tt.end, s2, e2)
			}
		})
	}
}

func TestToggleInlineEmptySelection(t *testing.T) {
	text, start, end := ToggleBold("Hello", 5, 5)

	if text != "Hello****" {
		t.Errorf("expected 'Hello****', got %q", text)
	}
	// Cursor sits between the delimiter pair, ready for typing.
	if start != 7 || end != 7 {
		t.Errorf("expected cursor at 7, got [%d:%d)", start, end)
	}
}

func TestToggleUnderlineAsymmetricDelimiters(t *testing.T) {
	text, start, end := ToggleUnderline("note", 0, 4)

	if text != "<u>note</u>" {
		t.Errorf("expected '<u>note</u>', got %q", text)
	}
	if start != 0 || end != 11 {
		t.Errorf("expected selection [0:11), got [%d:%d)", start, end)
	}

	text, start, end = ToggleUnderline(text, start, end)
	if text != "note" || start != 0 || end != 4 {
		t.Errorf("unwrap failed: %q [%d:%d)", text, start, end)
	}
}

func TestToggleInlineSelectionNotOnDelimiters(t *testing.T) {
	// The selection covers only the inner content, not the delimiters,
	// so the toggle wraps again instead of unwrapping.
	text, start, end := ToggleBold("Hello **world**", 8, 13)

	if text != "Hello ****world****" {
		t.Errorf("expected double wrap, got %q", text)
	}
	if start != 8 || end != 17 {
		t.Errorf("expected selection [8:17), got [%d:%d)", start, end)
	}
}

func TestToggleInlineClampsOffsets(t *testing.T) {
	text, start, end := ToggleBold("Hello", 2, 100)

	if text != "He**llo**" {
		t.Errorf("expected 'He**llo**', got %q", text)
	}
	if start != 2 || end != 9 {
		t.Errorf("expected selection [2:9), got [%d:%d)", start, end)
	}
}

func TestToggleInlineSwapsInvertedRange(t *testing.T) {
	text, start, end := ToggleBold("Hello world", 11, 6)

	if text != "Hello **world**" {
		t.Errorf("expected 'Hello **world**', got %q", text)
	}
	if start != 6 || end != 15 {
		t.Errorf("expected selection [6:15), got [%d:%d)", start, end)
	}
}

func TestToggleInlineNegativeOffsets(t *testing.T) {
	text, start, end := ToggleBold("Hi", -5, -1)

	if text != "****Hi" {
		t.Errorf("expected '****Hi', got %q", text)
	}
	if start != 2 || end != 2 {
		t.Errorf("expected cursor at 2, got [%d:%d)", start, end)
	}
}

func TestToggleStrikethrough(t *testing.T) {
	text, start, end := ToggleStrikethrough("done", 0, 4)

	if text != "~~done~~" {
		t.Errorf("expected '~~done~~', got %q", text)
	}
	if start != 0 || end != 8 {
		t.Errorf("expected selection [0:8), got [%d:%d)", start, end)
	}
}

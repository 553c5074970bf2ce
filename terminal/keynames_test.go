package terminal

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyLeft, "left"},
		{KeyRight, "right"},
		{KeyPageDown, "page_down"},
		{KeyCtrlA, "ctrl_a"},
		{KeyCtrlC, "ctrl_c"},
		{KeyCtrlZ, "ctrl_z"},
		{KeyF1, "f1"},
		{KeyF12, "f12"},
		{KeyCtrlUnderscore, "ctrl_underscore"},
		{KeyRune, "rune"},
		{KeyNone, "none"},
		{Key(999), "none"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestKeyStringCoversDecodedKeys(t *testing.T) {
	for k := KeyRune; k <= KeyCtrlUnderscore; k++ {
		if k.String() == "none" {
			t.Errorf("Expected a name for key %d", k)
		}
	}
}

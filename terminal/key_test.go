package terminal

import "testing"

func TestLookupCSI(t *testing.T) {
	tests := []struct {
		seq string
		key Key
		mod Modifier
		ok  bool
	}{
		{"A", KeyUp, ModNone, true},
		{"D", KeyLeft, ModNone, true},
		{"1;2C", KeyRight, ModShift, true},
		{"1;3D", KeyLeft, ModAlt, true},
		{"1;5C", KeyRight, ModCtrl, true},
		{"1;8A", KeyUp, ModShift | ModAlt | ModCtrl, true},
		{"Z", KeyBacktab, ModShift, true},
		{"H", KeyHome, ModNone, true},
		{"1~", KeyHome, ModNone, true},
		{"3;5~", KeyDelete, ModCtrl, true},
		{"6~", KeyPageDown, ModNone, true},
		{"1;2P", KeyF1, ModShift, true},
		{"15~", KeyF5, ModNone, true},
		{"24;6~", KeyF12, ModShift | ModCtrl, true},
		{"[A", KeyF1, ModNone, true},
		{"[E", KeyF5, ModNone, true},
		{"99z", KeyNone, ModNone, false},
		{"16~", KeyNone, ModNone, false},
		{"2;5C", KeyNone, ModNone, false},
		{"1;9C", KeyNone, ModNone, false},
		{"1;2;3C", KeyNone, ModNone, false},
		{"[F", KeyNone, ModNone, false},
		{"", KeyNone, ModNone, false},
	}
	for _, tt := range tests {
		key, mod, ok := lookupCSI([]byte(tt.seq))
		if key != tt.key || mod != tt.mod || ok != tt.ok {
			t.Errorf("lookupCSI(%q) = %v, %d, %v; expected %v, %d, %v",
				tt.seq, key, mod, ok, tt.key, tt.mod, tt.ok)
		}
	}
}

func TestLookupSS3(t *testing.T) {
	if key, _, ok := lookupSS3([]byte("C")); !ok || key != KeyRight {
		t.Errorf("Expected right arrow, got %v (ok=%v)", key, ok)
	}
	if key, _, ok := lookupSS3([]byte("M")); !ok || key != KeyEnter {
		t.Errorf("Expected keypad enter, got %v (ok=%v)", key, ok)
	}
	if _, _, ok := lookupSS3([]byte("x")); ok {
		t.Error("Expected unknown SS3 to fail")
	}
}

package tui

import (
	"reflect"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "hello world", 20, []string{"hello world"}},
		{"break at space", "hello world", 7, []string{"hello", "world"}},
		{"exact width", "aaa bbb", 3, []string{"aaa", "bbb"}},
		{"hard break", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"hard break after word", "hi abcdefgh", 4, []string{"hi", "abcd", "efgh"}},
		{"leading indent kept", "  item one", 6, []string{"  item", "one"}},
		{"empty line", "", 5, []string{""}},
		{"newline", "a\nb", 5, []string{"a", "b"}},
		{"wide runes", "日本語", 4, []string{"日本", "語"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.in, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText(%q, %d) = %q, expected %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapLineRowsFitWidth(t *testing.T) {
	text := "The quick brown fox jumps over the extraordinarily lazy dog again and again"
	for width := 1; width <= 30; width++ {
		for _, row := range WrapText(text, width) {
			if DisplayWidth(row) > width {
				t.Errorf("width %d: row %q is %d columns", width, row, DisplayWidth(row))
			}
		}
	}
}

func TestWrapLineZeroWidth(t *testing.T) {
	if rows := WrapLine(Line{{Text: "x"}}, 0); rows != nil {
		t.Errorf("Expected nil for zero width, got %v", rows)
	}
}

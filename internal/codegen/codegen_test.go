package codegen

import "testing"

func TestFileLines(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"one", 1},
		{"one\n", 1},
		{"one\ntwo\nthree\n", 3},
		{"one\n\nthree", 3},
	}
	for _, tt := range tests {
		if got := (File{Content: tt.content}).Lines(); got != tt.want {
			t.Errorf("Lines(%q) = %d, want %d", tt.content, got, tt.want)
		}
	}
}

package language

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"english", "Neural networks are a set of algorithms that recognize patterns.", "en"},
		{"chinese", "链表是一种常见的线性数据结构，由一系列节点组成。", "zh"},
		{"empty", "", "en"},
		{"whitespace", "   \n\t  ", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

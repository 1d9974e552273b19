package utils

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// 每个字符宽 10 像素
func fixedWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s) * 10)
}

// TestWrapWords 测试按单词换行
func TestWrapWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{"短文本不换行", "HD streaming", 200, []string{"HD streaming"}},
		{"按空格换行", "Early access to new content", 100, []string{"Early", "access to", "new", "content"}},
		{"长单词强制断行", "behind-the-scenes", 50, []string{"behin", "d-the", "-scen", "es"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapWords(tt.input, tt.maxWidth, fixedWidth)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("wrapWords mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestWrapTextWithoutFont 无字体时原样返回
func TestWrapTextWithoutFont(t *testing.T) {
	got := WrapText("Stream.Binge.Repeat", nil, 10)
	if len(got) != 1 || got[0] != "Stream.Binge.Repeat" {
		t.Errorf("WrapText without font = %v", got)
	}
}

// TestLoadFace 内置字体可以解析
func TestLoadFace(t *testing.T) {
	regular, err := LoadFace(16, false)
	if err != nil {
		t.Fatalf("LoadFace(regular) error: %v", err)
	}
	bold, err := LoadFace(40, true)
	if err != nil {
		t.Fatalf("LoadFace(bold) error: %v", err)
	}
	if regular.Source == bold.Source {
		t.Error("regular and bold faces should use different sources")
	}
	if bold.Size != 40 {
		t.Errorf("bold size = %v, want 40", bold.Size)
	}
}

package utils

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce    sync.Once
	regularFace *text.GoTextFaceSource
	boldFace    *text.GoTextFaceSource
	fontErr     error
)

// loadFontSources 解析内置的 Go 字体，只解析一次
func loadFontSources() error {
	fontOnce.Do(func() {
		regularFace, fontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if fontErr != nil {
			fontErr = fmt.Errorf("failed to parse regular font: %w", fontErr)
			return
		}
		boldFace, fontErr = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if fontErr != nil {
			fontErr = fmt.Errorf("failed to parse bold font: %w", fontErr)
		}
	})
	return fontErr
}

// LoadFace 创建指定字号的字体
// 参数:
//   - size: 字号（像素）
//   - bold: 是否粗体
func LoadFace(size float64, bold bool) (*text.GoTextFace, error) {
	if err := loadFontSources(); err != nil {
		return nil, err
	}
	src := regularFace
	if bold {
		src = boldFace
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// MustLoadFace 与 LoadFace 相同，内置字体解析失败时 panic
func MustLoadFace(size float64, bold bool) *text.GoTextFace {
	face, err := LoadFace(size, bold)
	if err != nil {
		panic(err)
	}
	return face
}

// DrawCenteredText 以 cx 为水平中心、y 为顶部绘制一行文字
func DrawCenteredText(dst *ebiten.Image, s string, face *text.GoTextFace, cx, y float64, clr color.Color) {
	if dst == nil || face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// DrawText 以 (x, y) 为左上角绘制一行文字
func DrawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	if dst == nil || face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 如果单词太长超过最大宽度，强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	return wrapWords(textStr, maxWidth, func(s string) float64 {
		w, _ := text.Measure(s, font, 0)
		return w
	})
}

// wrapWords 按单词换行，measure 返回一段文字的宽度
func wrapWords(textStr string, maxWidth float64, measure func(string) float64) []string {
	if measure(textStr) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		// 单词本身超宽：按字符强制断行
		current = ""
		for len(word) > 0 {
			r, size := utf8.DecodeRuneInString(word)
			if current != "" && measure(current+string(r)) > maxWidth {
				lines = append(lines, current)
				current = ""
			}
			current += string(r)
			word = word[size:]
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{textStr}
	}
	return lines
}

// Package widths 提供终端显示宽度度量（对齐专用）。
package widths

import (
	"regexp"

	"github.com/mattn/go-runewidth"

	"splitby/internal/decode"
)

// ANSI CSI 序列在度量前剥离；着色不占据终端列。
var ansiStrip = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Display 返回文本的终端显示宽度（宽字符/组合字符感知），
// 按宽容 UTF-8 解码并剥离 ANSI CSI 序列后度量，绝不按字节长度。
func Display(text string) int {
	stripped := ansiStrip.ReplaceAllString(text, "")
	return runewidth.StringWidth(stripped)
}

// DisplayBytes 同 Display，输入为原始字节。
func DisplayBytes(b []byte) int {
	text, _ := decode.UTF8(b, false)
	return Display(text)
}

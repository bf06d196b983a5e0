package widths

import "testing"

// UT-WID-01: ASCII 宽度按列计
func TestDisplayASCII(t *testing.T) {
	if got := Display("test"); got != 4 {
		t.Fatalf("宽度应为 4, got %d", got)
	}
	if got := Display(""); got != 0 {
		t.Fatalf("空串宽度应为 0, got %d", got)
	}
}

// UT-WID-02: 宽字符占两列
func TestDisplayWide(t *testing.T) {
	if got := Display("宽字"); got != 4 {
		t.Fatalf("两个全宽字符应为 4 列, got %d", got)
	}
}

// UT-WID-03: ANSI CSI 序列不占列
func TestDisplayANSIStripped(t *testing.T) {
	if got := Display("\x1b[31mred\x1b[0m"); got != 3 {
		t.Fatalf("着色文本应为 3 列, got %d", got)
	}
}

// UT-WID-04: 原始字节度量走宽容解码
func TestDisplayBytes(t *testing.T) {
	// 非法字节解码为 U+FFFD (单列)
	if got := DisplayBytes([]byte{'a', 0xff, 'b'}); got != 3 {
		t.Fatalf("应为 3 列, got %d", got)
	}
}

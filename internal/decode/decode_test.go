package decode

import (
	"errors"
	"testing"

	"splitby/pkg/contract"
)

// UT-DEC-01: 合法输入原样返回
func TestUTF8Valid(t *testing.T) {
	got, err := UTF8([]byte("宽hi"), true)
	if err != nil || got != "宽hi" {
		t.Fatalf("合法输入应原样: %q err=%v", got, err)
	}
}

// UT-DEC-02: 严格模式下非法序列报错
func TestUTF8Strict(t *testing.T) {
	_, err := UTF8([]byte{0xff, 0xfe}, true)
	if !errors.Is(err, contract.ErrUTF8) {
		t.Fatalf("应报编码错误, got %v", err)
	}
}

// UT-DEC-03: 宽容模式每个非法序列替换为一个 U+FFFD
func TestUTF8Lenient(t *testing.T) {
	// 0xff 与 0xfe 均非合法首字节，各为一个非法序列
	got, err := UTF8([]byte{'a', 0xff, 0xfe, 'b'}, false)
	if err != nil {
		t.Fatalf("宽容模式不应报错: %v", err)
	}
	if got != "a��b" {
		t.Fatalf("替换不符: %q", got)
	}
}

// UT-DEC-04: 截断的多字节序列整体替换为一个 U+FFFD
func TestUTF8Truncated(t *testing.T) {
	// "宽" 的前两个字节是一个最大子部
	got, err := UTF8([]byte{0xe5, 0xae}, false)
	if err != nil {
		t.Fatalf("宽容模式不应报错: %v", err)
	}
	if got != "�" {
		t.Fatalf("截断序列应整体替换: %q", got)
	}
}

// UT-DEC-05: 被后续文本打断的多字节序列只产生一个 U+FFFD
func TestUTF8InterruptedSequence(t *testing.T) {
	got, err := UTF8([]byte{'a', 0xe2, 0x82, 'b'}, false)
	if err != nil {
		t.Fatalf("宽容模式不应报错: %v", err)
	}
	if got != "a�b" {
		t.Fatalf("最大子部应替换为单个 U+FFFD: %q", got)
	}
	if n := len([]rune(got)); n != 3 {
		t.Fatalf("字符数应为 3, got %d", n)
	}
}

// UT-DEC-06: 首继续字节越界时只消耗首字节
func TestUTF8BadContinuation(t *testing.T) {
	// 0xe0 要求第二字节在 A0-BF, 0x80 越界
	got, err := UTF8([]byte{0xe0, 0x80, 0x80}, false)
	if err != nil {
		t.Fatalf("宽容模式不应报错: %v", err)
	}
	if got != "���" {
		t.Fatalf("越界继续字节应各自替换: %q", got)
	}
}

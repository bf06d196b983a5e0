package charsplit

import (
	"errors"
	"testing"

	"splitby/pkg/contract"
)

// UT-CSP-01: 组合字符并入同一字素簇
func TestSplitGraphemes(t *testing.T) {
	s := New(nil)
	// "e" + 组合重音 é 为单个字素
	seq, err := s.Split([]byte("aéb"))
	if err != nil {
		t.Fatalf("切分失败: %v", err)
	}
	if seq.Len() != 3 {
		t.Fatalf("应为 3 个字素, got %d", seq.Len())
	}
	if seq.UnitText(1) != "é" {
		t.Fatalf("组合字素不符: %q", seq.UnitText(1))
	}
}

// UT-CSP-02: 多字节字符的区间按字节偏移
func TestSplitMultibyteOffsets(t *testing.T) {
	s := New(nil)
	seq, _ := s.Split([]byte("宽a字"))
	if seq.Len() != 3 {
		t.Fatalf("应为 3 个字素, got %d", seq.Len())
	}
	if seq.UnitText(0) != "宽" || seq.UnitText(1) != "a" || seq.UnitText(2) != "字" {
		t.Fatalf("字素不符: %q %q %q", seq.UnitText(0), seq.UnitText(1), seq.UnitText(2))
	}
}

// UT-CSP-03: 严格 UTF-8 报错, 宽容替换
func TestSplitStrictUTF8(t *testing.T) {
	s := New(&Options{StrictUTF8: true})
	_, err := s.Split([]byte{0xff})
	if !errors.Is(err, contract.ErrUTF8) {
		t.Fatalf("应报编码错误, got %v", err)
	}
	s = New(nil)
	seq, err := s.Split([]byte{0xff})
	if err != nil || seq.Len() != 1 || seq.UnitText(0) != "�" {
		t.Fatalf("宽容模式应得替换符: %v err=%v", seq, err)
	}
}

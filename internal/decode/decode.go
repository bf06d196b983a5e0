// Package decode 提供记录字节到文本的 UTF-8 解码。
package decode

import (
	"unicode/utf8"

	"splitby/pkg/contract"
)

// UTF8 将记录字节解码为文本。
// strict 时非法序列返回 ErrUTF8；否则每个非法序列以单个 U+FFFD 宽容替换。
func UTF8(b []byte, strict bool) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	if strict {
		return "", contract.ErrUTF8
	}
	var out []byte
	out = make([]byte, 0, len(b)+3)
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			out = utf8.AppendRune(out, utf8.RuneError)
			size = invalidLen(b[i:])
		} else {
			out = append(out, b[i:i+size]...)
		}
		i += size
	}
	return string(out), nil
}

// invalidLen 返回非法序列的最大子部长度（1..3），即首字节加上
// 符合该首字节约束的连续字节数。对应 WHATWG 解码算法的替换单位。
func invalidLen(b []byte) int {
	c := b[0]
	var want int
	var lo, hi byte
	switch {
	case c >= 0xc2 && c <= 0xdf:
		want, lo, hi = 2, 0x80, 0xbf
	case c == 0xe0:
		want, lo, hi = 3, 0xa0, 0xbf
	case c >= 0xe1 && c <= 0xec:
		want, lo, hi = 3, 0x80, 0xbf
	case c == 0xed:
		want, lo, hi = 3, 0x80, 0x9f
	case c >= 0xee && c <= 0xef:
		want, lo, hi = 3, 0x80, 0xbf
	case c == 0xf0:
		want, lo, hi = 4, 0x90, 0xbf
	case c >= 0xf1 && c <= 0xf3:
		want, lo, hi = 4, 0x80, 0xbf
	case c == 0xf4:
		want, lo, hi = 4, 0x80, 0x8f
	default:
		return 1
	}
	if len(b) < 2 || b[1] < lo || b[1] > hi {
		return 1
	}
	n := 2
	for n < want && n < len(b) && b[n] >= 0x80 && b[n] <= 0xbf {
		n++
	}
	return n
}

// Package fancy 基于回溯引擎（regexp2）实现分隔符 Matcher。
// 仅当 RE2 拒绝模式（环视、反向引用等）时作为兜底；回溯可能超时，
// 因此扫描允许中途失败，以 ErrMatcher 上抛为记录级硬错误。
package fancy

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"

	"splitby/pkg/contract"
)

// Options 为回溯 Matcher 的可选配置（最小必要）。
type Options struct {
	// MatchTimeout: 单条记录扫描的回溯超时。<=0 采用默认 1s。
	MatchTimeout time.Duration
}

// Matcher 包装一个已编译的回溯正则。
type Matcher struct {
	re *regexp2.Regexp
}

// Compile 编译模式并设置回溯超时。
func Compile(pattern string, opts *Options) (*Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("failed to compile regex: %w", err)
	}
	timeout := time.Second
	if opts != nil && opts.MatchTimeout > 0 {
		timeout = opts.MatchTimeout
	}
	re.MatchTimeout = timeout
	return &Matcher{re: re}, nil
}

// FindSpans 产出全部不重叠匹配区间；回溯超时等扫描失败以 ErrMatcher 包装。
// regexp2 以 rune 下标计偏移，此处换算回字节偏移。
func (m *Matcher) FindSpans(text string) ([]contract.Span, error) {
	runes := []rune(text)
	// rune 下标 → 字节偏移 前缀表。
	byteAt := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		byteAt[i] = off
		off += runeLen(r)
	}
	byteAt[len(runes)] = off

	var spans []contract.Span
	match, err := m.re.FindRunesMatch(runes)
	for match != nil && err == nil {
		start := match.Index
		end := start + match.Length
		spans = append(spans, contract.Span{Start: byteAt[start], End: byteAt[end]})
		match, err = m.re.FindNextMatch(match)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contract.ErrMatcher, err)
	}
	return spans, nil
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}

// Package simple 基于标准库 RE2 引擎实现分隔符 Matcher。
// 线性时间匹配，不会中途失败；无法编译的模式（回溯语法）由 fancy 引擎兜底。
package simple

import (
	"regexp"

	"splitby/pkg/contract"
)

// Matcher 包装一个已编译的 RE2 正则。
type Matcher struct {
	re *regexp.Regexp
}

// Compile 编译模式；模式须已按字面/正则语义处理（字面分隔符先行转义）。
func Compile(pattern string) (*Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Matcher{re: re}, nil
}

// Pattern 返回源模式（用于容量估算）。
func (m *Matcher) Pattern() string { return m.re.String() }

// FindSpans 产出全部不重叠匹配区间，自左向右。
func (m *Matcher) FindSpans(text string) ([]contract.Span, error) {
	locs := m.re.FindAllStringIndex(text, -1)
	spans := make([]contract.Span, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, contract.Span{Start: loc[0], End: loc[1]})
	}
	return spans, nil
}

// Package fieldsplit 实现 Fields 模式的单元抽取：
// 由 Matcher 产出分隔符区间，区间之间/之后为字段，字段携带尾随分隔符。
package fieldsplit

import (
	"splitby/internal/decode"
	"splitby/pkg/contract"
)

// Options 为字段切分器的配置。
type Options struct {
	// Matcher: 必需，产出有序不重叠的分隔符区间。
	Matcher contract.Matcher
	// InputMode: 整串模式下，仅由终端分隔符产生的尾部空字段被丢弃。
	InputMode contract.InputMode
	// SkipEmpty: 在计数与选择之前移除所有空文本单元。
	SkipEmpty bool
	// StrictUTF8: 非法编码报错而非宽容替换。
	StrictUTF8 bool
}

// Splitter 按分隔符切分字段。
type Splitter struct {
	matcher    contract.Matcher
	inputMode  contract.InputMode
	skipEmpty  bool
	strictUTF8 bool
}

// New 创建字段切分器。Matcher 为 nil 时由上层装配保证不可达。
func New(opts *Options) *Splitter {
	s := &Splitter{}
	if opts != nil {
		s.matcher = opts.Matcher
		s.inputMode = opts.InputMode
		s.skipEmpty = opts.SkipEmpty
		s.strictUTF8 = opts.StrictUTF8
	}
	return s
}

// Split 解码并切出字段/分隔符单元对。
// 规则：
// - 最后一个字段的分隔符为空；
// - 整串模式下，终端分隔符之后的空尾字段不计入；
// - SkipEmpty 在计数/选择之前过滤空字段。
func (s *Splitter) Split(record []byte) (contract.UnitSeq, error) {
	text, err := decode.UTF8(record, s.strictUTF8)
	if err != nil {
		return contract.UnitSeq{}, err
	}

	spans, err := s.matcher.FindSpans(text)
	if err != nil {
		return contract.UnitSeq{}, err
	}

	units := make([]contract.Unit, 0, len(spans)+1)
	cursor := 0
	for _, d := range spans {
		units = append(units, contract.Unit{
			Text:  contract.Span{Start: cursor, End: d.Start},
			Delim: d,
		})
		cursor = d.End
	}

	// 尾字段：整串模式下由终端分隔符产生的空尾字段丢弃。
	if cursor < len(text) || s.inputMode != contract.WholeString {
		units = append(units, contract.Unit{
			Text:  contract.Span{Start: cursor, End: len(text)},
			Delim: contract.Span{Start: len(text), End: len(text)},
		})
	}

	if s.skipEmpty {
		kept := units[:0]
		for _, u := range units {
			if u.Text.End > u.Text.Start {
				kept = append(kept, u)
			}
		}
		units = kept
	}

	return contract.UnitSeq{Text: text, Units: units}, nil
}

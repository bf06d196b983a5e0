// Package charsplit 实现 Chars 模式的单元抽取：每个扩展字素簇一个单元。
package charsplit

import (
	"github.com/rivo/uniseg"

	"splitby/internal/decode"
	"splitby/pkg/contract"
)

// Options 为字素切分器的可选配置（最小必要）。
type Options struct {
	// StrictUTF8: 非法编码报错而非宽容替换。
	StrictUTF8 bool
}

// Splitter 按扩展字素簇切分。
type Splitter struct {
	strictUTF8 bool
}

// New 创建字素切分器。
func New(opts *Options) *Splitter {
	s := &Splitter{}
	if opts != nil {
		s.strictUTF8 = opts.StrictUTF8
	}
	return s
}

// Split 解码后按扩展字素簇产出单元；无分隔符语义。
func (s *Splitter) Split(record []byte) (contract.UnitSeq, error) {
	text, err := decode.UTF8(record, s.strictUTF8)
	if err != nil {
		return contract.UnitSeq{}, err
	}
	var units []contract.Unit
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		from, to := gr.Positions()
		units = append(units, contract.Unit{Text: contract.Span{Start: from, End: to}})
	}
	return contract.UnitSeq{Text: text, Units: units}, nil
}

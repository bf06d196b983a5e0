// Package bytesplit 实现 Bytes 模式的单元抽取：每个字节一个单元。
package bytesplit

import "splitby/pkg/contract"

// Splitter 为无配置的字节切分器。
type Splitter struct{}

// New 创建字节切分器。
func New() *Splitter { return &Splitter{} }

// Split 将每个原始字节映射为一个单元；无分隔符语义。
func (s *Splitter) Split(record []byte) (contract.UnitSeq, error) {
	units := make([]contract.Unit, len(record))
	for i := range record {
		units[i] = contract.Unit{Text: contract.Span{Start: i, End: i + 1}}
	}
	return contract.UnitSeq{Text: string(record), Units: units}, nil
}

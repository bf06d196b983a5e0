package compose

import (
	"splitby/internal/widths"
	"splitby/pkg/contract"
)

// ScanWidths 为对齐执行预扫描：对每条已缓冲记录做与正式运行相同的
// 切分+规范化(+求反)，按产出位置（产出序中的 0-based 名次，而非源索引）
// 统计最大字段显示宽度与最大尾随分隔符显示宽度。
// 解码/匹配失败为硬错误；选择解析失败的记录跳过（正式运行时再报）。
func ScanWidths(inst *contract.Instructions, splitter contract.Splitter, records []contract.Record) (fieldWidths, joinWidths []int, err error) {
	for i := range records {
		seq, err := splitter.Split(records[i].Bytes)
		if err != nil {
			return nil, nil, err
		}
		if seq.Len() == 0 {
			continue
		}
		sels, err := EffectiveSelections(inst, seq.Len())
		if err != nil {
			continue
		}

		position := 0
		n := seq.Len()
		firstDelim := firstNonEmptyDelim(&seq)
		lastDelim := lastNonEmptyDelim(&seq)
		for si, sel := range sels {
			for idx := sel.Start; idx <= sel.End; idx++ {
				if !hasData(inst, idx, n) {
					continue
				}
				var w int
				if idx < n {
					w = widths.Display(seq.UnitText(idx))
				} else {
					w = widths.DisplayBytes(inst.Placeholder)
				}
				fieldWidths = grow(fieldWidths, position)
				if w > fieldWidths[position] {
					fieldWidths[position] = w
				}

				isLast := si == len(sels)-1 && idx == sel.End
				if !isLast {
					join := chooseJoin(inst, &seq, sels, si, idx, firstDelim, lastDelim)
					joinWidths = grow(joinWidths, position)
					if jw := widths.Display(join); jw > joinWidths[position] {
						joinWidths[position] = jw
					}
				}
				position++
			}
		}
	}
	return fieldWidths, joinWidths, nil
}

func firstNonEmptyDelim(seq *contract.UnitSeq) string {
	for i := 0; i < seq.Len(); i++ {
		if d := seq.DelimText(i); d != "" {
			return d
		}
	}
	return ""
}

func lastNonEmptyDelim(seq *contract.UnitSeq) string {
	for i := seq.Len() - 1; i >= 0; i-- {
		if d := seq.DelimText(i); d != "" {
			return d
		}
	}
	return ""
}

func grow(s []int, idx int) []int {
	for len(s) <= idx {
		s = append(s, 0)
	}
	return s
}

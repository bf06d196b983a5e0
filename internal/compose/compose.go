// Package compose 实现输出组合：将解析后的选择施加于单元序列，
// 应用连接/占位/对齐策略，产出单条记录的输出字节。
package compose

import (
	"splitby/internal/selection"
	"splitby/internal/widths"
	"splitby/pkg/contract"
)

// EffectiveSelections 在 Composer 边界决定空选择与求反的交互：
// - 空列表且未求反 ⇒ 隐式全选 [0,unitCount-1]；
// - 空列表且求反 ⇒ 产出空（求反仅对显式非空列表有意义）；
// - 其余：规范化后按需求反。
func EffectiveSelections(inst *contract.Instructions, unitCount int) ([]contract.ResolvedRange, error) {
	if len(inst.Selections) == 0 {
		if inst.Invert {
			return nil, nil
		}
		return []contract.ResolvedRange{{Start: 0, End: unitCount - 1}}, nil
	}
	normalized, err := selection.NormalizeAll(
		inst.Selections, unitCount,
		inst.Placeholder != nil, inst.StrictBounds, inst.StrictRangeOrder)
	if err != nil {
		return nil, err
	}
	if inst.Invert {
		return selection.Invert(normalized, unitCount), nil
	}
	return normalized, nil
}

// Compose 产出一条记录的输出。
// fieldWidths/joinWidths 为对齐预扫描按产出位置统计的最大显示宽度；
// 无对齐时为 nil。strict-return 违例返回 ErrEmptyResult。
func Compose(inst *contract.Instructions, seq *contract.UnitSeq, sels []contract.ResolvedRange, fieldWidths, joinWidths []int) ([]byte, error) {
	n := seq.Len()
	out := make([]byte, 0, estimateOutputSize(len(seq.Text), len(sels)))
	passed := false
	fieldsMode := inst.SelectionMode == contract.Fields

	var firstDelim, lastDelim string
	if fieldsMode {
		for i := 0; i < n; i++ {
			if d := seq.DelimText(i); d != "" {
				firstDelim = d
				break
			}
		}
		for i := n - 1; i >= 0; i-- {
			if d := seq.DelimText(i); d != "" {
				lastDelim = d
				break
			}
		}
	}

	position := 0
	for si, sel := range sels {
		for idx := sel.Start; idx <= sel.End; idx++ {
			if !hasData(inst, idx, n) {
				continue
			}
			var cell string
			if idx < n {
				cell = seq.UnitText(idx)
				if cell != "" {
					passed = true
				}
			} else {
				cell = string(inst.Placeholder)
				passed = true
			}

			isLast := si == len(sels)-1 && idx == sel.End
			if isLast {
				out = append(out, cell...)
				continue
			}

			sep := chooseJoin(inst, seq, sels, si, idx, firstDelim, lastDelim)
			if fieldsMode && inst.Align != contract.AlignNone && position < len(fieldWidths) {
				out = appendAligned(out, inst.Align, cell, sep,
					fieldWidths[position], joinWidth(joinWidths, position))
			} else {
				out = append(out, cell...)
				out = append(out, sep...)
			}
			position++
		}
	}

	if inst.StrictReturn && !passed {
		return nil, contract.ErrEmptyResult
	}
	return out, nil
}

// hasData: 越界索引仅在有占位符且未求反时仍产出（代入占位符）。
func hasData(inst *contract.Instructions, idx, unitCount int) bool {
	return idx < unitCount || (inst.Placeholder != nil && !inst.Invert)
}

// appendAligned 按对齐模式写出 cell 与分隔符：
// Left: cell、补齐至最大字段宽、sep；
// Right: 补齐、cell、sep；
// Squash: cell、补齐、sep、将 sep 补齐至最大分隔符宽。
// 宽度一律按显示宽度度量。
func appendAligned(out []byte, mode contract.AlignMode, cell, sep string, maxField, maxJoin int) []byte {
	pad := maxField - widths.Display(cell)
	if pad < 0 {
		pad = 0
	}
	switch mode {
	case contract.AlignRight:
		out = appendSpaces(out, pad)
		out = append(out, cell...)
		out = append(out, sep...)
	case contract.AlignSquash:
		out = append(out, cell...)
		out = appendSpaces(out, pad)
		out = append(out, sep...)
		out = appendSpaces(out, maxJoin-widths.Display(sep))
	default:
		out = append(out, cell...)
		out = appendSpaces(out, pad)
		out = append(out, sep...)
	}
	return out
}

func appendSpaces(out []byte, n int) []byte {
	for i := 0; i < n; i++ {
		out = append(out, ' ')
	}
	return out
}

func joinWidth(joinWidths []int, position int) int {
	if position < len(joinWidths) {
		return joinWidths[position]
	}
	return 0
}

// chooseJoin 选定 idx 处单元之后的分隔字节。
// Bytes/Chars 只认显式字面连接；Fields 按策略选取，显式策略优先，
// 无显式策略走 auto 链：当前尾随 → 下一字段尾随 → 记录首个 → 空格。
func chooseJoin(inst *contract.Instructions, seq *contract.UnitSeq, sels []contract.ResolvedRange, selIdx, idx int, firstDelim, lastDelim string) string {
	if inst.SelectionMode != contract.Fields {
		if inst.Join != nil && inst.Join.Kind == contract.JoinLiteral {
			return string(inst.Join.Literal)
		}
		return ""
	}

	current := seq.DelimText(idx)
	if inst.Join == nil {
		return autoJoin(current, seq.DelimText(idx+1), firstDelim)
	}
	switch inst.Join.Kind {
	case contract.JoinLiteral:
		return string(inst.Join.Literal)
	case contract.JoinAfterPrevious:
		return orSpace(current)
	case contract.JoinBeforeNext:
		return orSpace(beforeNextDelim(inst, seq, sels, selIdx, idx))
	case contract.JoinFirst:
		return orSpace(firstDelim)
	case contract.JoinLast:
		return orSpace(lastDelim)
	case contract.JoinSpace:
		return " "
	case contract.JoinNone:
		return ""
	default: // JoinAuto
		return autoJoin(current, seq.DelimText(idx+1), firstDelim)
	}
}

func autoJoin(current, next, first string) string {
	if current != "" {
		return current
	}
	if next != "" {
		return next
	}
	if first != "" {
		return first
	}
	return " "
}

func orSpace(s string) string {
	if s == "" {
		return " "
	}
	return s
}

// beforeNextDelim 返回引导下一个将产出单元的分隔符：
// 先在当前区间剩余索引中找下一个有数据的单元，再沿后续区间找；
// 找到 j 后取第 j-1 个单元的尾随分隔符。
func beforeNextDelim(inst *contract.Instructions, seq *contract.UnitSeq, sels []contract.ResolvedRange, selIdx, idx int) string {
	n := seq.Len()
	next := -1
	if selIdx < len(sels) {
		for j := idx + 1; j <= sels[selIdx].End; j++ {
			if hasData(inst, j, n) {
				next = j
				break
			}
		}
	}
	if next < 0 {
		for _, sel := range sels[selIdx+1:] {
			for j := sel.Start; j <= sel.End; j++ {
				if hasData(inst, j, n) {
					next = j
					break
				}
			}
			if next >= 0 {
				break
			}
		}
	}
	if next <= 0 {
		return ""
	}
	return seq.DelimText(next - 1)
}

// 输出缓冲容量的粗略预估（避免热路径反复扩容）。
func estimateOutputSize(inputLen, selectionCount int) int {
	if selectionCount == 0 {
		return inputLen
	}
	est := inputLen * 2 / selectionCount
	if min := inputLen / 4; est < min {
		est = min
	}
	return est
}

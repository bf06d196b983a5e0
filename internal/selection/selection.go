// Package selection 实现选择代数：索引解析、单区间规范化、列表求反。
// 全部为纯函数，无状态，按记录调用。
package selection

import (
	"fmt"
	"math"
	"sort"

	"splitby/pkg/contract"
)

// ResolveIndex 将 1-based/自尾部原始索引解析为 0-based 有符号索引。
// 正值 raw → raw-1；非正值 raw → length+raw（-1 → length-1，0 → length，
// 后者仅内部可达）。length 超出带符号 32 位范围时负解析不可行，报错。
func ResolveIndex(raw int32, length int) (int32, error) {
	if raw > 0 {
		return raw - 1, nil
	}
	if length > math.MaxInt32 {
		return 0, fmt.Errorf(
			"%w: %d units exceeds maximum of %d, negative indices cannot be resolved for inputs this large",
			contract.ErrIndexOverflow, length, math.MaxInt32)
	}
	return int32(length) + raw, nil
}

// Normalize 规范化单个选择。
// 返回 (range, true, nil) 表示有效；(_, false, nil) 表示该选择被丢弃
// （丢弃而非钳入有序，见 strict-range-order 语义）；err 非 nil 为硬错误。
// 宽松边界下：无占位符时 start/end 均钳入 [0,length-1]（start 越界则整个
// 选择被丢弃）；有占位符时越界的 start/end 保留（仅下界钳 0），
// 以便 Composer 对每个越界索引代入占位符。
func Normalize(rawStart, rawEnd int32, length int, allowPlaceholder, strictBounds, strictRangeOrder bool) (contract.ResolvedRange, bool, error) {
	var none contract.ResolvedRange

	if strictBounds && (rawStart == 0 || rawEnd == 0) {
		return none, false, contract.ErrInvalidIndex
	}

	start, err := ResolveIndex(rawStart, length)
	if err != nil {
		return none, false, err
	}
	end, err := ResolveIndex(rawEnd, length)
	if err != nil {
		return none, false, err
	}

	if start > end {
		if strictRangeOrder {
			return none, false, fmt.Errorf(
				"%w: end index (%d) is less than start index (%d) in selection %d-%d",
				contract.ErrRangeOrder, rawEnd, rawStart, rawStart, rawEnd)
		}
		return none, false, nil
	}

	if strictBounds {
		if length == 0 {
			return none, false, fmt.Errorf("%w: no valid units to select", contract.ErrOutOfBounds)
		}
		// 单索引与区间选择报错措辞不同。
		if start < 0 || int(start) >= length {
			if rawStart == rawEnd {
				return none, false, fmt.Errorf(
					"%w: index (%d) out of bounds, must be between 1 and %d",
					contract.ErrOutOfBounds, rawStart, length)
			}
			return none, false, fmt.Errorf(
				"%w: start index (%d) out of bounds, must be between 1 and %d",
				contract.ErrOutOfBounds, rawStart, length)
		}
		if end < 0 || int(end) >= length {
			return none, false, fmt.Errorf(
				"%w: end index (%d) out of bounds, must be between 1 and %d",
				contract.ErrOutOfBounds, rawEnd, length)
		}
		return contract.ResolvedRange{Start: int(start), End: int(end)}, true, nil
	}

	// 宽松边界。
	if end < 0 {
		return none, false, nil
	}
	var clampedStart int32
	switch {
	case allowPlaceholder:
		clampedStart = max32(start, 0)
	case int(start) >= length:
		return none, false, nil
	default:
		clampedStart = min32(max32(start, 0), int32(length-1))
	}
	// 占位符存在时 end 不做上界钳入：越界索引需要逐个代入占位符。
	clampedEnd := max32(end, 0)
	if !allowPlaceholder {
		clampedEnd = min32(clampedEnd, int32(length-1))
	}
	return contract.ResolvedRange{Start: int(clampedStart), End: int(clampedEnd)}, true, nil
}

// NormalizeAll 逐个规范化选择列表，丢弃无效项，遇硬错误立即返回。
func NormalizeAll(selections []contract.RawSelection, length int, allowPlaceholder, strictBounds, strictRangeOrder bool) ([]contract.ResolvedRange, error) {
	normalized := make([]contract.ResolvedRange, 0, len(selections))
	for _, sel := range selections {
		r, ok, err := Normalize(sel.Start, sel.End, length, allowPlaceholder, strictBounds, strictRangeOrder)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		normalized = append(normalized, r)
	}
	return normalized, nil
}

// Invert 对区间列表求补：按 (start,end) 排序、合并相接/重叠区间，
// 再对 [0,length-1] 产出合并段之前、之间、之后的缺口。
// 空列表的求反语义不在此处决定（见 Composer 边界的空选择策略）。
func Invert(ranges []contract.ResolvedRange, length int) []contract.ResolvedRange {
	sorted := make([]contract.ResolvedRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := make([]contract.ResolvedRange, 0, len(sorted))
	for _, r := range sorted {
		if n := len(merged); n > 0 && r.Start <= merged[n-1].End {
			if r.End > merged[n-1].End {
				merged[n-1].End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}

	inverted := make([]contract.ResolvedRange, 0, len(merged)+1)
	cursor := 0
	for _, r := range merged {
		if r.Start > cursor {
			inverted = append(inverted, contract.ResolvedRange{Start: cursor, End: r.Start - 1})
		}
		if r.End+1 > cursor {
			cursor = r.End + 1
		}
	}
	if cursor < length {
		inverted = append(inverted, contract.ResolvedRange{Start: cursor, End: length - 1})
	}
	return inverted
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

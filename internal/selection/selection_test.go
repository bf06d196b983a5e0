package selection

import (
	"errors"
	"testing"

	"splitby/pkg/contract"
)

// UT-SEL-01: 正索引解析为 0 基
func TestResolveIndexPositive(t *testing.T) {
	got, err := ResolveIndex(1, 5)
	if err != nil || got != 0 {
		t.Fatalf("1 应解析为 0, got %d err %v", got, err)
	}
	got, _ = ResolveIndex(5, 5)
	if got != 4 {
		t.Fatalf("5 应解析为 4, got %d", got)
	}
}

// UT-SEL-02: 负索引自尾部计
func TestResolveIndexNegative(t *testing.T) {
	got, err := ResolveIndex(-1, 5)
	if err != nil || got != 4 {
		t.Fatalf("-1 应解析为 4, got %d err %v", got, err)
	}
	got, _ = ResolveIndex(-5, 5)
	if got != 0 {
		t.Fatalf("-5 应解析为 0, got %d", got)
	}
	got, _ = ResolveIndex(-6, 5)
	if got != -1 {
		t.Fatalf("-6 应解析为 -1, got %d", got)
	}
}

// UT-SEL-03: 零索引仅在严格边界下报错
func TestNormalizeZeroIndex(t *testing.T) {
	_, _, err := Normalize(0, 2, 5, false, true, true)
	if !errors.Is(err, contract.ErrInvalidIndex) {
		t.Fatalf("严格边界下 0 应报错, got %v", err)
	}
	// 宽松下 0 解析为 length(=5), 起点大于终点, 整体丢弃
	_, ok, err := Normalize(0, 2, 5, false, false, false)
	if err != nil || ok {
		t.Fatalf("宽松下应丢弃, ok=%v err=%v", ok, err)
	}
}

// UT-SEL-04: 逆序区间: 严格报错, 宽松丢弃
func TestNormalizeRangeOrder(t *testing.T) {
	_, _, err := Normalize(3, 1, 5, false, false, true)
	if !errors.Is(err, contract.ErrRangeOrder) {
		t.Fatalf("应报区间次序错误, got %v", err)
	}
	_, ok, err := Normalize(3, 1, 5, false, false, false)
	if err != nil || ok {
		t.Fatalf("宽松次序下应整体丢弃, ok=%v err=%v", ok, err)
	}
}

// UT-SEL-05: 严格边界的措辞区分单索引与区间
func TestNormalizeStrictBoundsMessages(t *testing.T) {
	_, _, err := Normalize(9, 9, 5, false, true, true)
	if !errors.Is(err, contract.ErrOutOfBounds) {
		t.Fatalf("应报越界, got %v", err)
	}
	if got := err.Error(); got != "strict bounds error: index (9) out of bounds, must be between 1 and 5" {
		t.Fatalf("单索引措辞不符: %q", got)
	}
	_, _, err = Normalize(9, 12, 5, false, true, true)
	if got := err.Error(); got != "strict bounds error: start index (9) out of bounds, must be between 1 and 5" {
		t.Fatalf("区间起点措辞不符: %q", got)
	}
	_, _, err = Normalize(2, 12, 5, false, true, true)
	if got := err.Error(); got != "strict bounds error: end index (12) out of bounds, must be between 1 and 5" {
		t.Fatalf("区间终点措辞不符: %q", got)
	}
}

// UT-SEL-06: 空记录 + 严格边界
func TestNormalizeStrictBoundsEmpty(t *testing.T) {
	_, _, err := Normalize(1, 1, 0, false, true, true)
	if !errors.Is(err, contract.ErrOutOfBounds) {
		t.Fatalf("空记录应报越界, got %v", err)
	}
}

// UT-SEL-07: 宽松钳入: 起点越上界丢弃, 终点钳到末尾
func TestNormalizeLenientClamp(t *testing.T) {
	r, ok, err := Normalize(2, 99, 5, false, false, true)
	if err != nil || !ok {
		t.Fatalf("应有效, ok=%v err=%v", ok, err)
	}
	if r.Start != 1 || r.End != 4 {
		t.Fatalf("终点应钳到 4: %+v", r)
	}
	_, ok, _ = Normalize(9, 12, 5, false, false, true)
	if ok {
		t.Fatalf("起点越上界应整体丢弃")
	}
	_, ok, _ = Normalize(-9, -7, 5, false, false, true)
	if ok {
		t.Fatalf("终点解析为负应整体丢弃")
	}
}

// UT-SEL-08: 占位符保留越界终点
func TestNormalizePlaceholderKeepsEnd(t *testing.T) {
	r, ok, err := Normalize(1, 10, 5, true, false, true)
	if err != nil || !ok {
		t.Fatalf("应有效, ok=%v err=%v", ok, err)
	}
	if r.Start != 0 || r.End != 9 {
		t.Fatalf("占位符下终点应保留 9: %+v", r)
	}
	// 起点也保留, 仅下界钳 0
	r, ok, _ = Normalize(8, 10, 5, true, false, true)
	if !ok || r.Start != 7 || r.End != 9 {
		t.Fatalf("占位符下起点应保留: %+v ok=%v", r, ok)
	}
}

// UT-SEL-09: NormalizeAll 丢弃无效项并保持顺序
func TestNormalizeAll(t *testing.T) {
	sels := []contract.RawSelection{{Start: 1, End: 1}, {Start: 9, End: 9}, {Start: 3, End: 3}}
	got, err := NormalizeAll(sels, 5, false, false, true)
	if err != nil {
		t.Fatalf("不应报错: %v", err)
	}
	want := []contract.ResolvedRange{{Start: 0, End: 0}, {Start: 2, End: 2}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("规范化结果不符: %+v", got)
	}
}

// UT-SEL-10: 求反: 排序合并后产出缺口
func TestInvert(t *testing.T) {
	in := []contract.ResolvedRange{{Start: 3, End: 4}, {Start: 0, End: 1}, {Start: 1, End: 2}}
	got := Invert(in, 8)
	want := []contract.ResolvedRange{{Start: 5, End: 7}}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("求反结果不符: %+v", got)
	}
}

// UT-SEL-11: 求反覆盖整段时为空
func TestInvertFullCover(t *testing.T) {
	in := []contract.ResolvedRange{{Start: 0, End: 7}}
	if got := Invert(in, 8); len(got) != 0 {
		t.Fatalf("全覆盖求反应为空: %+v", got)
	}
}

// UT-SEL-12: 空列表求反得整段 (求反语义由上层决定, 此处为纯区间补)
func TestInvertEmpty(t *testing.T) {
	got := Invert(nil, 3)
	if len(got) != 1 || got[0].Start != 0 || got[0].End != 2 {
		t.Fatalf("空列表求反应得 [0,2]: %+v", got)
	}
}

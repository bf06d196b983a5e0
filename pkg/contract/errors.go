package contract

import "errors"

// 最小错误分类哨兵。包装时保留用户可读上下文：
// fmt.Errorf("%w: …", ErrX, …)，分类一律经 errors.Is，不做字符串匹配。
var (
	// ErrInvalidIndex: strict-bounds 下出现 0 索引（选择为 1-based）。
	ErrInvalidIndex = errors.New("selections are 1-based, 0 is an invalid index")
	// ErrRangeOrder: strict-range-order 下 start > end。
	ErrRangeOrder = errors.New("strict range order error")
	// ErrOutOfBounds: strict-bounds 下选择越界。
	ErrOutOfBounds = errors.New("strict bounds error")
	// ErrUTF8: strict-utf8 下输入不是合法 UTF-8。
	ErrUTF8 = errors.New("input is not valid UTF-8")
	// ErrEmptyResult: strict-return 下无有效产出。
	ErrEmptyResult = errors.New("strict returns error")
	// ErrMatcher: 分隔符匹配器在扫描中途失败。
	ErrMatcher = errors.New("regex matching error")
	// ErrIndexOverflow: 单元数超出带符号 32 位解析范围，负索引不可解析。
	ErrIndexOverflow = errors.New("input too large")
	// ErrOrdering: 结果流提前结束，存在缺失记录。
	ErrOrdering = errors.New("result stream ended early")
	// ErrOpen: 输入/输出文件打开或创建失败（退出码边界上与其他 IO 区分）。
	ErrOpen = errors.New("open failed")
)

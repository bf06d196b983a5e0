package contract

// Matcher: 在解码后的文本上自左向右产出有序、互不重叠的分隔符区间。
// 约束：
// 1) 区间按 Start 严格递增且不重叠；
// 2) 允许中途失败（回溯引擎超时等），以 ErrMatcher 包装返回；
// 3) 并发安全：同一 Matcher 被全部 worker 只读共享。
type Matcher interface {
	FindSpans(text string) ([]Span, error)
}

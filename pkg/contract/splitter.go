package contract

// Splitter: 将一条记录的字节切为有序单元序列。
// 约束：
// 1) 纯函数式：无内部并发、无跨记录状态、幂等；
// 2) 返回的 UnitSeq 仅在该记录处理期间有效；
// 3) 解码/匹配失败即该记录的硬错误（ErrUTF8 / ErrMatcher）。
type Splitter interface {
	Split(record []byte) (UnitSeq, error)
}

package contract

// InputMode: 记录的切分方式（终结符语义见 reader）。
type InputMode int

const (
	// PerLine: 以 '\n' 终结（读入时剥离，若前有 '\r' 一并剥离）。
	PerLine InputMode = iota
	// WholeString: 整个输入为单条记录，无终结符。
	WholeString
	// ZeroTerminated: 以 '\0' 终结。
	ZeroTerminated
)

// SelectionMode: 单元的抽取策略。
type SelectionMode int

const (
	// Fields: 按分隔符匹配切出字段（需要 Matcher）。
	Fields SelectionMode = iota
	// Bytes: 每个字节为一个单元。
	Bytes
	// Chars: 每个扩展字素簇为一个单元。
	Chars
)

// AlignMode: 输出列对齐方式（仅 Fields + PerLine 有效）。
type AlignMode int

const (
	AlignNone AlignMode = iota
	AlignLeft
	AlignRight
	AlignSquash
)

// JoinKind: 相邻被选单元之间的连接策略。
type JoinKind int

const (
	// JoinLiteral: 使用字面字节（Join.Literal）。
	JoinLiteral JoinKind = iota
	// JoinAuto: 当前字段尾随分隔符 → 下一字段分隔符 → 记录首个分隔符
	// → 记录末个分隔符 → 单个空格。
	JoinAuto
	// JoinAfterPrevious: 刚产出字段的尾随分隔符；为空时退化为空格。
	JoinAfterPrevious
	// JoinBeforeNext: 下一个将产出字段之前的分隔符；为空时退化为空格。
	JoinBeforeNext
	// JoinFirst: 记录中首个非空分隔符；为空时退化为空格。
	JoinFirst
	// JoinLast: 记录中末个非空分隔符；为空时退化为空格。
	JoinLast
	// JoinSpace: 单个空格。
	JoinSpace
	// JoinNone: 不连接。
	JoinNone
)

// Join: 连接策略。Kind 非 JoinLiteral 时 Literal 为 nil。
type Join struct {
	Kind    JoinKind
	Literal []byte
}

// RawSelection: 用户书写的 1-based 闭区间选择。
// 非正值表示自尾部计数（-1 = 最后一个单元）；0 仅在 strict-bounds 下报错。
type RawSelection struct {
	Start int32
	End   int32
}

// ResolvedRange: 针对某条记录单元数解析后的 0-based 闭区间。
// 不跨记录持久化。
type ResolvedRange struct {
	Start int
	End   int
}

// Record: 原子输入记录。
// 约束：
// - Index 自 0 起，单调连续，由 reader 唯一分配；
// - 创建后不可变（对齐预扫描附加宽度除外）；
// - 恰被一个 worker 消费。
type Record struct {
	Index         uint64
	Bytes         []byte
	HasTerminator bool
	// FieldWidths/JoinWidths: 按产出位置索引的全局最大显示宽度。
	// 仅对齐预扫描附加；各记录共享同一只读切片。
	FieldWidths []int
	JoinWidths  []int
}

// OutputRecord: 单条记录的产出，由 collector 消费一次后丢弃。
type OutputRecord struct {
	Bytes         []byte
	HasTerminator bool
}

// ResultChunk: 跨线程结果单元，每个处理完的批一个；
// Err 非 nil 时为批内首个失败记录（Index 有效，Outputs 为 nil），
// 且该批与该 worker 随即终止。
type ResultChunk struct {
	StartIndex uint64
	Outputs    []OutputRecord
	Index      uint64
	Err        error
}

// Span: 解码后文本内的字节区间（左闭右开）。
// 以偏移而非引用建模，使单元序列可按值跨越边界传递。
type Span struct {
	Start int
	End   int
}

// Unit: 一个可寻址单元及其尾随分隔符区间（最后一个字段的分隔符为空）。
// 仅在单条记录处理期间存活。
type Unit struct {
	Text  Span
	Delim Span
}

// UnitSeq: 一条记录的有序单元序列。
// Text 为解码后文本（Bytes 模式下即原始字节的只读视图）；
// 所有 Span 均指向 Text。
type UnitSeq struct {
	Text  string
	Units []Unit
}

// Len 返回单元数。
func (s *UnitSeq) Len() int { return len(s.Units) }

// UnitText 返回第 i 个单元的文本。
func (s *UnitSeq) UnitText(i int) string {
	u := s.Units[i].Text
	return s.Text[u.Start:u.End]
}

// DelimText 返回第 i 个单元的尾随分隔符文本；越界返回空串。
func (s *UnitSeq) DelimText(i int) string {
	if i < 0 || i >= len(s.Units) {
		return ""
	}
	d := s.Units[i].Delim
	return s.Text[d.Start:d.End]
}

// Instructions: 运行期只读配置。一次解析，进程生命周期内共享、不再修改。
type Instructions struct {
	InputMode     InputMode
	SelectionMode SelectionMode
	Selections    []RawSelection
	Invert        bool
	SkipEmpty     bool
	// Placeholder: 非 nil 时，越界选择以其替代（仅宽松边界下可达）。
	Placeholder      []byte
	StrictReturn     bool
	StrictBounds     bool
	StrictRangeOrder bool
	StrictUTF8       bool
	Count            bool
	// Join: nil 表示无显式连接（Fields 走 JoinAuto 链；Bytes/Chars 直接拼接）。
	Join *Join
	// Matcher: Fields 模式必需；其余模式为 nil。
	Matcher Matcher
	Align   AlignMode
	// Input/Output: 文件路径；空串表示 stdin/stdout。
	Input  string
	Output string
}

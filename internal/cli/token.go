// 词元解析: 选择语法, 十六进制字面量, 引号剥离, 分隔符与连接词元.
package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"splitby/pkg/contract"
)

// selectionRe: 选择词元语法. 端点为关键字或带符号整数,
// 可选 '-' 连接第二端点构成闭区间.
var selectionRe = regexp.MustCompile(
	`^(?i)(?P<start>start|first|end|last|-?\d+)(?:-(?P<end>start|first|end|last|-?\d+))?$`)

// isSelectionToken 判断整个词元是否符合选择语法.
func isSelectionToken(s string) bool {
	return selectionRe.MatchString(strings.TrimSpace(s))
}

// parseSelectionToken 解析单个选择词元. 关键字 start/first 等价于 1,
// end/last 等价于 -1; 省略第二端点时区间退化为单下标.
func parseSelectionToken(token string) (contract.RawSelection, error) {
	m := selectionRe.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return contract.RawSelection{}, fmt.Errorf("invalid selection: '%s'", token)
	}
	start, err := parseBound(m[1], token)
	if err != nil {
		return contract.RawSelection{}, err
	}
	endText := m[2]
	if endText == "" {
		endText = m[1]
	}
	end, err := parseBound(endText, token)
	if err != nil {
		return contract.RawSelection{}, err
	}
	return contract.RawSelection{Start: start, End: end}, nil
}

func parseBound(s, token string) (int32, error) {
	switch strings.ToLower(s) {
	case "start", "first":
		return 1, nil
	case "end", "last":
		return -1, nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid selection: '%s'", token)
	}
	return int32(v), nil
}

func isListSep(r rune) bool { return r == ',' || r == ' ' }

// isSelectionList: 含逗号或空格分隔, 且首个非空片段是选择词元.
// 此判定决定整个词元按选择列表解析 (所有片段都必须是选择).
func isSelectionList(s string) bool {
	if !strings.ContainsAny(s, ", ") {
		return false
	}
	for _, part := range strings.FieldsFunc(s, isListSep) {
		return isSelectionToken(part)
	}
	return false
}

// parseSelectionList 把逗号/空格分隔的列表解析为选择序列, 空片段忽略.
func parseSelectionList(s string) ([]contract.RawSelection, error) {
	var out []contract.RawSelection
	for _, part := range strings.FieldsFunc(s, isListSep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !isSelectionToken(part) {
			return nil, fmt.Errorf("invalid selection: %s", part)
		}
		sel, err := parseSelectionToken(part)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}
	return out, nil
}

// parseHex 解析 0x/0X 前缀的十六进制字面量为字节序列.
// 非法(奇数位, 非十六进制字符, 空)返回 nil, 由调用方退回字面解释.
func parseHex(s string) []byte {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil
	}
	digits := s[2:]
	if digits == "" || len(digits)%2 != 0 {
		return nil
	}
	out := make([]byte, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		v, err := strconv.ParseUint(digits[i:i+2], 16, 8)
		if err != nil {
			return nil
		}
		out = append(out, byte(v))
	}
	return out
}

// trimQuotes 剥离一层成对的单引号或双引号.
func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// delimToken: 分隔符词元. raw=true 表示 /…/ 包裹的正则原文.
type delimToken struct {
	pattern string
	raw     bool
}

// parseDelimiterToken 先剥引号; /…/ 取正则原文, 其余按字面处理
// (字面值在编译前做正则转义).
func parseDelimiterToken(s string) delimToken {
	v := trimQuotes(s)
	if len(v) >= 2 && v[0] == '/' && v[len(v)-1] == '/' {
		return delimToken{pattern: v[1 : len(v)-1], raw: true}
	}
	return delimToken{pattern: v}
}

// parseJoin 解析 -j 的值: @ 关键字, 0x 十六进制, 或字面字符串.
func parseJoin(s string) (*contract.Join, error) {
	v := trimQuotes(s)
	if strings.HasPrefix(v, "@") {
		switch strings.ToLower(v) {
		case "@auto":
			return &contract.Join{Kind: contract.JoinAuto}, nil
		case "@after-previous":
			return &contract.Join{Kind: contract.JoinAfterPrevious}, nil
		case "@before-next":
			return &contract.Join{Kind: contract.JoinBeforeNext}, nil
		case "@first":
			return &contract.Join{Kind: contract.JoinFirst}, nil
		case "@last":
			return &contract.Join{Kind: contract.JoinLast}, nil
		case "@space":
			return &contract.Join{Kind: contract.JoinSpace}, nil
		case "@none":
			return &contract.Join{Kind: contract.JoinNone}, nil
		default:
			return nil, fmt.Errorf("invalid join keyword: '%s'", v)
		}
	}
	if b := parseHex(v); b != nil {
		return &contract.Join{Kind: contract.JoinLiteral, Literal: b}, nil
	}
	return &contract.Join{Kind: contract.JoinLiteral, Literal: []byte(v)}, nil
}

// parsePlaceholder 解析 -p 的值: 0x 十六进制或字面字符串.
func parsePlaceholder(s string) []byte {
	v := trimQuotes(s)
	if b := parseHex(v); b != nil {
		return b
	}
	return []byte(v)
}

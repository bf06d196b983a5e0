// Package cli 把命令行参数装配为运行指令.
//
// 词元分三类: 旗标 (pflag), 选择列表 (含负数), fields 模式下的
// 隐式分隔符. 预扫描 (scan.go) 先摘出裸词元, 余下交 pflag; 装配后
// 做跨旗标校验并编译分隔符正则.
package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/pflag"

	"splitby/pkg/contract"
	"splitby/plugins/matcher/fancy"
	"splitby/plugins/matcher/simple"
)

// Result: 解析产物. ShowHelp/ShowVersion 置位时 Inst 为 nil.
type Result struct {
	Inst        *contract.Instructions
	ShowHelp    bool
	ShowVersion bool
}

// Parse 解析 argv (不含程序名). 任何错误都属用法错误, 由 cmd 层映射
// 到退出码 2.
func Parse(args []string) (*Result, error) {
	sc, err := scanArgs(args)
	if err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet("splitby", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {} // 帮助文本由 cmd 层输出

	input := fs.StringP("input", "i", "", "input file")
	output := fs.StringP("output", "o", "", "output file")
	delim := fs.StringP("delimiter", "d", "", "field delimiter")
	join := fs.StringP("join", "j", "", "join string, hex or @keyword")
	placeholder := fs.StringP("placeholder", "p", "", "placeholder string or hex")
	align := fs.StringP("align", "a", "none", "align mode")
	fs.Lookup("align").NoOptDefVal = "left"
	fs.Bool("per-line", false, "process line by line")
	wholeString := fs.BoolP("whole-string", "w", false, "process input as one record")
	zeroTerm := fs.BoolP("zero-terminated", "z", false, "NUL-terminated records")
	fields := fs.BoolP("fields", "f", false, "select fields")
	bytesMode := fs.BoolP("bytes", "b", false, "select bytes")
	chars := fs.BoolP("characters", "c", false, "select characters")
	count := fs.Bool("count", false, "emit unit count")
	invert := fs.Bool("invert", false, "invert the selection")
	skipEmpty := fs.BoolP("skip-empty", "e", false, "skip empty fields")
	noSkipEmpty := fs.BoolP("no-skip-empty", "E", false, "keep empty fields")
	strictAll := fs.Bool("strict", false, "enable all strict checks")
	noStrictAll := fs.Bool("no-strict", false, "disable all strict checks")
	strictBounds := fs.Bool("strict-bounds", false, "error on out-of-bounds selection")
	noStrictBounds := fs.Bool("no-strict-bounds", false, "")
	strictReturn := fs.Bool("strict-return", false, "error on empty result")
	noStrictReturn := fs.Bool("no-strict-return", false, "")
	strictRangeOrder := fs.Bool("strict-range-order", false, "error on inverted range")
	noStrictRangeOrder := fs.Bool("no-strict-range-order", false, "")
	strictUTF8 := fs.Bool("strict-utf8", false, "error on invalid UTF-8")
	noStrictUTF8 := fs.Bool("no-strict-utf8", false, "")
	help := fs.BoolP("help", "h", false, "print help")
	version := fs.BoolP("version", "v", false, "print version")

	if err := fs.Parse(sc.flagArgs); err != nil {
		return nil, err
	}
	if *help {
		return &Result{ShowHelp: true}, nil
	}
	if *version {
		return &Result{ShowVersion: true}, nil
	}
	if rest := fs.Args(); len(rest) > 0 {
		return nil, fmt.Errorf("invalid argument: %s", rest[0])
	}

	inst := &contract.Instructions{
		InputMode:        contract.PerLine,
		SelectionMode:    contract.Fields,
		StrictRangeOrder: true,
		Selections:       sc.selections,
		Count:            *count,
		Invert:           *invert,
		Input:            *input,
		Output:           *output,
	}

	// 按行是默认, --per-line 仅作显式声明参与冲突检查.
	modes := 0
	if fs.Changed("per-line") {
		modes++
	}
	if *wholeString {
		modes++
		inst.InputMode = contract.WholeString
	}
	if *zeroTerm {
		modes++
		inst.InputMode = contract.ZeroTerminated
	}
	if modes > 1 {
		return nil, errors.New("conflicting input mode flags")
	}

	modes = 0
	if *fields {
		modes++
	}
	if *bytesMode {
		modes++
		inst.SelectionMode = contract.Bytes
	}
	if *chars {
		modes++
		inst.SelectionMode = contract.Chars
	}
	if modes > 1 {
		return nil, errors.New("conflicting selection mode flags")
	}

	// 严格开关分三层叠加: 汇总旗标, 单项开, 单项关 (关优先).
	if *strictAll {
		inst.StrictBounds, inst.StrictReturn = true, true
		inst.StrictRangeOrder, inst.StrictUTF8 = true, true
	}
	if *noStrictAll {
		inst.StrictBounds, inst.StrictReturn = false, false
		inst.StrictRangeOrder, inst.StrictUTF8 = false, false
	}
	if *strictBounds {
		inst.StrictBounds = true
	}
	if *strictReturn {
		inst.StrictReturn = true
	}
	if *strictRangeOrder {
		inst.StrictRangeOrder = true
	}
	if *strictUTF8 {
		inst.StrictUTF8 = true
	}
	if *noStrictBounds {
		inst.StrictBounds = false
	}
	if *noStrictReturn {
		inst.StrictReturn = false
	}
	if *noStrictRangeOrder {
		inst.StrictRangeOrder = false
	}
	if *noStrictUTF8 {
		inst.StrictUTF8 = false
	}

	if *skipEmpty {
		inst.SkipEmpty = true
	}
	if *noSkipEmpty {
		inst.SkipEmpty = false
	}

	switch strings.ToLower(*align) {
	case "none":
		inst.Align = contract.AlignNone
	case "left":
		inst.Align = contract.AlignLeft
	case "right":
		inst.Align = contract.AlignRight
	case "squash":
		inst.Align = contract.AlignSquash
	default:
		return nil, fmt.Errorf("invalid align mode: '%s'", *align)
	}
	if inst.Align != contract.AlignNone {
		if inst.InputMode != contract.PerLine {
			return nil, errors.New("--align is only supported in per-line mode")
		}
		if inst.SelectionMode != contract.Fields {
			return nil, errors.New("--align is only supported in fields mode")
		}
	}

	if fs.Changed("join") {
		if err := validateJoin(*join, inst.SelectionMode); err != nil {
			return nil, err
		}
		j, err := parseJoin(*join)
		if err != nil {
			return nil, err
		}
		inst.Join = j
	}
	if fs.Changed("placeholder") {
		inst.Placeholder = parsePlaceholder(*placeholder)
	}

	if inst.SelectionMode == contract.Fields {
		m, err := compileDelimiter(fs, *delim, sc)
		if err != nil {
			return nil, err
		}
		inst.Matcher = m
	} else if sc.haveDelim {
		return nil, fmt.Errorf("invalid argument: %s", sc.implicitDelim)
	}

	return &Result{Inst: inst}, nil
}

// validateJoin 校验连接值与选择模式的组合.
func validateJoin(join string, mode contract.SelectionMode) error {
	if strings.HasPrefix(trimQuotes(join), "@") {
		if mode != contract.Fields {
			return errors.New("join flags (@auto, @after-previous, etc.) are only supported in fields mode")
		}
		return nil
	}
	if mode == contract.Bytes {
		return errors.New("join is not supported in byte mode")
	}
	return nil
}

// compileDelimiter 把显式 (-d) 或隐式的分隔符词元编译为 Matcher.
// 先试 RE2 引擎; 被拒 (环视等) 则退到回溯引擎.
func compileDelimiter(fs *pflag.FlagSet, explicit string, sc *scanned) (contract.Matcher, error) {
	var tok delimToken
	switch {
	case fs.Changed("delimiter"):
		tok = parseDelimiterToken(explicit)
	case sc.haveDelim:
		tok = parseDelimiterToken(sc.implicitDelim)
	default:
		return nil, errors.New("delimiter is required in fields mode (use -d or --delimiter)")
	}
	if tok.pattern == "" {
		return nil, errors.New("empty string is not a valid delimiter")
	}
	pattern := tok.pattern
	if !tok.raw {
		pattern = regexp.QuoteMeta(pattern)
	}
	m, err := simple.Compile(pattern)
	if err == nil {
		return m, nil
	}
	// fancy.Compile 的错误已带 "failed to compile regex" 前缀.
	fm, ferr := fancy.Compile(pattern, nil)
	if ferr != nil {
		return nil, ferr
	}
	return fm, nil
}

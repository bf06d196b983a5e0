// 参数预扫描: 在交给 pflag 之前分离裸词元.
//
// 命令行上的裸词元有两种身份: 选择列表 (可为负数, 如 "-2" 或
// "3--1", 不能让 pflag 误认作短旗标), 以及 fields 模式下未写 -d 时
// 的隐式分隔符. 预扫描按位置跟踪取值旗标, 把裸词元摘出, 余下原样
// 交 pflag 判定.
package cli

import (
	"fmt"
	"strings"

	"splitby/pkg/contract"
)

// consumingFlags: 取值在下一词元的旗标 (等号形式自含, 不在此列).
var consumingFlags = map[string]bool{
	"-i": true, "--input": true,
	"-o": true, "--output": true,
	"-d": true, "--delimiter": true,
	"-j": true, "--join": true,
	"-p": true, "--placeholder": true,
}

var alignValues = map[string]bool{
	"left": true, "right": true, "squash": true, "none": true,
}

// scanned: 预扫描结果.
type scanned struct {
	flagArgs      []string                // 交给 pflag 的残余参数
	selections    []contract.RawSelection // 裸选择词元, 保持出现顺序
	implicitDelim string                  // 首个非选择裸词元
	haveDelim     bool
}

// isDelimFlag 识别显式分隔符旗标的各种书写形式.
func isDelimFlag(arg string) bool {
	if arg == "--delimiter" || strings.HasPrefix(arg, "--delimiter=") {
		return true
	}
	// 短旗标取值可紧贴书写 (-d, / -d=,), pflag 同样按 delimiter 解析.
	return strings.HasPrefix(arg, "-d") && !strings.HasPrefix(arg, "--")
}

func scanArgs(args []string) (*scanned, error) {
	sc := &scanned{}
	bareOnly := false
	delimSeen := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !bareOnly {
			if isDelimFlag(arg) {
				delimSeen = true
			}
			if arg == "--" {
				bareOnly = true
				continue
			}
			if consumingFlags[arg] {
				sc.flagArgs = append(sc.flagArgs, arg)
				if i+1 < len(args) {
					sc.flagArgs = append(sc.flagArgs, args[i+1])
					i++
				}
				continue
			}
			if arg == "-a" || arg == "--align" {
				// 对齐旗标可带值可不带: 仅当下一词元是合法对齐值才吞并.
				if i+1 < len(args) && alignValues[strings.ToLower(args[i+1])] {
					sc.flagArgs = append(sc.flagArgs, "--align="+strings.ToLower(args[i+1]))
					i++
				} else {
					sc.flagArgs = append(sc.flagArgs, "--align")
				}
				continue
			}
			if strings.HasPrefix(arg, "-") && !isSelectionToken(arg) && !isSelectionList(arg) {
				// 旗标形词元, 合法性交 pflag 判定.
				sc.flagArgs = append(sc.flagArgs, arg)
				continue
			}
		}
		switch {
		case isSelectionToken(arg):
			sel, err := parseSelectionToken(arg)
			if err != nil {
				return nil, err
			}
			sc.selections = append(sc.selections, sel)
		case isSelectionList(arg):
			sels, err := parseSelectionList(arg)
			if err != nil {
				return nil, err
			}
			sc.selections = append(sc.selections, sels...)
		case !bareOnly && strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("invalid flag: %s", arg)
		case !sc.haveDelim && !delimSeen:
			// 裸分隔符仅在尚无任何分隔符来源时成立.
			sc.implicitDelim = arg
			sc.haveDelim = true
		default:
			return nil, fmt.Errorf("invalid argument: %s", arg)
		}
	}
	return sc, nil
}

// splitby: 并发的记录切分过滤器.
//
// 把输入流按记录切成单元 (字节/字符/字段), 按 1 基/负数选择语法
// 抽取, 再按连接/占位/对齐规则重组输出; 输出顺序严格等于输入顺序.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"splitby/internal/cli"
	"splitby/internal/config"
	"splitby/internal/diag"
	"splitby/internal/pipeline"
	"splitby/pkg/contract"
)

var pipelineRun = pipeline.Run

func main() {
	os.Exit(run(os.Args[1:]))
}

// run 返回进程退出码:
// 0 成功; 2 用法错误或文件打开/创建失败; 1 其余运行期错误.
func run(args []string) int {
	res, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if res.ShowHelp {
		fmt.Print(cli.Help())
		return 0
	}
	if res.ShowVersion {
		fmt.Printf("splitby %s\n", cli.Version)
		return 0
	}

	logger := diag.FromEnv()
	defer logger.Sync()
	inst := res.Inst

	var in io.Reader = os.Stdin
	if inst.Input != "" {
		f, err := os.Open(inst.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", inst.Input, err)
			logger.Fail("main", fmt.Errorf("%w: %v", contract.ErrOpen, err))
			return 2
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	var outFile *os.File
	if inst.Output != "" {
		f, err := os.Create(inst.Output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", inst.Output, err)
			logger.Fail("main", fmt.Errorf("%w: %v", contract.ErrOpen, err))
			return 2
		}
		outFile = f
		out = f
	}

	tun := config.FromEnv()
	if err := pipelineRun(context.Background(), inst, tun, in, out, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Fail("pipeline", err)
		if outFile != nil {
			outFile.Close()
		}
		return 1
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	return 0
}

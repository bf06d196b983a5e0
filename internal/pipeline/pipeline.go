// Package pipeline 编排 读取→切分变换→有序收集 的并发管线.
//
// 拓扑固定为 单读者 + N 工人 + 单收集器, 两级有界通道背压.
// 输出顺序严格等于输入顺序, 与工人完成次序无关.
package pipeline

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"splitby/internal/config"
	"splitby/internal/diag"
	"splitby/pkg/contract"
	"splitby/plugins/splitter/bytesplit"
	"splitby/plugins/splitter/charsplit"
	"splitby/plugins/splitter/fieldsplit"
)

// Run 在当前 goroutine 上执行收集器, 读者与工人在 errgroup 内运行.
// 返回首个实质性错误; 正常完成返回 nil.
//
// 错误优先级: 记录级错误(已带定位前缀) > 读取错误 > 顺序断言失败.
// 取消本身不是错误.
func Run(ctx context.Context, inst *contract.Instructions, tun config.Tuning, in io.Reader, out io.Writer, logger *diag.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sp := newSplitter(inst)
	recordCh := make(chan []contract.Record, tun.QueueCap)
	resultCh := make(chan contract.ResultChunk, tun.QueueCap)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(recordCh)
		err := readInput(gctx, inst, tun, sp, in, recordCh)
		if errors.Is(err, errStopped) {
			return nil
		}
		return err
	})
	workers := tun.Workers()
	logger.Op("pipeline", "start")
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			runWorker(gctx, inst, sp, recordCh, resultCh, cancel)
			return nil
		})
	}

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- g.Wait()
		close(resultCh)
	}()

	collErr := collect(inst, tun, out, resultCh, logger)
	cancel()
	// 排空结果通道, 确保仍在发送的工人不被永久阻塞.
	for range resultCh {
	}
	runErr := <-waitErr

	if collErr != nil && !errors.Is(collErr, contract.ErrOrdering) {
		return collErr
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return collErr
}

// newSplitter 按选择模式装配切分器.
func newSplitter(inst *contract.Instructions) contract.Splitter {
	switch inst.SelectionMode {
	case contract.Bytes:
		return bytesplit.New()
	case contract.Chars:
		return charsplit.New(&charsplit.Options{StrictUTF8: inst.StrictUTF8})
	default:
		return fieldsplit.New(&fieldsplit.Options{
			Matcher:    inst.Matcher,
			InputMode:  inst.InputMode,
			SkipEmpty:  inst.SkipEmpty,
			StrictUTF8: inst.StrictUTF8,
		})
	}
}

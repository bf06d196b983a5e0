// 收集侧: 把乱序到达的结果块按记录序号还原为输入顺序后写出.
//
// 闩锁结构: next 指向下一条应写出的记录序号, pending 暂存提前到达
// 的块 (以块首记录序号为键). 每收到一块就贪心推进, 把已连续的前缀
// 全部写出. 输出经内部缓冲聚合, 达到阈值才真正写一次.
package pipeline

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"splitby/internal/config"
	"splitby/internal/diag"
	"splitby/pkg/contract"
)

// collect 消费结果流直到通道关闭或遇到首个记录错误.
// 返回的错误已带记录定位前缀.
func collect(inst *contract.Instructions, tun config.Tuning, w io.Writer, in <-chan contract.ResultChunk, logger *diag.Logger) error {
	term, withTerm := outputTerminator(inst.InputMode)
	pending := make(map[uint64][]contract.OutputRecord)
	var next uint64
	buf := make([]byte, 0, tun.FlushThreshold)

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	for chunk := range in {
		if chunk.Err != nil {
			logger.Fail("collector", chunk.Err, zap.Uint64("record", chunk.Index))
			return positionalError(inst.InputMode, chunk.Index, chunk.Err)
		}
		pending[chunk.StartIndex] = chunk.Outputs
		for {
			outputs, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			for i := range outputs {
				buf = append(buf, outputs[i].Bytes...)
				if withTerm && outputs[i].HasTerminator {
					buf = append(buf, term)
				}
				next++
				if len(buf) >= tun.FlushThreshold {
					if err := flush(); err != nil {
						return err
					}
				}
			}
		}
	}

	if len(pending) > 0 {
		return fmt.Errorf("%w: missing record %d", contract.ErrOrdering, next)
	}

	if next == 0 {
		// 空输入收尾: 整个流一条记录都没有.
		if inst.Count {
			// 计数 "0" 先落盘, 即使后续严格检查要报错.
			buf = append(buf, '0')
			if err := flush(); err != nil {
				return err
			}
		}
		if inst.StrictReturn {
			return fmt.Errorf("%w: no input received", contract.ErrEmptyResult)
		}
		if inst.StrictBounds && len(inst.Selections) > 0 {
			return fmt.Errorf("%w: index (%d) out of bounds, must be between 1 and 0",
				contract.ErrOutOfBounds, inst.Selections[0].Start)
		}
	}

	logger.Debug("collector", "done", zap.Uint64("records", next))
	return flush()
}

// outputTerminator 返回输出记录间的终止字节; 整体模式不追加.
func outputTerminator(mode contract.InputMode) (byte, bool) {
	switch mode {
	case contract.PerLine:
		return '\n', true
	case contract.ZeroTerminated:
		return 0x00, true
	default:
		return 0, false
	}
}

// positionalError 给记录级错误加定位前缀. 序号对外是 1 基的.
func positionalError(mode contract.InputMode, index uint64, err error) error {
	switch mode {
	case contract.PerLine:
		return fmt.Errorf("line %d: %w", index+1, err)
	case contract.ZeroTerminated:
		return fmt.Errorf("record %d: %w", index+1, err)
	default:
		return err
	}
}

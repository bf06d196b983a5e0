// 工作侧: 从批队列领取记录批, 逐条做 切分→选择→重组, 产出结果块.
//
// 首个失败即全局快速失败: 工人把错误连同记录序号发给收集器并触发
// 取消, 其余工人在批间隙观察到取消后停止领取.
package pipeline

import (
	"context"
	"fmt"
	"strconv"

	"splitby/internal/compose"
	"splitby/pkg/contract"
)

// runWorker 领批循环. 取消与队列关闭都会使其退出; 本身不返回错误,
// 记录级失败通过结果块传递.
func runWorker(ctx context.Context, inst *contract.Instructions, sp contract.Splitter, in <-chan []contract.Record, out chan<- contract.ResultChunk, cancel context.CancelFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		case batch, ok := <-in:
			if !ok {
				return
			}
			if len(batch) == 0 {
				continue
			}
			outputs := make([]contract.OutputRecord, 0, len(batch))
			for i := range batch {
				b, err := processRecord(inst, sp, &batch[i])
				if err != nil {
					out <- contract.ResultChunk{Index: batch[i].Index, Err: err}
					cancel()
					return
				}
				outputs = append(outputs, contract.OutputRecord{Bytes: b, HasTerminator: batch[i].HasTerminator})
			}
			out <- contract.ResultChunk{StartIndex: batch[0].Index, Outputs: outputs}
		}
	}
}

// processRecord 对单条记录执行完整变换, 返回重组后的输出字节.
func processRecord(inst *contract.Instructions, sp contract.Splitter, rec *contract.Record) ([]byte, error) {
	seq, err := sp.Split(rec.Bytes)
	if err != nil {
		return nil, err
	}
	n := seq.Len()

	if inst.Count {
		return strconv.AppendInt(nil, int64(n), 10), nil
	}

	if n == 0 {
		// 空单元列表: 字段模式(如 skip-empty 滤掉全部字段)直接产出空输出,
		// 不进入选择解析; 字节/字符模式的空记录才受严格开关约束.
		if inst.SelectionMode == contract.Fields {
			return nil, nil
		}
		if inst.StrictReturn {
			return nil, fmt.Errorf("%w: empty record", contract.ErrEmptyResult)
		}
		if inst.StrictBounds && len(inst.Selections) > 0 {
			return nil, fmt.Errorf("%w: empty record", contract.ErrOutOfBounds)
		}
		return nil, nil
	}

	sels, err := compose.EffectiveSelections(inst, n)
	if err != nil {
		return nil, err
	}
	return compose.Compose(inst, &seq, sels, rec.FieldWidths, rec.JoinWidths)
}

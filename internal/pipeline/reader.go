// 读取侧: 把输入流切成记录, 按字节配额攒批后投入队列.
//
// 记录边界由 InputMode 决定: 按行 ('\n'), 按整体 (不切), 按 NUL 分隔.
// 行模式在剥离 '\n' 后再剥离紧邻的 '\r', 使 CRLF 输入与 LF 输入
// 产出相同的记录内容.
package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"splitby/internal/compose"
	"splitby/internal/config"
	"splitby/pkg/contract"
)

// errStopped: 协作取消的内部信号; 不是失败, 在顶层映射为 nil.
var errStopped = errors.New("pipeline stopped")

// readInput 读完整个输入流, 把记录批投入 out, 返回前由调用方关闭 out.
// 对齐模式需要两遍扫描, 因此会先把全部记录缓存在内存中.
func readInput(ctx context.Context, inst *contract.Instructions, tun config.Tuning, sp contract.Splitter, in io.Reader, out chan<- []contract.Record) error {
	if inst.InputMode == contract.WholeString {
		data, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		rec := contract.Record{Index: 0, Bytes: data, HasTerminator: false}
		return sendBatch(ctx, out, []contract.Record{rec})
	}

	if needsWidthScan(inst) {
		return readAligned(ctx, inst, tun, sp, in, out)
	}

	term := terminator(inst.InputMode)
	br := bufio.NewReaderSize(in, 64*1024)
	b := batcher{ctx: ctx, out: out, quota: tun.BatchQuota}
	var index uint64
	for {
		rec, done, err := readRecord(br, term, inst.InputMode)
		if err != nil {
			return err
		}
		if done {
			break
		}
		rec.Index = index
		index++
		if err := b.add(rec); err != nil {
			return err
		}
	}
	return b.flush()
}

// needsWidthScan 判断是否走两遍扫描路径 (对齐需要全局列宽).
func needsWidthScan(inst *contract.Instructions) bool {
	return inst.Align != contract.AlignNone &&
		inst.SelectionMode == contract.Fields &&
		inst.InputMode == contract.PerLine
}

// readAligned 先读入全部记录并扫描列宽, 再把带宽度的记录成批下发.
func readAligned(ctx context.Context, inst *contract.Instructions, tun config.Tuning, sp contract.Splitter, in io.Reader, out chan<- []contract.Record) error {
	term := terminator(inst.InputMode)
	br := bufio.NewReaderSize(in, 64*1024)
	var records []contract.Record
	for {
		rec, done, err := readRecord(br, term, inst.InputMode)
		if err != nil {
			return err
		}
		if done {
			break
		}
		rec.Index = uint64(len(records))
		records = append(records, rec)
	}

	fieldWidths, joinWidths, err := compose.ScanWidths(inst, sp, records)
	if err != nil {
		return err
	}

	b := batcher{ctx: ctx, out: out, quota: tun.BatchQuota}
	for i := range records {
		records[i].FieldWidths = fieldWidths
		records[i].JoinWidths = joinWidths
		if err := b.add(records[i]); err != nil {
			return err
		}
	}
	return b.flush()
}

// readRecord 读出一条记录. done=true 表示流已耗尽且无残留数据.
// 末尾无终止符的残段仍算一条记录, HasTerminator=false.
func readRecord(br *bufio.Reader, term byte, mode contract.InputMode) (contract.Record, bool, error) {
	data, err := br.ReadBytes(term)
	if err != nil && err != io.EOF {
		if mode == contract.ZeroTerminated {
			return contract.Record{}, false, fmt.Errorf("error while reading: %v", err)
		}
		return contract.Record{}, false, err
	}
	if len(data) == 0 {
		return contract.Record{}, true, nil
	}
	rec := contract.Record{Bytes: data}
	if data[len(data)-1] == term {
		rec.HasTerminator = true
		rec.Bytes = data[:len(data)-1]
		if term == '\n' && len(rec.Bytes) > 0 && rec.Bytes[len(rec.Bytes)-1] == '\r' {
			rec.Bytes = rec.Bytes[:len(rec.Bytes)-1]
		}
	}
	return rec, false, nil
}

// terminator 返回输入模式对应的记录终止字节.
func terminator(mode contract.InputMode) byte {
	if mode == contract.ZeroTerminated {
		return 0x00
	}
	return '\n'
}

// batcher 按字节配额攒批: 累计记录字节数达到 quota 即下发一批.
// 配额按记录内容计, 不含终止符.
type batcher struct {
	ctx   context.Context
	out   chan<- []contract.Record
	quota int

	buf   []contract.Record
	bytes int
}

func (b *batcher) add(rec contract.Record) error {
	b.buf = append(b.buf, rec)
	b.bytes += len(rec.Bytes)
	if b.bytes >= b.quota {
		return b.flush()
	}
	return nil
}

func (b *batcher) flush() error {
	if len(b.buf) == 0 {
		return nil
	}
	batch := b.buf
	b.buf = nil
	b.bytes = 0
	return sendBatch(b.ctx, b.out, batch)
}

func sendBatch(ctx context.Context, out chan<- []contract.Record, batch []contract.Record) error {
	select {
	case out <- batch:
		return nil
	case <-ctx.Done():
		return errStopped
	}
}

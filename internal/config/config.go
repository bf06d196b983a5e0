// Package config 提供运行期调优参数：一次读取，进程生命周期内不变。
// 仅经环境变量调优（SPLITBY_ 前缀），未设置时采用文档化默认值。
package config

import (
	"runtime"

	"github.com/spf13/viper"
)

const (
	// DefaultBatchQuota: reader 批的字节配额。
	DefaultBatchQuota = 128 * 1024
	// DefaultFlushThreshold: collector 输出缓冲的物理写阈值。
	DefaultFlushThreshold = 64 * 1024
	// QueueCapacity: 记录批队列与结果块队列的容量（批数）。
	QueueCapacity = 1024
)

// Tuning: 管线调优旋钮。
type Tuning struct {
	// BatchQuota: SPLITBY_BATCH_QUOTA，默认 128 KiB。
	BatchQuota int
	// FlushThreshold: SPLITBY_OUTPUT_FLUSH，默认 64 KiB。
	FlushThreshold int
	// SingleCore: SPLITBY_SINGLE_CORE 置位时 worker 数强制为 1。
	SingleCore bool
	// QueueCap: 两条有界队列的容量。
	QueueCap int
}

// FromEnv 读取调优环境变量。非法/非正值回落默认。
func FromEnv() Tuning {
	v := viper.New()
	v.SetEnvPrefix("SPLITBY")
	_ = v.BindEnv("batch_quota")
	_ = v.BindEnv("output_flush")
	_ = v.BindEnv("single_core")
	v.SetDefault("batch_quota", DefaultBatchQuota)
	v.SetDefault("output_flush", DefaultFlushThreshold)

	t := Tuning{
		BatchQuota:     v.GetInt("batch_quota"),
		FlushThreshold: v.GetInt("output_flush"),
		// 与原语义一致：变量存在即生效，不解析取值。
		SingleCore: v.IsSet("single_core"),
		QueueCap:   QueueCapacity,
	}
	if t.BatchQuota <= 0 {
		t.BatchQuota = DefaultBatchQuota
	}
	if t.FlushThreshold <= 0 {
		t.FlushThreshold = DefaultFlushThreshold
	}
	return t
}

// Workers 返回 worker 数：max(可用并行度-1, 1)；SingleCore 时恒为 1。
func (t Tuning) Workers() int {
	if t.SingleCore {
		return 1
	}
	n := runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}
	return n
}

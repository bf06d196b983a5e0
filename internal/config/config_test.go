package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// UT-CFG-01: 未设置环境变量时采用默认值
func TestFromEnvDefaults(t *testing.T) {
	tun := FromEnv()
	require.Equal(t, DefaultBatchQuota, tun.BatchQuota, "批配额默认值")
	require.Equal(t, DefaultFlushThreshold, tun.FlushThreshold, "写阈值默认值")
	require.Equal(t, QueueCapacity, tun.QueueCap, "队列容量")
	require.False(t, tun.SingleCore, "单核默认关闭")
}

// UT-CFG-02: 环境变量覆盖
func TestFromEnvOverride(t *testing.T) {
	t.Setenv("SPLITBY_BATCH_QUOTA", "4096")
	t.Setenv("SPLITBY_OUTPUT_FLUSH", "512")
	tun := FromEnv()
	require.Equal(t, 4096, tun.BatchQuota)
	require.Equal(t, 512, tun.FlushThreshold)
}

// UT-CFG-03: 非法/非正值回落默认
func TestFromEnvInvalid(t *testing.T) {
	t.Setenv("SPLITBY_BATCH_QUOTA", "not-a-number")
	t.Setenv("SPLITBY_OUTPUT_FLUSH", "-1")
	tun := FromEnv()
	require.Equal(t, DefaultBatchQuota, tun.BatchQuota)
	require.Equal(t, DefaultFlushThreshold, tun.FlushThreshold)
}

// UT-CFG-04: SPLITBY_SINGLE_CORE 存在即生效, 不解析取值
func TestSingleCorePresence(t *testing.T) {
	t.Setenv("SPLITBY_SINGLE_CORE", "0")
	tun := FromEnv()
	require.True(t, tun.SingleCore, "置位即生效")
	require.Equal(t, 1, tun.Workers(), "单核强制 1 个 worker")
}

// UT-CFG-05: worker 数下界为 1
func TestWorkersFloor(t *testing.T) {
	tun := Tuning{}
	require.GreaterOrEqual(t, tun.Workers(), 1)
}

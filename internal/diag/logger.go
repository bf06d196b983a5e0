// Package diag 提供最小诊断面：结构化日志与错误分类。
// splitby 是管道过滤器，stdout 属于数据流；日志仅在显式开启时写 stderr，
// 默认完全静默。
package diag

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger 为 zap 包装：每次运行携带一个关联 ID；nil 接收者安全（等价关闭）。
type Logger struct {
	z    *zap.Logger
	corr string
}

// FromEnv 按 SPLITBY_LOG（debug|info|warn|error）构建 Logger；
// 未设置或无法解析时返回 nil（关闭日志）。
func FromEnv() *Logger {
	levelText := strings.TrimSpace(os.Getenv("SPLITBY_LOG"))
	if levelText == "" {
		return nil
	}
	level, err := zapcore.ParseLevel(levelText)
	if err != nil {
		level = zapcore.InfoLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return &Logger{
		z:    zap.New(core),
		corr: uuid.NewString(),
	}
}

// Op 记录一次组件操作（info）。
func (l *Logger) Op(component, op string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.z.Info(op, append(l.base(component), fields...)...)
}

// Debug 记录调试细节。
func (l *Logger) Debug(component, op string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.z.Debug(op, append(l.base(component), fields...)...)
}

// Fail 记录组件失败，附分类代码。
func (l *Logger) Fail(component string, err error, fields ...zap.Field) {
	if l == nil {
		return
	}
	base := append(l.base(component),
		zap.String("code", string(Classify(err))),
		zap.Error(err),
	)
	l.z.Error("failed", append(base, fields...)...)
}

// Sync 冲刷底层 sink；退出前调用。
func (l *Logger) Sync() {
	if l == nil {
		return
	}
	_ = l.z.Sync()
}

func (l *Logger) base(component string) []zap.Field {
	return []zap.Field{
		zap.String("corr_id", l.corr),
		zap.String("component", component),
	}
}

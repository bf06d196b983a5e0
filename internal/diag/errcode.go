package diag

import (
	"context"
	"errors"
	"io/fs"

	"splitby/pkg/contract"
)

// Code 是最小错误分类代码。
// 仅用于日志汇总，与退出码解耦。
type Code string

const (
	CodeUnknown   Code = "unknown"
	CodeSelection Code = "selection"
	CodeEncoding  Code = "encoding"
	CodeMatcher   Code = "matcher"
	CodeStrict    Code = "strict"
	CodeOrdering  Code = "ordering"
	CodeIO        Code = "io"
	CodeCancel    Code = "cancel"
)

// Classify 将错误归为最小分类。
// 说明：仅依赖哨兵错误与标准库错误类型，不做字符串匹配。
func Classify(err error) Code {
	if err == nil {
		return CodeUnknown
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return CodeCancel
	}
	if errors.Is(err, contract.ErrInvalidIndex) ||
		errors.Is(err, contract.ErrRangeOrder) ||
		errors.Is(err, contract.ErrOutOfBounds) ||
		errors.Is(err, contract.ErrIndexOverflow) {
		return CodeSelection
	}
	if errors.Is(err, contract.ErrUTF8) {
		return CodeEncoding
	}
	if errors.Is(err, contract.ErrMatcher) {
		return CodeMatcher
	}
	if errors.Is(err, contract.ErrEmptyResult) {
		return CodeStrict
	}
	if errors.Is(err, contract.ErrOrdering) {
		return CodeOrdering
	}
	if errors.Is(err, contract.ErrOpen) {
		return CodeIO
	}
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return CodeIO
	}
	return CodeUnknown
}

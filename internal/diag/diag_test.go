package diag

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"splitby/pkg/contract"
)

// UT-DIA-01: 哨兵错误的分类映射
func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want Code
	}{
		{nil, CodeUnknown},
		{contract.ErrInvalidIndex, CodeSelection},
		{contract.ErrRangeOrder, CodeSelection},
		{contract.ErrOutOfBounds, CodeSelection},
		{contract.ErrIndexOverflow, CodeSelection},
		{contract.ErrUTF8, CodeEncoding},
		{contract.ErrMatcher, CodeMatcher},
		{contract.ErrEmptyResult, CodeStrict},
		{contract.ErrOrdering, CodeOrdering},
		{contract.ErrOpen, CodeIO},
		{context.Canceled, CodeCancel},
		{errors.New("anything"), CodeUnknown},
	}
	for _, tc := range cases {
		if got := Classify(tc.err); got != tc.want {
			t.Fatalf("Classify(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}

// UT-DIA-02: 包装后的错误按链分类
func TestClassifyWrapped(t *testing.T) {
	err := fmt.Errorf("line 3: %w", fmt.Errorf("%w: end index (9)", contract.ErrOutOfBounds))
	if got := Classify(err); got != CodeSelection {
		t.Fatalf("包装错误应按链分类, got %s", got)
	}
	perr := fmt.Errorf("read: %w", &fs.PathError{Op: "open", Path: "x", Err: errors.New("no")})
	if got := Classify(perr); got != CodeIO {
		t.Fatalf("路径错误应归 IO, got %s", got)
	}
}

// UT-DIA-03: 空 Logger 的方法全部安全
func TestNilLoggerSafe(t *testing.T) {
	var l *Logger
	l.Op("c", "op")
	l.Debug("c", "op")
	l.Fail("c", errors.New("x"))
	l.Sync()
}

// UT-DIA-04: 未设 SPLITBY_LOG 时保持静默 (返回空 Logger)
func TestFromEnvSilent(t *testing.T) {
	t.Setenv("SPLITBY_LOG", "")
	if l := FromEnv(); l != nil {
		t.Fatalf("未设级别应静默")
	}
}

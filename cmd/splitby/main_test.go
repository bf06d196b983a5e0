package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"splitby/internal/config"
	"splitby/internal/diag"
	"splitby/pkg/contract"
)

// UT-MAIN-01: 用法错误退出码 2
func TestRunUsageError(t *testing.T) {
	if code := run([]string{"--bogus"}); code != 2 {
		t.Fatalf("用法错误应退出 2, got %d", code)
	}
	if code := run([]string{"2"}); code != 2 {
		t.Fatalf("缺分隔符应退出 2, got %d", code)
	}
}

// UT-MAIN-02: 打开输入/创建输出失败退出码 2
func TestRunOpenFail(t *testing.T) {
	dir := t.TempDir()
	code := run([]string{"-i", filepath.Join(dir, "absent"), "-d", ",", "1"})
	if code != 2 {
		t.Fatalf("打开失败应退出 2, got %d", code)
	}
	in := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(in, []byte("a,b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code = run([]string{"-i", in, "-o", filepath.Join(dir, "no-such-dir", "out"), "-d", ",", "1"})
	if code != 2 {
		t.Fatalf("创建失败应退出 2, got %d", code)
	}
}

// UT-MAIN-03: 端到端: 文件进文件出
func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(in, []byte("apple,banana,plum,cherry\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := run([]string{"-i", in, "-o", out, "-d", ",", "2"}); code != 0 {
		t.Fatalf("应成功, got %d", code)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "banana\n" {
		t.Fatalf("输出不符: %q", b)
	}
}

// UT-MAIN-04: 运行期错误退出码 1
func TestRunRuntimeError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(in, []byte("a,b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code := run([]string{"-i", in, "-o", filepath.Join(dir, "out"), "-d", ",", "--strict-bounds", "9"})
	if code != 1 {
		t.Fatalf("运行期错误应退出 1, got %d", code)
	}
}

// UT-MAIN-05: 管线错误映射可经桩件验证
func TestRunPipelineStub(t *testing.T) {
	orig := pipelineRun
	defer func() { pipelineRun = orig }()
	pipelineRun = func(ctx context.Context, inst *contract.Instructions, tun config.Tuning, in io.Reader, out io.Writer, logger *diag.Logger) error {
		return errors.New("boom")
	}
	if code := run([]string{"-b", "1"}); code != 1 {
		t.Fatalf("管线错误应退出 1, got %d", code)
	}
}

// UT-MAIN-06: 帮助与版本退出码 0
func TestRunHelpVersion(t *testing.T) {
	if code := run([]string{"--help"}); code != 0 {
		t.Fatalf("帮助应退出 0, got %d", code)
	}
	if code := run([]string{"-v"}); code != 0 {
		t.Fatalf("版本应退出 0, got %d", code)
	}
}

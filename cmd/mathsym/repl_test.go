package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/mathsym"
	"github.com/npillmayer/mathsym/config"
	"github.com/npillmayer/mathsym/engine"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T) *engine.Engine {
	e, err := engine.New(config.Default())
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestIntpCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.cli")
	defer teardown()
	//
	intp := &Intp{engine: testEngine(t)}
	ctx := context.Background()
	for _, c := range []struct {
		line string
		fail bool
	}{
		{"", false},
		{"2*x+3=7", false},
		{"2+*3", true},
		{"x/0", true},
		{":ast (x+1)*2", false},
		{":ast (x+", true},
		{":table", false},
		{":nope", true},
	} {
		quit, err := intp.Eval(ctx, c.line)
		assert.False(t, quit, c.line)
		assert.Equal(t, c.fail, err != nil, "%q: unexpected error state %v", c.line, err)
	}
	quit, err := intp.Eval(ctx, "  exit ")
	assert.True(t, quit)
	assert.NoError(t, err)
}

func TestUnderline(t *testing.T) {
	assert.Equal(t, "1 + x/0\n    ^^^", underline("1 + x/0", mathsym.Span{4, 7}))
	assert.Equal(t, "x\n^", underline("x", mathsym.Span{0, 5}))
	assert.Equal(t, "x", underline("x", mathsym.Span{3, 3}))
}

func TestDirect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.cli")
	defer teardown()
	//
	intp := &Intp{engine: testEngine(t)}
	intp.Direct(context.Background(), strings.NewReader("1+1\n\nx/0\nexit\n2\n"))
}

func TestRunFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.cli")
	defer teardown()
	//
	e := testEngine(t)
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("1+1\n\nx^2-1=0\n"), 0644))
	assert.Equal(t, ExitSuccess, runFile(context.Background(), e, good))
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1+1\nx/0\n"), 0644))
	assert.Equal(t, ExitBatchError, runFile(context.Background(), e, bad))
	assert.Equal(t, ExitInitError, runFile(context.Background(), e, filepath.Join(dir, "missing.txt")))
}

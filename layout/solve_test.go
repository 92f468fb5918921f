package layout

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_PreservesOrderAndIsolatesFailures(t *testing.T) {
	boards := []Billboard{
		mustBillboard(t, 20, 6, "hacker cup"),
		{Width: 10, Height: 10}, // 没有单词
		mustBillboard(t, 100, 20, "Hack your way to the cup"),
		{Width: -3, Height: 10, WordLengths: []int{2}},
	}

	res, err := Solve(context.Background(), boards, SolveOptions{Workers: 2})
	require.NoError(t, err)
	require.Len(t, res.Cases, 4)
	assert.Equal(t, 2, res.Solved)
	assert.Equal(t, 2, res.Failed)

	for i, c := range res.Cases {
		assert.Equal(t, i+1, c.Case)
	}

	assert.True(t, res.Cases[0].OK())
	assert.Equal(t, 3, res.Cases[0].FontSize)
	assert.Len(t, res.Cases[0].Lines, 2)

	assert.False(t, res.Cases[1].OK())
	assert.True(t, errors.Is(res.Cases[1].Err, ErrNoWords))
	assert.Equal(t, "layout: max font: billboard has no words", res.Cases[1].Error)

	assert.Equal(t, 7, res.Cases[2].FontSize)

	assert.False(t, res.Cases[3].OK())
	assert.Contains(t, res.Cases[3].Error, "invalid billboard")
}

func TestSolve_ZeroFontHasNoLines(t *testing.T) {
	res, err := Solve(context.Background(), []Billboard{mustBillboard(t, 3, 100, "long")}, SolveOptions{})
	require.NoError(t, err)
	require.True(t, res.Cases[0].OK())
	assert.Equal(t, 0, res.Cases[0].FontSize)
	assert.Empty(t, res.Cases[0].Lines)
}

func TestSolve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Solve(ctx, []Billboard{mustBillboard(t, 20, 6, "hacker cup")}, SolveOptions{Workers: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWriteDebugJSON(t *testing.T) {
	res, err := Solve(context.Background(), []Billboard{
		mustBillboard(t, 20, 6, "hacker cup"),
		{Width: 1, Height: 1},
	}, SolveOptions{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "debug.json")
	require.NoError(t, WriteDebugJSON(res, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"fontSize": 3`)
	assert.Contains(t, out, `"wordLengths": [`)
	assert.True(t, strings.Contains(out, `"error": "layout: max font: billboard has no words"`), out)
}

package report

import (
	"bytes"
	"io"
	"numstat/pkg/meanval"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, meanval.Summary{Median: 5, Mean: 8, Mode: 5, ModeCount: 3}))
	assert.Equal(t, "\n\n中位数: 5\n平均数: 8\n众数: 5 数量: 3\n", buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, io.ErrShortWrite }

func TestWriteFailure(t *testing.T) {
	assert.ErrorIs(t, Write(brokenWriter{}, meanval.Summary{}), io.ErrShortWrite)
}

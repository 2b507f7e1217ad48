package tag

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag(t *testing.T) {
	buf := &bytes.Buffer{}
	tg := New(buf, "a", "b")

	assert.Equal(t, "[a][b] x", tg.T("x"))

	tg.Log("read %v values", 3)
	assert.Regexp(t, `\[a\]\[b\] read 3 values\n$`, buf.String())

	assert.EqualError(t, tg.Errorf("failed: %v", 1), "[a][b] failed: 1")

	inner := errors.New("inner")
	err := tg.Error(inner)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "[a][b] inner", err.Error())
}

func TestNewRun(t *testing.T) {
	buf := &bytes.Buffer{}
	NewRun(buf, "numstat").Log("started")

	m := regexp.MustCompile(`\[numstat\]\[([0-9a-f-]+)\] started`).FindStringSubmatch(buf.String())
	require.Len(t, m, 2)
	_, err := uuid.Parse(m[1])
	assert.NoError(t, err)
}

func TestFatal(t *testing.T) {
	buf := &bytes.Buffer{}
	tg := New(buf, "numstat")
	code := -1
	tg.exit = func(c int) { code = c }

	tg.Fatal(errors.New("stdin closed"))
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "[numstat] stdin closed")
}

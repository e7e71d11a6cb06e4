package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sim.txt")
	l := New(path)
	l.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.Local) }

	l.Log("frame skipped")
	l.Logf("bounce body=%d wall=%s", 2, "left")

	want := []string{
		"[2026-03-04 05:06:07] frame skipped",
		"[2026-03-04 05:06:07] bounce body=2 wall=left",
	}
	assert.Equal(t, want, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(want, "\n")+"\n", string(data))
}

func TestLoggerMemoryOnly(t *testing.T) {
	l := New("")
	l.Log("a")
	assert.Len(t, l.Lines(), 1)
}

func TestLoggerTail(t *testing.T) {
	l := New("")
	l.now = func() time.Time { return time.Time{} }
	for _, s := range []string{"a", "b", "c"} {
		l.Log(s)
	}

	tail := l.Tail(2)
	require.Len(t, tail, 2)
	assert.True(t, strings.HasSuffix(tail[0], " b"))
	assert.True(t, strings.HasSuffix(tail[1], " c"))
	assert.Len(t, l.Tail(10), 3)
	assert.Nil(t, l.Tail(0))
}

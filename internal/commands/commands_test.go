package commands

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	r := NewRegistry()

	fs := flag.NewFlagSet("headless", flag.ContinueOnError)
	frames := fs.Int("frames", 1, "")
	var gotFrames int
	var gotArgs []string
	r.Register("headless", "run without a display", fs, func(args []string) error {
		gotFrames = *frames
		gotArgs = args
		return nil
	})

	boom := errors.New("boom")
	r.Register("tui", "terminal view", flag.NewFlagSet("tui", flag.ContinueOnError), func([]string) error { return boom })

	require.NoError(t, r.Execute([]string{"headless", "-frames", "12", "extra"}))
	assert.Equal(t, 12, gotFrames)
	assert.Equal(t, []string{"extra"}, gotArgs)

	assert.ErrorIs(t, r.Execute([]string{"tui"}), boom)
	assert.EqualError(t, r.Execute(nil), "missing subcommand")
	assert.EqualError(t, r.Execute([]string{"paint"}), "unknown command: paint")

	fs.SetOutput(&bytes.Buffer{})
	assert.Error(t, r.Execute([]string{"headless", "-nope"}))
}

func TestUsage(t *testing.T) {
	r := NewRegistry()
	r.Register("window", "raylib window", flag.NewFlagSet("window", flag.ContinueOnError), nil)
	r.Register("headless", "no display", flag.NewFlagSet("headless", flag.ContinueOnError), nil)

	assert.Equal(t, []string{"headless", "window"}, r.Names())

	var buf bytes.Buffer
	r.Usage(&buf)
	assert.Equal(t, "  headless   no display\n  window     raylib window\n", buf.String())
}

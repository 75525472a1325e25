//go:build linux

package terminal

import (
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestRawModeOnPty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	fd := int(tty.Fd())
	before, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	require.NoError(t, err)
	require.NotZero(t, before.Lflag&unix.ICANON, "pty starts in canonical mode")

	err = WithRawMode(NewController(fd), func(*Session) error {
		during, err := unix.IoctlGetTermios(fd, unix.TCGETS)
		require.NoError(t, err)
		assert.Zero(t, during.Lflag&unix.ICANON)
		assert.Zero(t, during.Lflag&unix.ECHO)
		return nil
	})
	require.NoError(t, err)

	after, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	require.NoError(t, err)
	assert.Equal(t, before.Lflag, after.Lflag)
	assert.Equal(t, before.Iflag, after.Iflag)
	assert.Equal(t, before.Oflag, after.Oflag)
}

func TestRawReaderOnPty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	err = WithRawMode(NewController(int(tty.Fd())), func(*Session) error {
		_, err := ptmx.Write([]byte("\x1b[A"))
		require.NoError(t, err)

		r := NewReader(tty, DefaultPollInterval)
		var got []byte
		for len(got) < 3 {
			b, err := r.ReadByte()
			require.NoError(t, err)
			got = append(got, b)
		}
		assert.Equal(t, []byte("\x1b[A"), got)
		return nil
	})
	require.NoError(t, err)
}

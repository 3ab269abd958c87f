package progress

// SPDX-FileCopyrightText: The rscodec Authors

// Terminal progress rendering for the rsencode/rsdecode drivers. The
// width probe follows ptt.go's unix.IoctlGet* pattern (TIOCMGET there,
// TIOCGWINSZ here); when the output is not a terminal, or the ioctl fails,
// the bar falls back to periodic plain log lines instead of carriage
// returns.

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Bar renders a progress bar redrawn in place with a carriage return on
// an io.Writer, or periodic status lines when the writer is not a
// terminal.
type Bar struct {
	w          io.Writer
	total      int
	isTerminal bool
	lastPct    int
}

// New creates a Bar for total units of work, writing to w. Terminal
// detection applies when w is an *os.File (os.Stdout, os.Stderr, ...);
// any other writer is treated as non-TTY.
func New(w io.Writer, total int) *Bar {
	return &Bar{w: w, total: total, isTerminal: isTerminal(w), lastPct: -1}
}

// isTerminal reports whether w is a terminal by probing TIOCGWINSZ, the
// same ioctl family ptt.go uses for modem control lines.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	_, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

// termWidth returns the terminal column count, or a sane default when it
// cannot be determined.
func termWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 80
	}
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 80
	}
	return int(ws.Col)
}

// Update reports that done of total units have completed. On a terminal
// it redraws an in-place bar; otherwise it logs whenever the percentage
// crosses a 10% boundary, to avoid flooding a redirected log file.
func (b *Bar) Update(done int) {
	if b.total <= 0 {
		return
	}
	pct := done * 100 / b.total

	if b.isTerminal {
		width := termWidth(b.w) - 10
		if width < 10 {
			width = 10
		}
		filled := width * done / b.total
		fmt.Fprintf(b.w, "\r[%s%s] %3d%%", repeat('#', filled), repeat('-', width-filled), pct)
		return
	}

	if pct/10 != b.lastPct/10 {
		fmt.Fprintf(b.w, "progress: %d/%d (%d%%)\n", done, b.total, pct)
	}
	b.lastPct = pct
}

// Done finalizes the bar, moving to a fresh line on a terminal.
func (b *Bar) Done() {
	if b.isTerminal {
		fmt.Fprintln(b.w)
	}
}

func repeat(c byte, n int) string {
	if n < 0 {
		n = 0
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = c
	}
	return string(buf)
}

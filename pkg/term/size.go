package term

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// Size is the terminal text grid in character cells.
type Size struct {
	Cols int
	Rows int
}

// Fits reports whether the terminal can hold a cols x rows frame.
func (s Size) Fits(cols, rows int) bool {
	return s.Cols >= cols && s.Rows >= rows
}

// DetectSize returns the terminal dimensions. It tries TIOCGWINSZ on
// stdout then stderr, falls back to COLUMNS/LINES, and finally to 80x24.
func DetectSize() Size {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if s := sizeFromIoctl(fd); s.Cols > 0 && s.Rows > 0 {
			return s
		}
	}
	return sizeFromEnv()
}

func sizeFromIoctl(fd uintptr) Size {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}
	}
	return Size{Cols: int(ws.Col), Rows: int(ws.Row)}
}

func sizeFromEnv() Size {
	return Size{
		Cols: envInt("COLUMNS", 80),
		Rows: envInt("LINES", 24),
	}
}

// envInt reads a positive integer from the environment, with a fallback
// for unset or malformed values.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

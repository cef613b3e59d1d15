// Package input reads key presses from the terminal and maps them to
// high-level actions.
package input

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin is not an interactive terminal
var ErrNotTerminal = errors.New("input: stdin is not a terminal")

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// CSI (ESC [) and SS3 (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// ReadKey puts the terminal into raw mode, waits for one key press and
// returns its code. Arrow keys map to "arrow_*" codes, Ctrl+C to "quit" and
// printable keys to themselves.
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNotTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	b, err := readByte()
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}

	switch {
	case b == 0x1b:
		return tryReadArrowKey(b), nil
	case b == 3:
		return "quit", nil
	case b == '\n' || b == '\r':
		return "enter", nil
	case b >= 32 && b < 127:
		return string(b), nil
	}
	return "", nil
}

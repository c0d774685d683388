package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const macosClearCmd = "clear"

// TerminalRenderer writes rendered glyph rows to a terminal
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display prints the rows produced by Grid.Render
func (r *TerminalRenderer) Display(rows []string) {
	for _, row := range rows {
		fmt.Fprintln(r.Out, row)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}

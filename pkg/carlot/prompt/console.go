package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const question = "Is this the correct price? (y/n): "

// Console asks for confirmation on a terminal-like reader/writer pair.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Confirm prints msg and the question, then reads one line. Only "y" accepts.
func (c *Console) Confirm(ctx context.Context, msg string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := fmt.Fprintf(c.out, "%s\n%s", msg, question); err != nil {
		return false, err
	}

	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

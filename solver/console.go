package solver

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// console drives the solver's interactive text console: write one command
// line, read everything the solver prints back until it re-issues its prompt.
type console struct {
	in  io.Writer
	out *bufio.Reader
	log *zap.Logger
}

func newConsole(in io.Writer, out io.Reader, log *zap.Logger) *console {
	return &console{
		in:  in,
		out: bufio.NewReader(out),
		log: log,
	}
}

const prompt = "> "

// waitPrompt consumes output up to and including the next prompt and returns
// the text that preceded it.
func (c *console) waitPrompt() (string, error) {
	var buf bytes.Buffer
	for {
		b, err := c.out.ReadByte()
		if err != nil {
			if err == io.EOF && buf.Len() > 0 {
				return "", fmt.Errorf("solver console closed mid-reply: %q", buf.String())
			}
			return "", fmt.Errorf("reading solver console: %w", err)
		}
		buf.WriteByte(b)
		if promptReached(buf.Bytes()) {
			reply := strings.TrimSuffix(buf.String(), prompt)
			return strings.TrimRight(reply, "\n"), nil
		}
	}
}

// The prompt counts only at the start of the stream or of a line, so a "> "
// inside an expression definition echoed back does not terminate the read.
func promptReached(b []byte) bool {
	if !bytes.HasSuffix(b, []byte(prompt)) {
		return false
	}
	if len(b) == len(prompt) {
		return true
	}
	return b[len(b)-len(prompt)-1] == '\n'
}

// command sends one line and returns the solver's reply text.
func (c *console) command(line string) (string, error) {
	c.log.Debug("console command", zap.String("cmd", line))
	if _, err := fmt.Fprintln(c.in, line); err != nil {
		return "", fmt.Errorf("writing to solver console: %w", err)
	}
	reply, err := c.waitPrompt()
	if err != nil {
		return "", err
	}
	c.log.Debug("console reply", zap.String("reply", reply))
	if i := strings.Index(reply, "Error:"); i >= 0 {
		return reply, fmt.Errorf("solver rejected %q: %s", line, strings.TrimSpace(reply[i:]))
	}
	return reply, nil
}

package solver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestConsolePrompt(t *testing.T) {
	log := zap.NewNop()
	{ // Banner then first prompt
		out := strings.NewReader("Welcome to the solver\nbuild 24.1\n> ")
		c := newConsole(&bytes.Buffer{}, out, log)
		banner, err := c.waitPrompt()
		assert.NoError(t, err)
		assert.Contains(t, banner, "Welcome to the solver")
	}
	{ // Command reply stops at the next line-initial prompt
		in := &bytes.Buffer{}
		out := strings.NewReader("5  wall-heater  wall\n> ")
		c := newConsole(in, out, log)
		reply, err := c.command("/define/boundary-conditions/list-zones")
		assert.NoError(t, err)
		assert.Equal(t, "/define/boundary-conditions/list-zones\n", in.String())
		assert.Equal(t, "5  wall-heater  wall", reply)
	}
	{ // A "> " inside reply text does not terminate the read
		out := strings.NewReader("emiss = a > b ? 1 : 0\n> ")
		c := newConsole(&bytes.Buffer{}, out, log)
		reply, err := c.waitPrompt()
		assert.NoError(t, err)
		assert.Equal(t, "emiss = a > b ? 1 : 0", reply)
	}
	{ // Solver-side errors surface
		out := strings.NewReader("Error: invalid zone name\n> ")
		c := newConsole(&bytes.Buffer{}, out, log)
		_, err := c.command("/file/read-case \"missing.cas\"")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid zone name")
	}
	{ // Stream ending without a prompt is an error
		out := strings.NewReader("partial output")
		c := newConsole(&bytes.Buffer{}, out, log)
		_, err := c.waitPrompt()
		assert.Error(t, err)
	}
}

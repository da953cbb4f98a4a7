package solver

import (
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// LaunchOptions describes how the external solver process is started.
type LaunchOptions struct {
	Executable string // solver binary, e.g. "fluent" or an absolute path
	Precision  string // "double" or "single"
	Cores      int
	ShowGUI    bool
}

func (o LaunchOptions) args() ([]string, error) {
	var dim string
	switch o.Precision {
	case "", "double":
		dim = "3ddp"
	case "single":
		dim = "3d"
	default:
		return nil, fmt.Errorf("unknown precision %q: want \"double\" or \"single\"", o.Precision)
	}
	cores := o.Cores
	if cores < 1 {
		cores = 1
	}
	args := []string{dim, fmt.Sprintf("-t%d", cores)}
	if !o.ShowGUI {
		// -g suppresses the GUI and keeps the console on stdin/stdout
		args = append(args, "-g")
	}
	return args, nil
}

// Launch starts the solver in solver mode and blocks until its console is
// ready to accept commands.
func Launch(opts LaunchOptions, log *zap.Logger) (*Client, error) {
	args, err := opts.args()
	if err != nil {
		return nil, err
	}
	exe := opts.Executable
	if exe == "" {
		exe = "fluent"
	}
	log.Info("launching solver",
		zap.String("executable", exe),
		zap.Strings("args", args))

	proc := exec.Command(exe, args...)
	proc.Stderr = os.Stderr
	stdin, err := proc.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("opening solver stdin: %w", err)
	}
	stdout, err := proc.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("opening solver stdout: %w", err)
	}
	if err = proc.Start(); err != nil {
		return nil, fmt.Errorf("starting solver %q: %w", exe, err)
	}

	client := &Client{
		con:  newConsole(stdin, stdout, log),
		proc: proc,
		log:  log,
	}
	// The solver prints a banner and then its first prompt.
	if _, err = client.con.waitPrompt(); err != nil {
		_ = proc.Process.Kill()
		return nil, fmt.Errorf("waiting for solver startup: %w", err)
	}
	log.Info("solver ready")
	return client, nil
}

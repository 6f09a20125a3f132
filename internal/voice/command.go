package voice

import (
	"bufio"
	"os/exec"
	"sync"

	"go.uber.org/zap"

	"github.com/MauriDarwoft/biblioteca/internal/log"
)

// CommandRecognizer runs a user-configured transcriber command and treats
// the first line it prints as the transcript. The command exiting, for any
// reason, ends the capture.
type CommandRecognizer struct {
	command string

	mu  sync.Mutex
	cmd *exec.Cmd
}

var _ Recognizer = (*CommandRecognizer)(nil)

// NewCommandRecognizer builds a recognizer around a shell command line.
func NewCommandRecognizer(command string) *CommandRecognizer {
	return &CommandRecognizer{command: command}
}

// Start launches the transcriber. result and end are called from a
// background goroutine once the command produces output or exits.
func (r *CommandRecognizer) Start(result func(string), end func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cmd != nil {
		return nil // capture already running
	}

	cmd := exec.Command("sh", "-c", r.command)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	r.cmd = cmd

	go func() {
		scanner := bufio.NewScanner(stdout)
		transcript := ""
		if scanner.Scan() {
			transcript = scanner.Text()
		}
		if err := cmd.Wait(); err != nil {
			log.Warn("transcriber command failed", zap.String("command", r.command), zap.Error(err))
		}

		r.mu.Lock()
		r.cmd = nil
		r.mu.Unlock()

		if transcript != "" {
			result(transcript)
		}
		end()
	}()
	return nil
}

// Stop kills a running transcriber; the reader goroutine then fires end.
func (r *CommandRecognizer) Stop() {
	r.mu.Lock()
	cmd := r.cmd
	r.mu.Unlock()
	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
}

package bcalc

import (
	"errors"
	"os"
	"os/exec"

	"github.com/google/shlex"
)

// CommandLine returns the argv to run for the review push: the configured
// command split shell-style when set, else git push to the review ref.
func (c *ReviewConfig) CommandLine() ([]string, error) {
	if c.Command != "" {
		return shlex.Split(c.Command)
	}
	return []string{"git", "push", c.Remote, "HEAD:" + c.Branch}, nil
}

// PushForReview runs the review push command, streaming its output to the
// terminal. It reports only overall success or failure and shares no state
// with evaluation.
func PushForReview(config *Config) error {
	argv, err := config.Review.CommandLine()
	if err != nil {
		return err
	}
	if len(argv) == 0 {
		return errors.New("empty review command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

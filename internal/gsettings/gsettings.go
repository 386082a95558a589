// Package gsettings reads and writes the GNOME Shell favorites list by
// shelling out to the gsettings utility.
package gsettings

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/wethinkt/gnomefavs/internal/debuglog"
)

const (
	// DefaultCommand is the settings utility looked up in PATH.
	DefaultCommand = "gsettings"
	// Schema holds the favorites key.
	Schema = "org.gnome.shell"
	// Key is the favorites key inside Schema.
	Key = "favorite-apps"
)

// ErrCommand is matched by every failure to run the settings utility.
var ErrCommand = errors.New("command execution failed")

// Bridge gets and sets the live favorites list.
type Bridge interface {
	// Get returns the current favorites exactly as the utility prints them,
	// with surrounding whitespace removed.
	Get(ctx context.Context) (string, error)
	// Set replaces the favorites with ids.
	Set(ctx context.Context, ids []string) error
}

// CommandError describes a failed invocation of the settings utility.
type CommandError struct {
	Args   []string // Full command line
	Err    error    // *exec.ExitError, exec.ErrNotFound, ...
	Stderr string   // Trimmed standard error, if any
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is reports ErrCommand so callers need not know the concrete type.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommand
}

// Client is the Bridge backed by the real gsettings binary.
type Client struct {
	// Command is the executable to run. Empty means DefaultCommand.
	Command string
}

// NewClient returns a client for the gsettings found in PATH.
func NewClient() *Client {
	return &Client{Command: DefaultCommand}
}

// Get runs `gsettings get org.gnome.shell favorite-apps`.
func (c *Client) Get(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "get", Schema, Key)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Set runs `gsettings set org.gnome.shell favorite-apps <list>`.
func (c *Client) Set(ctx context.Context, ids []string) error {
	_, err := c.run(ctx, "set", Schema, Key, FormatList(ids))
	return err
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	name := c.Command
	if name == "" {
		name = DefaultCommand
	}
	argv := append([]string{name}, args...)
	defer debuglog.Log.Timed(strings.Join(argv, " "))()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cerr := &CommandError{Args: argv, Err: err, Stderr: strings.TrimSpace(stderr.String())}
		debuglog.Log.Error("settings command failed", "err", cerr)
		return "", cerr
	}
	return stdout.String(), nil
}

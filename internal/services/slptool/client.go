package slptool

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"slipstats/internal/replay"
	"slipstats/internal/services"
)

// DefaultArgs precede the replay path on every invocation.
var DefaultArgs = []string{"-f", "json"}

// Client runs the decoding tool. The zero value uses "slp" with no timeout.
type Client struct {
	Binary  string
	Timeout time.Duration
}

// New constructs a client for binary with a per-file timeout. A zero timeout
// disables the limit.
func New(binary string, timeout time.Duration) *Client {
	return &Client{Binary: binary, Timeout: timeout}
}

// Decode executes the tool against path and maps its output. Each call runs a
// separate process, so Decode is safe for concurrent use.
func (c *Client) Decode(ctx context.Context, path string) (*replay.Match, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, services.Wrap(services.ErrConfiguration, "slp", "decode", "empty path", nil)
	}
	binary := "slp"
	if c != nil && strings.TrimSpace(c.Binary) != "" {
		binary = strings.TrimSpace(c.Binary)
	}
	if c != nil && c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := append(append([]string(nil), DefaultArgs...), path)
	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, services.Wrap(services.ErrTimeout, "slp", "decode", path, ctxErr)
		}
		return nil, services.Wrap(services.ErrExternalTool, "slp", "decode", strings.TrimSpace(stderr.String()), err)
	}

	match, err := Parse(stdout.Bytes())
	if err != nil {
		return nil, err
	}
	match.Path = path
	return match, nil
}

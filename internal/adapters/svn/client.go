package svn

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
)

var ErrUnavailable = errors.New("svn command unavailable")

// status lines carry seven state columns and a space before the path.
const statusPathColumn = 8

type runFunc func(ctx context.Context, args ...string) (stdout string, stderr string, err error)

// Client drives the svn command line client.
type Client struct {
	run runFunc
}

var _ ports.VersionControl = (*Client)(nil)

func NewClient() *Client {
	return &Client{run: runSVNCommand}
}

func (c *Client) Info(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := c.run(ctx, "info", "--non-interactive", path)
	if err != nil {
		return formatError("info", path, err, stderr)
	}
	return nil
}

func (c *Client) Status(ctx context.Context, path string) ([]domain.SVNStatusEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stdout, stderr, err := c.run(ctx, "status", "--non-interactive", path)
	if err != nil {
		return nil, formatError("status", path, err, stderr)
	}

	return parseStatus(stdout), nil
}

func (c *Client) Add(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := c.run(ctx, "add", "--non-interactive", "--parents", path)
	if err != nil {
		return formatError("add", path, err, stderr)
	}
	return nil
}

func (c *Client) Update(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := c.run(ctx, "update", "--non-interactive", path)
	if err != nil {
		return formatError("update", path, err, stderr)
	}
	return nil
}

func (c *Client) Commit(ctx context.Context, message string, paths []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(paths) == 0 {
		return domain.ErrNothingToCommit
	}

	args := append([]string{"commit", "--non-interactive", "-m", message, "--"}, paths...)
	_, stderr, err := c.run(ctx, args...)
	if err != nil {
		return formatError("commit", strings.Join(paths, " "), err, stderr)
	}
	return nil
}

func parseStatus(output string) []domain.SVNStatusEntry {
	entries := make([]domain.SVNStatusEntry, 0)

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) <= statusPathColumn || strings.HasPrefix(line, "Performing status") {
			continue
		}

		path := strings.TrimSpace(line[statusPathColumn:])
		if path == "" {
			continue
		}
		entries = append(entries, domain.SVNStatusEntry{
			Path:  path,
			State: domain.SVNStateFromCode(line[0]),
		})
	}

	return entries
}

func runSVNCommand(ctx context.Context, args ...string) (string, string, error) {
	path, err := exec.LookPath("svn")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate svn command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, path string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("svn %s %s: %w", op, path, err)
	}

	return fmt.Errorf("svn %s %s: %w: %s", op, path, err, stderr)
}

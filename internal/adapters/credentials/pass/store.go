// Package pass keeps credentials in the user's password-store under the
// ashell/ prefix.
package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
)

var ErrUnavailable = errors.New("pass command unavailable")

const entryPrefix = "ashell/"

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

type Store struct {
	run runFunc
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPassCommand}
}

func (s *Store) Put(ctx context.Context, name string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry, err := entryName(name)
	if err != nil {
		return err
	}
	_, stderr, err := s.run(ctx, value+"\n", "insert", "--multiline", "--force", entry)
	if err != nil {
		return formatError("insert", entry, err, stderr)
	}
	return nil
}

// Get returns the first line of the entry.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	entry, err := entryName(name)
	if err != nil {
		return "", err
	}
	stdout, stderr, err := s.run(ctx, "", "show", entry)
	if err != nil {
		if strings.Contains(stderr, "is not in the password store") {
			return "", fmt.Errorf("%w: %s", domain.ErrCredentialMissing, name)
		}
		return "", formatError("show", entry, err, stderr)
	}

	line, _, _ := strings.Cut(stdout, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry, err := entryName(name)
	if err != nil {
		return err
	}
	_, stderr, err := s.run(ctx, "", "rm", "--force", entry)
	if err != nil {
		if strings.Contains(stderr, "is not in the password store") {
			return nil
		}
		return formatError("rm", entry, err, stderr)
	}
	return nil
}

func entryName(name string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(name), "/")
	if trimmed == "" {
		return "", errors.New("credential name is empty")
	}
	return entryPrefix + trimmed, nil
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, entry string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %s: %w", op, entry, err)
	}
	return fmt.Errorf("pass %s %s: %w: %s", op, entry, err, stderr)
}

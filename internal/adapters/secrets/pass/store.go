package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports"
)

var ErrUnavailable = errors.New("pass command unavailable")

const notInStore = "is not in the password store"

type runFunc func(ctx context.Context, stdin string, args ...string) (stdout string, stderr string, err error)

// Store shells out to pass(1). Wallet keys are stored as single-line entries.
type Store struct {
	run runFunc
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPass}
}

func (s *Store) Put(ctx context.Context, ref string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, stderr, err := s.run(ctx, value+"\n", "insert", "--multiline", "--force", ref); err != nil {
		return wrapError("insert", ref, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, "", "show", ref)
	if err != nil {
		return "", wrapError("show", ref, err, stderr)
	}

	// pass show prints every line of the entry; only the first holds the key.
	first, _, _ := strings.Cut(stdout, "\n")
	return strings.TrimSuffix(first, "\r"), nil
}

func (s *Store) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, "", "rm", "--force", ref)
	if err != nil && !strings.Contains(stderr, notInStore) {
		return wrapError("rm", ref, err, stderr)
	}

	return nil
}

func runPass(ctx context.Context, stdin string, args ...string) (string, string, error) {
	bin, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func wrapError(op string, ref string, err error, stderr string) error {
	if strings.Contains(stderr, notInStore) {
		return fmt.Errorf("pass %s %q: %w", op, ref, domain.ErrSecretNotFound)
	}
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, ref, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, ref, err, stderr)
}

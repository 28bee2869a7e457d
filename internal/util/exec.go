package util

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/markusressel/spiro2go/internal/ui"
)

var ErrCommandTimeout = errors.New("command timed out")

// SafeCmdExecution runs an executable that passed CheckFilePermissionsForExecution
// and returns its trimmed stdout.
func SafeCmdExecution(executable string, args []string, timeout time.Duration) (string, error) {
	if _, err := CheckFilePermissionsForExecution(executable); err != nil {
		return "", fmt.Errorf("cannot execute %s: %w", executable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, executable, args...)
	out, err := cmd.Output()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		ui.Warning("Command timed out: %s", executable)
		return "", fmt.Errorf("%s: %w", executable, ErrCommandTimeout)
	}

	if err != nil {
		ui.Debug("Command failed to execute: %s: %v", executable, err)
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}

// ReplacePlaceholder returns a copy of args with every occurrence of placeholder replaced by value
func ReplacePlaceholder(args []string, placeholder string, value string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		result[i] = strings.ReplaceAll(arg, placeholder, value)
	}
	return result
}

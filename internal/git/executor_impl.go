package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/dev-shetty/easydiff/internal/log"
)

// Compile-time check that RealExecutor implements Executor.
var _ Executor = (*RealExecutor)(nil)

// RealExecutor implements Executor by executing actual git commands.
type RealExecutor struct {
	workDir string
}

// NewRealExecutor creates an executor that runs git in workDir.
// An empty workDir uses the process working directory.
func NewRealExecutor(workDir string) *RealExecutor {
	return &RealExecutor{workDir: workDir}
}

// runGit executes a git command and returns an error if it fails.
func (e *RealExecutor) runGit(ctx context.Context, args ...string) error {
	_, err := e.runGitOutput(ctx, args...)
	return err
}

// runGitOutput executes a git command and returns stdout and any error.
// On failure the tool's stderr (falling back to stdout) becomes the
// error detail; there is no retry.
func (e *RealExecutor) runGitOutput(ctx context.Context, args ...string) (string, error) {
	//nolint:gosec // G204: args come from controlled sources
	cmd := exec.CommandContext(ctx, "git", args...)
	if e.workDir != "" {
		cmd.Dir = e.workDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = strings.TrimSpace(stdout.String())
		}
		log.Debug(log.CatGit, "git command failed", "args", strings.Join(args, " "), "detail", detail)
		return "", parseGitError(args, detail, err)
	}

	return stdout.String(), nil
}

// parseGitError converts git stderr messages to specific error types.
func parseGitError(args []string, detail string, originalErr error) error {
	if strings.Contains(strings.ToLower(detail), "not a git repository") {
		return fmt.Errorf("%w: %s", ErrNotARepository, detail)
	}
	if detail != "" {
		return fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), detail, originalErr)
	}
	return fmt.Errorf("git %s: %w", strings.Join(args, " "), originalErr)
}

// RepoRoot returns the toplevel directory of the repository.
func (e *RealExecutor) RepoRoot(ctx context.Context) (string, error) {
	out, err := e.runGitOutput(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Status returns porcelain-v1 status output.
func (e *RealExecutor) Status(ctx context.Context) (string, error) {
	return e.runGitOutput(ctx, "status", "--porcelain=v1")
}

// Diff returns the unstaged diff for a single path.
func (e *RealExecutor) Diff(ctx context.Context, path string) (string, error) {
	return e.runGitOutput(ctx, "diff", "--", path)
}

// DiffCached returns the staged diff for a single path.
func (e *RealExecutor) DiffCached(ctx context.Context, path string) (string, error) {
	return e.runGitOutput(ctx, "diff", "--cached", "--", path)
}

// ShowHead returns the committed content of a path.
func (e *RealExecutor) ShowHead(ctx context.Context, path string) (string, error) {
	return e.runGitOutput(ctx, "show", "HEAD:"+path)
}

// ShowIndex returns the index content of a path.
func (e *RealExecutor) ShowIndex(ctx context.Context, path string) (string, error) {
	return e.runGitOutput(ctx, "show", ":"+path)
}

// Add stages a path.
func (e *RealExecutor) Add(ctx context.Context, path string) error {
	return e.runGit(ctx, "add", "--", path)
}

// RestoreStaged unstages a path.
func (e *RealExecutor) RestoreStaged(ctx context.Context, path string) error {
	return e.runGit(ctx, "restore", "--staged", "--", path)
}

// ApplyCached applies (or with reverse, unapplies) a patch file to the index.
func (e *RealExecutor) ApplyCached(ctx context.Context, patchFile string, reverse bool) error {
	args := []string{"apply", "--cached"}
	if reverse {
		args = append(args, "--reverse")
	}
	args = append(args, patchFile)
	return e.runGit(ctx, args...)
}

package uzal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// Sentinel errors for the external runner.
var (
	// ErrBuildFailed is returned when the collaborator binary is missing
	// and cannot be built.
	ErrBuildFailed = errors.New("uzal: collaborator build failed")

	// ErrMissingCostTable is returned when a run produced no cost table.
	ErrMissingCostTable = errors.New("uzal: cost table not produced")
)

// Runner invokes the costfunc binary as an external process. Each run happens
// inside a fresh temporary working directory that is removed afterwards, so
// the per-run output files the binary scatters never leak into the caller's
// filesystem. Runner implements Estimator.
//
// Runner is not safe for concurrent use: the one-time build check mutates it.
type Runner struct {
	// BinPath is the costfunc executable. It should be an absolute path,
	// since the process runs with a temporary working directory.
	BinPath string

	// SourceDir, if non-empty, is the directory where "./configure" and
	// "make" are run once when BinPath does not exist yet.
	SourceDir string

	// Args are the flags passed to the binary. Nil means the conventional
	// ["-e", "2"].
	Args []string

	// AmpFile is the name of the cost-table file the binary writes into
	// its working directory. Empty means "stdin.amp".
	AmpFile string

	built bool
}

var _ Estimator = (*Runner)(nil)

// Estimate runs the cost function over x: the series goes to stdin one value
// per line, the cost table is read back from the scoped working directory and
// the parameter diagnostics from stderr.
func (r *Runner) Estimate(ctx context.Context, x []float64) (Report, error) {
	if err := r.ensureBuilt(ctx); err != nil {
		return Report{}, err
	}

	dir, err := os.MkdirTemp("", "uzal-")
	if err != nil {
		return Report{}, fmt.Errorf("uzal: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	args := r.Args
	if args == nil {
		args = []string{"-e", "2"}
	}

	var stdin bytes.Buffer
	for _, v := range x {
		stdin.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		stdin.WriteByte('\n')
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.BinPath, args...)
	cmd.Dir = dir
	cmd.Stdin = &stdin
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return Report{}, fmt.Errorf("uzal: costfunc: %w", err)
	}

	ampName := r.AmpFile
	if ampName == "" {
		ampName = "stdin.amp"
	}
	amp, err := os.ReadFile(filepath.Join(dir, ampName))
	if err != nil {
		return Report{}, fmt.Errorf("%w: %s", ErrMissingCostTable, ampName)
	}

	dims, costs, err := ParseCosts(bytes.NewReader(amp))
	if err != nil {
		return Report{}, err
	}
	params, err := ParseParams(&stderr)
	if err != nil {
		return Report{}, err
	}

	return Report{Dims: dims, Costs: costs, Params: params}, nil
}

// ensureBuilt checks for the binary and, when SourceDir is configured, runs
// the one-time configure/make step to produce it.
func (r *Runner) ensureBuilt(ctx context.Context) error {
	if r.built {
		return nil
	}
	if _, err := os.Stat(r.BinPath); err == nil {
		r.built = true
		return nil
	}
	if r.SourceDir == "" {
		return fmt.Errorf("%w: %s not found and no source dir configured", ErrBuildFailed, r.BinPath)
	}

	for _, name := range []string{"./configure", "make"} {
		cmd := exec.CommandContext(ctx, name)
		cmd.Dir = r.SourceDir
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("%w: %s: %v: %s", ErrBuildFailed, name, err, bytes.TrimSpace(out))
		}
	}
	if _, err := os.Stat(r.BinPath); err != nil {
		return fmt.Errorf("%w: %s still missing after make", ErrBuildFailed, r.BinPath)
	}
	r.built = true

	return nil
}

package interp

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pyboot-dev/pyboot/internal/runner"
)

// versionPattern matches the numeric part of "Python 3.11.4" or "Python 3.13.0rc1".
var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// ParseVersion extracts a semver version from `python --version` output.
// Pre-release suffixes are dropped so constraints compare on the release.
func ParseVersion(output string) (*semver.Version, error) {
	m := versionPattern.FindStringSubmatch(output)
	if m == nil {
		return nil, fmt.Errorf("no version number in %q", strings.TrimSpace(output))
	}
	patch := m[3]
	if patch == "" {
		patch = "0"
	}
	return semver.NewVersion(m[1] + "." + m[2] + "." + patch)
}

// Version runs `<interpreter> --version` and parses the result. Old
// interpreters print the version on stderr, so both streams are inspected.
func Version(ctx context.Context, r runner.Runner, it *Interpreter) (*semver.Version, error) {
	res, err := r.Run(ctx, it.Path, []string{"--version"}, runner.Opts{})
	if err != nil {
		return nil, fmt.Errorf("running %s --version: %w", it.Name, err)
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("%s --version exited with code %d", it.Name, res.ExitCode)
	}
	return ParseVersion(res.Stdout + " " + res.Stderr)
}

// CheckConstraint reports an error when v does not satisfy constraint.
// An empty constraint accepts every version.
func CheckConstraint(v *semver.Version, constraint string) error {
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing version constraint %q: %w", constraint, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("version %s does not satisfy %s", v, constraint)
	}
	return nil
}

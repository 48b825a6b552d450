//go:build integration

package integration_test

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to an isolated project and its instrumented interpreter.
type testEnv struct {
	ProjectDir  string // project root holding requirements.txt
	BinDir      string // only directory on PATH besides the system tools
	CreationLog string // one line per interpreter invocation
	InstallLog  string // one line per installer invocation
}

// standInPython records its arguments and builds a fake environment on
// `-m venv DIR` whose bin/python records installer invocations.
const standInPython = `#!/bin/sh
echo "$*" >> '%[1]s'
if [ "$1" = "--version" ]; then echo "Python 3.11.9"; exit 0; fi
if [ "$1" = "-m" ] && [ "$2" = "venv" ]; then
  mkdir -p "$3/bin"
  cat > "$3/bin/python" <<'STUB'
#!/bin/sh
echo "$*" >> '%[2]s'
case "$*" in *broken*) exit 1 ;; esac
STUB
  chmod +x "$3/bin/python"
fi
`

// setupTestEnv creates a project with a dependency list and puts a stand-in
// python3 on PATH. PATH is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stand-in interpreter is a POSIX shell script")
	}

	logs := t.TempDir()
	env := &testEnv{
		ProjectDir:  t.TempDir(),
		BinDir:      t.TempDir(),
		CreationLog: filepath.Join(logs, "creation.log"),
		InstallLog:  filepath.Join(logs, "install.log"),
	}

	writeFile(t, filepath.Join(env.ProjectDir, "requirements.txt"), "numpy\nsoundfile\nsounddevice\n")
	script := fmt.Sprintf(standInPython, env.CreationLog, env.InstallLog)
	if err := os.WriteFile(filepath.Join(env.BinDir, "python3"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", strings.Join([]string{env.BinDir, "/bin", "/usr/bin"}, string(os.PathListSeparator)))
	return env
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// logLines returns the non-empty lines of a log file, or nil if it is absent.
func logLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

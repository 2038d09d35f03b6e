package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Yokinman/trace"
)

const testGroupOutput = `@---|   # of ways to group 3 items into 2 unordered sets:
    >---|   n:3, k:2
        >---|   n:2, k:1
            >---|   n:1, k:0
                |   n:1, k:1
            |   n:2, k:2
    |   Result: 3
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestGroup(t *testing.T) {
	out, err := execute(t, "group", "3", "2", "--capture", "--color", "off")
	if err != nil {
		t.Fatal(err)
	}
	if out != testGroupOutput {
		t.Log(out)
		t.Error("group output")
	}
}

func TestGroupConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.toml")
	if err := os.WriteFile(path, []byte("capture = true\ncolors = \"off\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "group", "3", "2", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if out != testGroupOutput {
		t.Log(out)
		t.Error("group output from config file")
	}
}

func TestGroupCaptureOff(t *testing.T) {
	t.Setenv(trace.EnvLibBacktrace, "0")

	out, err := execute(t, "group", "2", "2")
	if err != nil {
		t.Fatal(err)
	}

	want := "# of ways to group 2 items into 2 unordered sets:\nn:2, k:2\nResult: 1\n"
	if out != want {
		t.Errorf("want %q, got %q", want, out)
	}
}

func TestBadArgs(t *testing.T) {
	for _, args := range [][]string{
		{"group", "x", "2"},
		{"group", "3", "-1"},
		{"group", "3", "2", "--color", "purple"},
		{"goroutines", "0"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v: want error", args)
		}
	}

	for name, content := range map[string]string{
		"bad.toml":     "colors = \"purple\"\n",
		"unknown.toml": "colour = \"on\"\n",
	} {
		path := filepath.Join(t.TempDir(), name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := execute(t, "group", "3", "2", "--config", path); err == nil {
			t.Errorf("%s: want error", name)
		}
	}
}

func TestGoroutinesIsolated(t *testing.T) {
	out, err := execute(t, "goroutines", "4", "--isolated", "--capture", "--color", "off")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// five recursion lines and one result line per goroutine
	if len(lines) != 4*6 {
		t.Fatalf("want %d lines, got %d:\n%s", 4*6, len(lines), out)
	}
	for i := 0; i < 4; i++ {
		if !strings.HasPrefix(lines[i*6], "@---|   n:3, k:2") {
			t.Errorf("goroutine %d starts with %q", i, lines[i*6])
		}
	}
}

func TestGoroutinesShared(t *testing.T) {
	out, err := execute(t, "goroutines", "4", "--capture", "--color", "off")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "\n"); n != 4*6 {
		t.Errorf("want %d lines, got %d", 4*6, n)
	}
}

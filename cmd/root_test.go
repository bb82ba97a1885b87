package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func makeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]int{
		"main.rs":   10,
		"lib.rs":    10,
		"README":    10,
		"README.md": 10,
		"a.txt":     50,
		"b.txt":     5000,
		"c.log":     50,
		"archive.":  10,
	}
	for name, size := range files {
		if err := os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}
	return dir
}

func TestRootCommandPrintsStatusAndMatches(t *testing.T) {
	dir := makeTree(t)

	out, err := runCommand(t, "-p", dir, "-e", "txt", "-s", "100")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{`Searching in: "` + dir + `"`, filepath.Join(dir, "b.txt")}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %q", len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestRootCommandPositionalPathAndSort(t *testing.T) {
	dir := makeTree(t)

	out, err := runCommand(t, "--sort", "-t", "f", "-n", "README", dir)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	want := strings.Join([]string{
		`Searching in: "` + dir + `"`,
		filepath.Join(dir, "README"),
		filepath.Join(dir, "README.md"),
	}, "\n") + "\n"
	if out != want {
		t.Errorf("Expected output:\n%s\ngot:\n%s", want, out)
	}
}

func TestRootCommandEmptyExtension(t *testing.T) {
	dir := makeTree(t)

	out, err := runCommand(t, "-p", dir, "-e", "")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	want := `Searching in: "` + dir + `"` + "\n" + filepath.Join(dir, "archive.") + "\n"
	if out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}
}

func TestRootCommandMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	out, err := runCommand(t, "-p", missing)
	if err != nil {
		t.Fatalf("Expected success for missing root, got %v", err)
	}
	if strings.TrimSpace(out) != `Searching in: "`+missing+`"` {
		t.Errorf("Expected only the status line, got %q", out)
	}
}

func TestRootCommandRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	tests := [][]string{
		{"-p", dir, "-t", "x"},
		{"-p", dir, "--min-size=-5"},
		{"-p", dir, "--max-size", "lots"},
	}
	for _, args := range tests {
		if _, err := runCommand(t, args...); err == nil {
			t.Errorf("Expected error for args %v", args)
		}
	}
}

func TestRootCommandReadsEnvironment(t *testing.T) {
	dir := makeTree(t)
	t.Setenv("SIFT_EXTENSION", "log")

	out, err := runCommand(t, "-p", dir)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out, filepath.Join(dir, "c.log")) || strings.Contains(out, "a.txt") {
		t.Errorf("Expected only c.log to match, got %q", out)
	}
}

func TestRootCommandReadsConfigFile(t *testing.T) {
	dir := makeTree(t)
	cfgPath := filepath.Join(t.TempDir(), "sift.yaml")
	if err := os.WriteFile(cfgPath, []byte("name: main\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"--config", cfgPath, "-p", dir})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	want := `Searching in: "` + dir + `"` + "\n" + filepath.Join(dir, "main.rs") + "\n"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"1048576", 1048576},
		{"10KB", 10000},
		{"1KiB", 1024},
		{"1 MiB", 1 << 20},
	}
	for _, tt := range tests {
		got, err := parseSize(tt.in)
		if err != nil {
			t.Errorf("parseSize(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSize(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

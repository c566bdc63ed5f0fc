package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brandonbloom/codenamize"
	"github.com/brandonbloom/codenamize/internal/config"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// A nil slice would make cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// isolateConfig points the command at a config path that does not exist, so
// tests never read the developer's real config file.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("CODENAMIZE_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CODENAMIZE_CONFIG", path)
}

func TestRootCodenamesArguments(t *testing.T) {
	isolateConfig(t)
	stdout, stderr, err := runCommand(t, "1", "2")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if want := "shifting-streamlet\nrevealing-sprig\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
	if stderr != "" {
		t.Fatalf("stderr = %q, want empty", stderr)
	}
}

func TestRootFlags(t *testing.T) {
	isolateConfig(t)
	stdout, _, err := runCommand(t, "-p", "2", "-m", "3", "-j", "", "-c", "305419946")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if want := "DimSetIvy\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestRootHashAlgorithmFlag(t *testing.T) {
	isolateConfig(t)
	stdout, _, err := runCommand(t, "-a", "SHA1", "foo")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if want := "flowing-shaft\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestRootSpace(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"default", []string{"--space"}, "355668\n"},
		{"twoAdjectivesMax4", []string{"--space", "-p", "2", "-m", "4"}, "129600\n"},
		{"ignoresArguments", []string{"--space", "ignored"}, "355668\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isolateConfig(t)
			stdout, _, err := runCommand(t, tc.args...)
			if err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}
			if stdout != tc.want {
				t.Fatalf("stdout = %q, want %q", stdout, tc.want)
			}
		})
	}
}

func TestRootListAlgorithms(t *testing.T) {
	isolateConfig(t)
	stdout, _, err := runCommand(t, "--list-algorithms")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	want := strings.Join([]string{
		"blake2b", "blake2s", "md5", "sha1",
		"sha224", "sha256", "sha384",
		"sha3_224", "sha3_256", "sha3_384", "sha3_512",
		"sha512", "sha512_224", "sha512_256",
	}, "\n") + "\n"
	if stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestRootNoArgsPrintsUsage(t *testing.T) {
	isolateConfig(t)
	stdout, _, err := runCommand(t)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(stdout, "Usage:") || !strings.Contains(stdout, "codenamize [strings...]") {
		t.Fatalf("usage not printed, stdout = %q", stdout)
	}
}

func TestRootVersionFlag(t *testing.T) {
	isolateConfig(t)
	stdout, _, err := runCommand(t, "--version")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if want := "codenamize version (devel)\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestRootConfigDefaults(t *testing.T) {
	writeConfig(t, "adjectives = 2\n")
	stdout, _, err := runCommand(t, "11:22:33:44:55:66")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if want := "opening-pitted-briar\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestRootConfigHashAlgorithm(t *testing.T) {
	writeConfig(t, "hash_algorithm = \"sha1\"\n")
	stdout, _, err := runCommand(t, "foo")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if want := "flowing-shaft\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestRootConfigJoinAndCapitalize(t *testing.T) {
	writeConfig(t, "adjectives = 2\nmax_chars = 3\njoin = \"\"\ncapitalize = true\n")
	stdout, _, err := runCommand(t, "305419946")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if want := "DimSetIvy\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestRootFlagsOverrideConfig(t *testing.T) {
	writeConfig(t, "adjectives = 2\nmax_chars = 3\n")
	stdout, _, err := runCommand(t, "-p", "1", "-m", "0", "11:22:33:44:55:66")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if want := "pitted-briar\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestRootInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("CODENAMIZE_CONFIG", path)

	stdout, _, err := runCommand(t, "--init-config", "-p", "2", "-m", "3")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if want := "Saved config to " + path + "\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Adjectives == nil || *cfg.Adjectives != 2 {
		t.Fatalf("Adjectives = %v, want 2", cfg.Adjectives)
	}
	if cfg.MaxChars != 3 {
		t.Fatalf("MaxChars = %d, want 3", cfg.MaxChars)
	}

	stdout, _, err = runCommand(t, "-j", "", "-c", "305419946")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if want := "DimSetIvy\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestRootInitConfigRejectsUnknownAlgorithm(t *testing.T) {
	isolateConfig(t)
	_, _, err := runCommand(t, "--init-config", "-a", "sha0")
	if !errors.Is(err, config.ErrUnknownAlgorithm) {
		t.Fatalf("Execute error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestRootConfigRejectsNegativeAdjectives(t *testing.T) {
	writeConfig(t, "adjectives = -2\n")
	_, _, err := runCommand(t, "x")
	if !errors.Is(err, config.ErrNegativeAdjectives) {
		t.Fatalf("Execute error = %v, want ErrNegativeAdjectives", err)
	}
}

func TestRootUnknownAlgorithm(t *testing.T) {
	isolateConfig(t)
	_, _, err := runCommand(t, "-a", "sha0", "x")
	if !errors.Is(err, codenamize.ErrUnknownAlgorithm) {
		t.Fatalf("Execute error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestRootNegativeAdjectives(t *testing.T) {
	isolateConfig(t)
	_, _, err := runCommand(t, "-p", "-1", "x")
	if !errors.Is(err, codenamize.ErrAdjectiveCount) {
		t.Fatalf("Execute error = %v, want ErrAdjectiveCount", err)
	}
}

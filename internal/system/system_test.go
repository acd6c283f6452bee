package system

import (
	"os"
	"runtime"
	"strings"
	"testing"
)

func TestPlatform(t *testing.T) {
	if got := Platform(); got != runtime.GOOS {
		t.Errorf("Platform() = %q, expected %q", got, runtime.GOOS)
	}
}

func TestRelease(t *testing.T) {
	got := Release()
	if got == "" {
		t.Fatal("Release() returned empty string")
	}
	if runtime.GOOS == "linux" && got == "unknown" {
		t.Errorf("Release() should report the kernel release on linux, got %q", got)
	}
}

func TestRuntimeVersion(t *testing.T) {
	got := RuntimeVersion()
	if got != runtime.Version() {
		t.Errorf("RuntimeVersion() = %q, expected %q", got, runtime.Version())
	}
	if !strings.HasPrefix(got, "go") && !strings.HasPrefix(got, "devel") {
		t.Errorf("RuntimeVersion() = %q, expected a go version string", got)
	}
}

func TestIsTerminal(t *testing.T) {
	t.Run("NilFile", func(t *testing.T) {
		if IsTerminal(nil) {
			t.Error("IsTerminal(nil) should be false")
		}
	})

	t.Run("RegularFile", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
		if err != nil {
			t.Fatalf("Failed to create temp file: %v", err)
		}
		defer f.Close()

		if IsTerminal(f) {
			t.Error("IsTerminal should be false for a regular file")
		}
	})
}

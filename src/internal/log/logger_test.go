package log

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

// captureOutput redirects both writers into buffers for the duration of f.
func captureOutput(t *testing.T, f func()) (string, string) {
	t.Helper()

	var out, errOut bytes.Buffer
	mu.Lock()
	oldOut, oldErr := stdout, stderr
	mu.Unlock()

	SetOutput(&out, &errOut)
	defer SetOutput(oldOut, oldErr)

	f()
	return out.String(), errOut.String()
}

func TestSetVerbose(t *testing.T) {
	original := IsVerbose()
	defer SetVerbose(original)

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("Expected verbose to be true")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("Expected verbose to be false")
	}
}

func TestDebugf_VerboseOff(t *testing.T) {
	original := IsVerbose()
	defer SetVerbose(original)
	SetVerbose(false)

	stdout, stderr := captureOutput(t, func() {
		Debugf("test debug message")
	})

	if stdout != "" || stderr != "" {
		t.Errorf("Expected no output when verbose is off, got stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestDebugf_VerboseOn(t *testing.T) {
	original := IsVerbose()
	defer SetVerbose(original)
	SetVerbose(true)

	stdout, stderr := captureOutput(t, func() {
		Debugf("test debug message")
	})

	if !strings.Contains(stdout, "[DBG]") || !strings.Contains(stdout, "test debug message") {
		t.Errorf("Expected debug message in stdout, got: %s", stdout)
	}
	if stderr != "" {
		t.Errorf("Expected no stderr output for debug, got: %s", stderr)
	}
}

func TestLevelsRouting(t *testing.T) {
	tests := []struct {
		name       string
		logFunc    func(string, ...interface{})
		prefix     string
		wantStderr bool
	}{
		{"Info", Infof, "[INF]", false},
		{"Warn", Warnf, "[WRN]", false},
		{"Error", Errorf, "[ERR]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := captureOutput(t, func() {
				tt.logFunc("message %d", 7)
			})

			got, other := stdout, stderr
			if tt.wantStderr {
				got, other = stderr, stdout
			}
			if !strings.Contains(got, tt.prefix) || !strings.Contains(got, "message 7") {
				t.Errorf("Expected %s line, got: %q", tt.prefix, got)
			}
			if other != "" {
				t.Errorf("Expected nothing on the other writer, got: %q", other)
			}
		})
	}
}

func TestForceStdErr(t *testing.T) {
	SetForceStdErr(true)
	defer SetForceStdErr(false)

	stdout, stderr := captureOutput(t, func() {
		Infof("test info to stderr")
	})

	if stdout != "" {
		t.Errorf("Expected no stdout output when forceStdErr is true, got: %s", stdout)
	}
	if !strings.Contains(stderr, "[INF]") {
		t.Errorf("Expected info message in stderr, got: %s", stderr)
	}
}

func TestDisableLogs(t *testing.T) {
	DisableLogs()
	defer EnableLogs()

	if !IsDisabled() {
		t.Fatal("Expected logs to be disabled")
	}

	stdout, stderr := captureOutput(t, func() {
		Infof("hidden")
		Errorf("hidden")
	})

	if stdout != "" || stderr != "" {
		t.Errorf("Expected no output while disabled, got stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestConcurrentWritesDoNotInterleave(t *testing.T) {
	stdout, _ := captureOutput(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				Infof("line %03d", n)
			}(i)
		}
		wg.Wait()
	})

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 50 {
		t.Fatalf("Expected 50 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, logPrefixes[levelInfo]+" line ") {
			t.Errorf("Malformed line: %q", line)
		}
	}
}

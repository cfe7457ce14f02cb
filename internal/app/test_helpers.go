package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/vk/nodock/internal/descriptor"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest writes files into an in-memory filesystem and returns an app
// reading from it, together with its output and log buffers. Set
// NODOCK_TEST_LOGS=true to print the captured logs after each test.
func SetupAppTest(t *testing.T, cfg Config, files map[string]string) (*App, afero.Fs, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	cfg.LogLevel = "debug"
	appConfig, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	testApp := NewApp(out, logs, appConfig, fs, descriptor.NewLoader(fs, appConfig.Format))

	t.Cleanup(func() {
		if os.Getenv("NODOCK_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, fs, out, logs
}

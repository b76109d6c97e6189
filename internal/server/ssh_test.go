package server

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/Gaurav-Gosain/retrodesk/internal/logging"
	"github.com/adrg/xdg"
)

func TestResolveHostKeyPath(t *testing.T) {
	if got, err := resolveHostKeyPath("/tmp/key"); err != nil || got != "/tmp/key" {
		t.Errorf("explicit path = %q, %v", got, err)
	}

	t.Cleanup(xdg.Reload) // runs after Setenv restores the environment
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()
	got, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if !strings.HasSuffix(got, filepath.Join("retrodesk", "ssh_host_ed25519")) {
		t.Errorf("default path = %q", got)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	cfg := &SSHServerConfig{Config: config.DefaultConfig(), Logger: logging.Discard()}

	a := newSessionModel(cfg, "alice", 100, 40)
	b := newSessionModel(cfg, "bob", 80, 24)

	if a.ID == b.ID {
		t.Error("sessions share an ID")
	}
	if a.Width != 100 || b.Height != 24 {
		t.Errorf("sizes = %dx%d, %dx%d", a.Width, a.Height, b.Width, b.Height)
	}

	a.Shell.Close(desktop.Welcome)
	if !b.Shell.Desktop().IsOpen(desktop.Welcome) {
		t.Error("closing a window in one session affected another")
	}
	if a.Clicks == nil {
		t.Error("sessions need a double-click detector")
	}
}

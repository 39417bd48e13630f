package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

func testServerConfig(t *testing.T) SSHServerConfig {
	t.Helper()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")
	return cfg
}

func TestNewSSHServer(t *testing.T) {
	cfg := testServerConfig(t)

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
}

func TestNewSSHServerUnknownVariant(t *testing.T) {
	cfg := testServerConfig(t)
	cfg.Variant = "tetris"

	if _, err := NewSSHServer(cfg, log.New(io.Discard)); err == nil {
		t.Error("unknown variant should be rejected")
	}
}

func TestSessionConfig(t *testing.T) {
	cfg := testServerConfig(t)
	cfg.Runtime = core.DefaultConfig()
	cfg.Runtime.BoardSize = 7

	srv := &SSHServer{config: cfg}
	rc := srv.sessionConfig(120, 40)
	if rc.ScreenW != 120 || rc.ScreenH != 40 || rc.BoardSize != 7 {
		t.Errorf("unexpected session config %+v", rc)
	}
	if rc.Seed == 0 {
		t.Error("sessions without a fixed seed should get a time-based one")
	}

	srv.config.Runtime.Seed = 42
	if rc := srv.sessionConfig(80, 24); rc.Seed != 42 {
		t.Errorf("fixed seed = %d, expected 42", rc.Seed)
	}
}

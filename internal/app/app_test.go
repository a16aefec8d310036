package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/nexus/internal/config"
	"github.com/five82/nexus/internal/dashboard"
	"github.com/five82/nexus/internal/insight"
	"github.com/five82/nexus/internal/source"
)

func TestNewLogger_DiscardsWithoutDebug(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "nexus.log")

	logger, closeLog, err := newLogger(logFile, false)
	if err != nil {
		t.Fatalf("newLogger returned error: %v", err)
	}
	defer closeLog()

	logger.Info("hello")
	if _, err := os.Stat(logFile); !os.IsNotExist(err) {
		t.Fatalf("log file should not exist without debug, stat err = %v", err)
	}
}

func TestNewLogger_WritesFileWithDebug(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "nexus.log")

	logger, closeLog, err := newLogger(logFile, true)
	if err != nil {
		t.Fatalf("newLogger returned error: %v", err)
	}
	logger.Debug("upload complete", "file", "q1.csv")
	closeLog()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "upload complete") || !strings.Contains(got, "file=q1.csv") {
		t.Fatalf("log contents = %q, want message and attr", got)
	}
}

func TestNewUIOptions_SeedsStoreAndServices(t *testing.T) {
	cfg := config.Default()
	cfg.InsightDelay = 10 * time.Millisecond

	opts := newUIOptions(context.Background(), cfg, time.Now())
	snap := opts.Store.Snapshot()
	if len(snap.Files) != 3 || len(snap.Connections) != 2 {
		t.Fatalf("seeded %d files/%d connections, want 3/2", len(snap.Files), len(snap.Connections))
	}
	if opts.Workspace != "Nexus BI" || opts.UserInitials != "JD" {
		t.Fatalf("workspace/initials = %q/%q, want Nexus BI/JD", opts.Workspace, opts.UserInitials)
	}

	f, err := opts.Uploader.Upload(context.Background(), source.Upload{})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if err := opts.Store.PrependFile(f); err != nil {
		t.Fatalf("PrependFile returned error: %v", err)
	}

	text, err := opts.Insights.Analyze(context.Background(), insight.Request{Title: dashboard.RevenueTrendsTitle})
	if err != nil || text == "" {
		t.Fatalf("Analyze = %q, %v; want narrative", text, err)
	}
}

package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

// withLogDir points logging at a temp dir and restores the logger afterwards
func withLogDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "logs")
	prevDir, prevOut, prevFlags := logDir, log.Writer(), log.Flags()
	logDir = dir
	t.Cleanup(func() {
		logDir = prevDir
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return dir
}

func TestSetupLoggingDisabled(t *testing.T) {
	withLogDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Error("expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("got %v, want io.Discard", log.Writer())
	}
}

func TestSetupLoggingEnabled(t *testing.T) {
	dir := withLogDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected log file when debug=true")
	}
	defer f.Close()

	if out := log.Writer(); out == os.Stdout || out == os.Stderr {
		t.Error("log output must not be stdout or stderr")
	}

	log.Println("round started")
	info, err := os.Stat(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected log file to contain content")
	}
}

func TestSetupLoggingRotation(t *testing.T) {
	dir := withLogDir(t)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("rotated files got %d, want 1", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("new log size got %d, want <= %d", info.Size(), maxLogSize)
	}
}

package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

// inTempDir runs the test from a scratch directory so logs/ never lands in the source tree
func inTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		os.Chdir(wd)
	})
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	inTempDir(t)
	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("log file opened without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("logs directory created without debug")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	inTempDir(t)
	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file with debug")
	}
	defer f.Close()

	log.Println("hello")
	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("stat log: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file empty after a write")
	}
	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("logging to the terminal")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	inTempDir(t)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file after rotation")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("oversized log not rotated")
	}
	if info, err := os.Stat(logPath); err != nil || info.Size() > maxLogSize {
		t.Errorf("fresh log %v, %v", info, err)
	}
}

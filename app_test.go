package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"

	"flywaydeck/config"
	"flywaydeck/export"
)

func writeConfig(t *testing.T, cfg config.Config) string {
	t.Helper()
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), config.DefaultPath)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRunWritesSingleFile(t *testing.T) {
	outDir := t.TempDir()
	cfg := config.Default()
	cfg.OutputDir = outDir
	cfgPath := writeConfig(t, cfg)

	var out bytes.Buffer
	code := NewApp(&out, export.NewPPTService()).Run(cfgPath)
	if code != 0 {
		t.Fatalf("exit code %d, output %q", code, out.String())
	}

	names := listDir(t, outDir)
	if len(names) != 1 || names[0] != "Flyway-DB2-Presentation.pptx" {
		t.Fatalf("output dir holds %v", names)
	}
	if !strings.Contains(out.String(), "✅ Presentation created:") {
		t.Errorf("missing success line: %q", out.String())
	}
}

func TestRunBackendUnavailable(t *testing.T) {
	outDir := t.TempDir()
	cfg := config.Default()
	cfg.OutputDir = outDir
	cfgPath := writeConfig(t, cfg)

	svc := export.NewPPTService().WithWriterFactory(func(*ppt.Presentation) (*ppt.PPTXWriter, error) {
		return nil, errors.New("writer not registered")
	})
	var out bytes.Buffer
	code := NewApp(&out, svc).Run(cfgPath)
	if code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	if !strings.Contains(out.String(), "Please install the presentation backend first:") ||
		!strings.Contains(out.String(), "go get "+export.BackendModule) {
		t.Errorf("missing install hint: %q", out.String())
	}
	if names := listDir(t, outDir); len(names) != 0 {
		t.Errorf("nothing should be written, found %v", names)
	}
}

func TestRunWithHandoutsAndLogging(t *testing.T) {
	outDir := t.TempDir()
	logDir := filepath.Join(t.TempDir(), "logs")
	cfg := config.Default()
	cfg.OutputDir = outDir
	cfg.LogDir = logDir
	cfg.Handouts = config.Handouts{Excel: true, Word: true, PDF: true}
	cfgPath := writeConfig(t, cfg)

	var out bytes.Buffer
	if code := NewApp(&out, export.NewPPTService()).Run(cfgPath); code != 0 {
		t.Fatalf("exit code %d, output %q", code, out.String())
	}

	want := map[string]bool{
		"Flyway-DB2-Presentation.pptx":            true,
		"Flyway-DB2-Presentation-Comparison.xlsx": true,
		"Flyway-DB2-Presentation-Handout.docx":    true,
		"Flyway-DB2-Presentation-Handout.pdf":     true,
	}
	names := listDir(t, outDir)
	if len(names) != len(want) {
		t.Fatalf("output dir holds %v", names)
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected file %s", n)
		}
	}
	if logs := listDir(t, logDir); len(logs) != 1 {
		t.Errorf("log dir holds %v", logs)
	}
}

func TestRunLogsSkippedHandouts(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.LogDir = logDir
	cfgPath := writeConfig(t, cfg)

	var out bytes.Buffer
	if code := NewApp(&out, export.NewPPTService()).Run(cfgPath); code != 0 {
		t.Fatalf("exit code %d, output %q", code, out.String())
	}
	logs := listDir(t, logDir)
	if len(logs) != 1 {
		t.Fatalf("log dir holds %v", logs)
	}
	data, err := os.ReadFile(filepath.Join(logDir, logs[0]))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"message":"no handouts configured"`) {
		t.Errorf("log missing handout line:\n%s", data)
	}
}

func TestRunBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultPath)
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if code := NewApp(&out, export.NewPPTService()).Run(path); code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	if !strings.HasPrefix(out.String(), "Error: [config.Load]") {
		t.Errorf("output = %q", out.String())
	}
}

func TestWrapError(t *testing.T) {
	if WrapError("ppt", "Save", nil) != nil {
		t.Error("nil error should stay nil")
	}
	base := errors.New("boom")
	err := WrapError("ppt", "Save", base)
	if err.Error() != "[ppt.Save] boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should unwrap")
	}
	var se *ServiceError
	if !errors.As(err, &se) || se.Service != "ppt" {
		t.Errorf("errors.As failed: %v", err)
	}
}

package logger

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func readLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var out []map[string]interface{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m map[string]interface{}
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			t.Fatalf("line %q is not JSON: %v", sc.Text(), err)
		}
		out = append(out, m)
	}
	return out
}

func logFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "flywaydeck_*.log"))
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(matches)
	return matches
}

func TestLoggerWritesJSONWithRunID(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger()
	if err := l.Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	l.Log("rendering")
	l.Logf("wrote %d slides", 10)
	l.Errorf(errors.New("disk full"), "save %s", "deck.pptx")
	l.Close()

	files := logFiles(t, dir)
	if len(files) != 1 {
		t.Fatalf("log files = %v", files)
	}
	lines := readLines(t, files[0])
	// started, 3 messages, stopped
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	run, _ := lines[0]["run"].(string)
	if run == "" {
		t.Fatal("first line has no run id")
	}
	for _, m := range lines {
		if m["run"] != run {
			t.Errorf("run = %v, want %s", m["run"], run)
		}
	}
	if lines[1]["message"] != "rendering" {
		t.Errorf("message = %v", lines[1]["message"])
	}
	if lines[2]["message"] != "wrote 10 slides" {
		t.Errorf("message = %v", lines[2]["message"])
	}
	if lines[3]["level"] != "error" || lines[3]["error"] != "disk full" {
		t.Errorf("error line = %v", lines[3])
	}
}

func TestLoggerNoopBeforeInit(t *testing.T) {
	l := NewLogger()
	l.Log("dropped")
	l.Logf("dropped %d", 1)
	l.Close()
	if l.file != nil {
		t.Error("no file should be open before Init")
	}
}

func TestLoggerRunCountIncrements(t *testing.T) {
	dir := t.TempDir()

	first := NewLogger()
	if err := first.Init(dir); err != nil {
		t.Fatal(err)
	}
	first.Close()

	second := NewLogger()
	if err := second.Init(dir); err != nil {
		t.Fatal(err)
	}
	second.Close()

	files := logFiles(t, dir)
	if len(files) != 2 {
		t.Fatalf("log files = %v", files)
	}
	if filepath.Ext(files[1]) != ".log" || files[1][len(files[1])-6:] != "_2.log" {
		t.Errorf("second log = %s, want *_2.log", files[1])
	}
	a := readLines(t, files[0])[0]["run"]
	b := readLines(t, files[1])[0]["run"]
	if a == b {
		t.Error("run ids should differ")
	}
}

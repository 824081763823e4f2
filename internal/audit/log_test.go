package audit

import (
	"testing"
	"time"
)

func TestLogRunAndHistory(t *testing.T) {
	root := t.TempDir()
	log := NewLog(root)

	if err := log.LogRun(RunRecord{Timestamp: time.Now(), Root: root, Entry: "a.py", DynamicThrew: true, DynamicExc: "ValueError"}); err != nil {
		t.Fatal(err)
	}
	if err := log.LogRun(RunRecord{Timestamp: time.Now(), Root: root, TimedOut: true}); err != nil {
		t.Fatal(err)
	}

	records, err := log.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// newest first
	if !records[0].TimedOut || records[0].DynamicThrew {
		t.Fatalf("unexpected first record %+v", records[0])
	}
	if records[1].DynamicExc != "ValueError" {
		t.Fatalf("unexpected second record %+v", records[1])
	}
	if records[0].RunID == "" {
		t.Fatal("run ID must be assigned")
	}
}

func TestLoadHistoryMissing(t *testing.T) {
	log := NewLog(t.TempDir())
	if _, err := log.LoadHistory(); err == nil {
		t.Fatal("expected error for missing audit log")
	}
}

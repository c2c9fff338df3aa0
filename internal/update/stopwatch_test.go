package update

import (
	"testing"
	"time"
)

func TestStopwatchStartThenStopLogsOneRecord(t *testing.T) {
	repo := newFakeRepo()
	m := newTestModel(repo)

	current := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	m, cmd := m.handleStopwatchToggle()
	if !m.Stopwatch.Running {
		t.Fatal("stopwatch must be running after start")
	}
	if cmd == nil {
		t.Fatal("expected a tick command on start")
	}
	if repo.insertCalls != 0 {
		t.Fatal("starting must not touch the store")
	}

	current = current.Add(90 * time.Minute)
	m, _ = m.handleStopwatchToggle()

	if m.Stopwatch.Running {
		t.Fatal("stopwatch must stop on the second toggle")
	}
	if repo.insertCalls != 1 {
		t.Fatalf("expected exactly one insert, got %d", repo.insertCalls)
	}

	var found bool
	for _, rec := range repo.records {
		if rec.Start == "09:00" && rec.End == "10:30" && rec.Day == testDay {
			found = true
			if rec.Description != "Tracked activity" {
				t.Fatalf("unexpected description: %q", rec.Description)
			}
			if rec.Posted {
				t.Fatal("tracked record must default to not posted")
			}
		}
	}
	if !found {
		t.Fatalf("logged record not found: %#v", repo.records)
	}
	if len(m.Rows) != 1 {
		t.Fatalf("grid not reloaded after stop: %#v", m.Rows)
	}
}

func TestStopwatchTickUpdatesElapsedOnly(t *testing.T) {
	repo := newFakeRepo()
	m := newTestModel(repo)

	current := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }
	m, _ = m.handleStopwatchToggle()

	listCalls := repo.listCalls
	current = current.Add(42 * time.Second)
	next, cmd := m.onStopwatchTick()
	m = next.(Model)

	if m.Stopwatch.ElapsedSec != 42 {
		t.Fatalf("elapsed = %d, want 42", m.Stopwatch.ElapsedSec)
	}
	if cmd == nil {
		t.Fatal("running stopwatch must schedule the next tick")
	}
	if repo.listCalls != listCalls || repo.insertCalls != 0 || repo.updateCalls != 0 {
		t.Fatal("the tick path must not access the store")
	}
}

func TestStopwatchTickIgnoredWhenStopped(t *testing.T) {
	repo := newFakeRepo()
	m := newTestModel(repo)

	next, cmd := m.onStopwatchTick()
	m = next.(Model)
	if cmd != nil {
		t.Fatal("stopped stopwatch must not reschedule ticks")
	}
	if m.Stopwatch.ElapsedSec != 0 {
		t.Fatalf("elapsed = %d, want 0", m.Stopwatch.ElapsedSec)
	}
}

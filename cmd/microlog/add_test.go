// Package main provides the entry point for the microlog CLI.
package main

import (
	"strings"
	"testing"
	"time"

	"github.com/anguspiv/micro-journal/internal/journal"
)

// newTestStore creates a store with a fixed clock in UTC.
func newTestStore(t *testing.T, now time.Time) *journal.Store {
	t.Helper()
	return journal.NewStore(t.TempDir(), time.UTC, journal.WithClock(func() time.Time { return now }))
}

// seedEntry appends an entry directly, failing the test on error.
func seedEntry(t *testing.T, store *journal.Store, content string, tags []string, at time.Time) {
	t.Helper()
	entry, err := journal.NewEntry(content, nil, tags, at)
	if err != nil {
		t.Fatalf("creating seed entry: %v", err)
	}
	if _, err := store.Append(entry); err != nil {
		t.Fatalf("appending seed entry: %v", err)
	}
}

func TestAddCommand(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		args         []string
		stdin        string
		jsonOutput   bool
		wantErr      bool
		wantContains []string
		wantEntries  int
		wantTags     []string
	}{
		{
			name:         "content as argument",
			args:         []string{"Great coffee meeting with Sarah"},
			wantContains: []string{"Added entry", "ml_"},
			wantEntries:  1,
		},
		{
			name:         "tags are normalized",
			args:         []string{"note", "--tag", "Work,SOCIAL", "--tag", "work"},
			wantEntries:  1,
			wantTags:     []string{"work", "social"},
			wantContains: []string{"Added entry"},
		},
		{
			name:         "content from stdin",
			stdin:        "Piped thought\n",
			wantContains: []string{"Added entry"},
			wantEntries:  1,
		},
		{
			name:         "no content",
			wantErr:      true,
			wantContains: []string{"no content given"},
		},
		{
			name:         "blank content rejected",
			args:         []string{"   "},
			wantErr:      true,
			wantContains: []string{"content"},
		},
		{
			name:         "invalid tag rejected",
			args:         []string{"note", "--tag", "bad/tag"},
			wantErr:      true,
			wantContains: []string{"tag"},
		},
		{
			name:         "json output",
			args:         []string{"json entry"},
			jsonOutput:   true,
			wantContains: []string{`"id"`, `"created_at"`},
			wantEntries:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, now)
			cmd := newAddCmdInternal(store)

			if tt.jsonOutput {
				cmd.PersistentFlags().Bool("json", false, "")
				_ = cmd.PersistentFlags().Set("json", "true")
			}

			args := tt.args
			if args == nil {
				args = []string{}
			}
			cmd.SetArgs(args)
			if tt.stdin != "" {
				cmd.SetIn(strings.NewReader(tt.stdin))
			} else {
				cmd.SetIn(strings.NewReader(""))
			}

			var buf strings.Builder
			cmd.SetOut(&buf)
			cmd.SetErr(&buf)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}

			got := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\noutput: %s", want, got)
				}
			}

			entries, listErr := store.ListByDate(journal.DateOf(now, time.UTC))
			if listErr != nil {
				t.Fatalf("listing entries: %v", listErr)
			}
			if len(entries) != tt.wantEntries {
				t.Errorf("stored entries = %d, want %d", len(entries), tt.wantEntries)
			}
			if tt.wantTags != nil {
				if len(entries) != 1 {
					t.Fatalf("expected one entry for tag check")
				}
				gotTags := entries[0].Tags
				if len(gotTags) != len(tt.wantTags) {
					t.Fatalf("tags = %v, want %v", gotTags, tt.wantTags)
				}
				for i := range gotTags {
					if gotTags[i] != tt.wantTags[i] {
						t.Errorf("tags = %v, want %v", gotTags, tt.wantTags)
						break
					}
				}
			}
		})
	}
}

func TestAddCommandDuplicateEntryConflicts(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	store := newTestStore(t, now)
	seedEntry(t, store, "same entry", nil, now)

	cmd := newAddCmdInternal(store)
	cmd.SetArgs([]string{"same entry"})
	cmd.SetIn(strings.NewReader(""))
	var buf strings.Builder
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected conflict for duplicate entry")
	}
	if !strings.Contains(buf.String(), "already exists") {
		t.Errorf("output = %q, want an already-exists message", buf.String())
	}
}

func TestAddCommandWarnsOnMissingMedia(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	store := newTestStore(t, now)

	cmd := newAddCmdInternal(store)
	cmd.SetArgs([]string{"with media", "--media", "/nonexistent/photo.jpg"})
	cmd.SetIn(strings.NewReader(""))
	var out, errOut strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(errOut.String(), "media file not found") {
		t.Errorf("stderr = %q, want a missing-media warning", errOut.String())
	}

	entries, err := store.ListByDate(journal.DateOf(now, time.UTC))
	if err != nil || len(entries) != 1 {
		t.Fatalf("entry should be stored despite the warning, got %d (%v)", len(entries), err)
	}
}

// Package main provides the entry point for the microlog CLI.
package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestExportCommand(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		flags          map[string]string
		wantErr        bool
		wantContains   []string
		wantNotContain []string
	}{
		{
			name:         "whole journal defaults to markdown",
			flags:        map[string]string{"format": "markdown"},
			wantContains: []string{"## ", "in range", "old entry"},
		},
		{
			name:           "date range",
			flags:          map[string]string{"from": "2024-01-13", "to": "2024-01-15"},
			wantContains:   []string{"in range"},
			wantNotContain: []string{"old entry"},
		},
		{
			name:           "single from date",
			flags:          map[string]string{"from": "2024-01-13"},
			wantContains:   []string{"in range"},
			wantNotContain: []string{"old entry"},
		},
		{
			name:         "obsidian format renders tags as hashtags",
			flags:        map[string]string{"format": "obsidian", "from": "2024-01-13"},
			wantContains: []string{"#work"},
		},
		{
			name:         "json format",
			flags:        map[string]string{"format": "json", "from": "2024-01-13"},
			wantContains: []string{`"content": "in range"`},
		},
		{
			name:         "inverted range",
			flags:        map[string]string{"from": "2024-01-10", "to": "2024-01-05"},
			wantErr:      true,
			wantContains: []string{"invalid range"},
		},
		{
			name:         "unknown format",
			flags:        map[string]string{"format": "pdf"},
			wantErr:      true,
			wantContains: []string{"unsupported format"},
		},
		{
			name:         "malformed from date",
			flags:        map[string]string{"from": "Jan 13"},
			wantErr:      true,
			wantContains: []string{"invalid date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MICROLOG_CONFIG_HOME", t.TempDir())
			store := newTestStore(t, now)
			seedEntry(t, store, "in range", []string{"work"}, now.AddDate(0, 0, -2))
			seedEntry(t, store, "old entry", nil, now.AddDate(0, 0, -20))

			cmd := newExportCmdInternal(store)
			cmd.SetArgs([]string{})
			for flag, value := range tt.flags {
				if err := cmd.Flags().Set(flag, value); err != nil {
					t.Fatalf("setting --%s: %v", flag, err)
				}
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
			for _, notWant := range tt.wantNotContain {
				if strings.Contains(got, notWant) {
					t.Errorf("output contains unexpected %q\noutput: %s", notWant, got)
				}
			}
		})
	}
}

func TestExportCommandWritesFile(t *testing.T) {
	t.Setenv("MICROLOG_CONFIG_HOME", t.TempDir())
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, now)
	seedEntry(t, store, "file bound", nil, now)

	outPath := filepath.Join(t.TempDir(), "exports", "journal.md")

	cmd := newExportCmdInternal(store)
	cmd.SetArgs([]string{})
	if err := cmd.Flags().Set("output", outPath); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("format", "markdown"); err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !strings.Contains(string(data), "file bound") {
		t.Errorf("file content = %q, want the entry body", data)
	}
	if !strings.Contains(buf.String(), "Exported 1 entries") {
		t.Errorf("output = %q, want a success message", buf.String())
	}
}

func TestExportCommandJSONRoundTrip(t *testing.T) {
	t.Setenv("MICROLOG_CONFIG_HOME", t.TempDir())
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, now)
	seedEntry(t, store, "round trip", []string{"work"}, now)

	cmd := newExportCmdInternal(store)
	cmd.SetArgs([]string{})
	if err := cmd.Flags().Set("format", "json"); err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var parsed []map[string]any
	if err := json.Unmarshal([]byte(buf.String()), &parsed); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(parsed) != 1 || parsed[0]["content"] != "round trip" {
		t.Errorf("parsed = %v, want one entry with the original content", parsed)
	}
}

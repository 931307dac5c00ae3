package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		log     func(*slog.Logger)
		want    []string
		notWant []string
	}{
		{
			name: "text",
			opts: Options{Level: "info", Format: "text"},
			log:  func(l *slog.Logger) { l.Info("process dispatched", "pid", "P1") },
			want: []string{"process dispatched", "pid=P1"},
		},
		{
			name: "json is case insensitive",
			opts: Options{Level: "info", Format: "JSON"},
			log:  func(l *slog.Logger) { l.Info("simulation complete", "algorithm", "FCFS") },
			want: []string{`"msg":"simulation complete"`, `"algorithm":"FCFS"`},
		},
		{
			name: "level filtering",
			opts: Options{Level: "warn"},
			log: func(l *slog.Logger) {
				l.Info("dropped")
				l.Warn("kept")
			},
			want:    []string{"kept"},
			notWant: []string{"dropped"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(New(&buf, tt.opts))

			output := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(output, w) {
					t.Errorf("expected %q in output, got: %s", w, output)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(output, w) {
					t.Errorf("unexpected %q in output, got: %s", w, output)
				}
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard logger enabled at ERROR")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"debug+2", slog.LevelDebug + 2},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

package main

import (
	"testing"

	"github.com/nvasko/sysforge/internal/config"
)

func TestStartupTracePayload(t *testing.T) {
	cfg, err := config.LoadArgs([]string{"-config", "/nonexistent/config.toml", "-width", "90"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	payload := startupTracePayload(cfg)
	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatal("expected flags map in payload")
	}
	if flags["width"] != "90" {
		t.Fatalf("expected width flag recorded, got %v", flags["width"])
	}
	if _, ok := payload["tty"]; !ok {
		t.Fatal("expected tty details in payload")
	}
}

func TestCollectTTYDetailsProbesAllDescriptors(t *testing.T) {
	details := collectTTYDetails()
	if len(details.Probes) != 3 {
		t.Fatalf("expected 3 probes, got %d", len(details.Probes))
	}
	names := map[string]bool{}
	for _, probe := range details.Probes {
		names[probe.Name] = true
	}
	for _, want := range []string{"stdin", "stdout", "stderr"} {
		if !names[want] {
			t.Fatalf("missing probe %s", want)
		}
	}
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDemoCommand(t *testing.T) {
	cfgPath := writeFile(t, "slotgrid.yaml", "log:\n  level: error\n")
	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"slotgrid", "--config", cfgPath, "--json", "demo"})
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Slot (0, 0): Apple x99",
		"Slot (1, 0): Apple x5",
		"Slot (2, 0): Bread x53",
		`"item":"Bread","amount":53`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("demo output missing %q:\n%s", want, got)
		}
	}
}

func TestRunCommand(t *testing.T) {
	cfgPath := writeFile(t, "slotgrid.yaml", "inventory: {width: 2, height: 1, slot_capacity: 10}\nlog: {level: error}\n")
	scPath := writeFile(t, "scenario.yaml", `
steps:
  - {op: add, item: apple, amount: 25}
  - {op: remove, item: apple, amount: 12, expect: true}
`)
	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"slotgrid", "--config", cfgPath, "run", scPath})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "(dropped 5)") {
		t.Fatalf("expected dropped note in output:\n%s", out.String())
	}
}

func TestRunCommandRequiresPath(t *testing.T) {
	var out bytes.Buffer
	if err := newCommand(&out).Run(context.Background(), []string{"slotgrid", "run"}); err == nil {
		t.Fatalf("expected missing path error")
	}
}

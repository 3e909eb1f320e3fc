package inventory

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSnapshotListsOccupiedSlots(t *testing.T) {
	svc, _ := newTestService(t, 3, 4, 99)
	if _, err := svc.Add(Apple, 15); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(Apple, 89); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(Bread, 53); err != nil {
		t.Fatalf("add: %v", err)
	}

	ss := svc.Snapshot()
	want := []SlotSnapshot{
		{X: 0, Y: 0, Item: "Apple", Amount: 99},
		{X: 1, Y: 0, Item: "Apple", Amount: 5},
		{X: 2, Y: 0, Item: "Bread", Amount: 53},
	}
	if len(ss.Slots) != len(want) {
		t.Fatalf("expected %d slots, got %+v", len(want), ss.Slots)
	}
	for i := range want {
		if ss.Slots[i] != want[i] {
			t.Fatalf("slot %d: got %+v want %+v", i, ss.Slots[i], want[i])
		}
	}

	data, err := svc.MarshalSnapshot()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Width != 3 || decoded.Height != 4 || decoded.SlotCapacity != 99 {
		t.Fatalf("unexpected header %+v", decoded)
	}
}

func TestPrintRendersRows(t *testing.T) {
	svc, _ := newTestService(t, 2, 2, 10)
	if _, err := svc.AddAt(Position{X: 1, Y: 1}, Bread, 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	var buf bytes.Buffer
	if err := svc.Print(&buf); err != nil {
		t.Fatalf("print: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Slot (0, 0): -") {
		t.Fatalf("unexpected first row %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "Slot (1, 1): Bread x3") {
		t.Fatalf("unexpected second row %q", lines[1])
	}
	sep0 := strings.Index(lines[0], "|")
	sep1 := strings.Index(lines[1], "|")
	if sep0 != sep1 {
		t.Fatalf("columns not aligned: %d vs %d", sep0, sep1)
	}
}

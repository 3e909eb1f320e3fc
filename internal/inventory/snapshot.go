package inventory

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// SlotSnapshot is one occupied slot in a Snapshot.
type SlotSnapshot struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Item   string `json:"item"`
	Amount int    `json:"amount"`
}

// Snapshot is a read-only view of the grid for display and debugging.
// Empty slots are omitted.
type Snapshot struct {
	Width        int            `json:"width"`
	Height       int            `json:"height"`
	SlotCapacity int            `json:"slotCapacity"`
	Slots        []SlotSnapshot `json:"slots"`
}

// Snapshot captures the current grid contents.
func (s *Service) Snapshot() Snapshot {
	ss := Snapshot{
		Width:        s.cfg.Width,
		Height:       s.cfg.Height,
		SlotCapacity: s.cfg.SlotCapacity,
		Slots:        make([]SlotSnapshot, 0),
	}
	for i, slot := range s.data.Slots {
		if slot.IsEmpty() {
			continue
		}
		p := s.cfg.PositionOf(i)
		ss.Slots = append(ss.Slots, SlotSnapshot{X: p.X, Y: p.Y, Item: s.name(slot.Item), Amount: slot.Amount})
	}
	return ss
}

// MarshalSnapshot encodes the current snapshot as JSON.
func (s *Service) MarshalSnapshot() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}

// Print writes one line per grid row. Cells are padded to a common display
// width so item names with wide glyphs still line up.
func (s *Service) Print(w io.Writer) error {
	cells := make([]string, len(s.data.Slots))
	width := 0
	for i, slot := range s.data.Slots {
		p := s.cfg.PositionOf(i)
		content := "-"
		if !slot.IsEmpty() {
			content = fmt.Sprintf("%s x%d", s.name(slot.Item), slot.Amount)
		}
		cells[i] = fmt.Sprintf("Slot %s: %s", p, content)
		if cw := runewidth.StringWidth(cells[i]); cw > width {
			width = cw
		}
	}

	var b strings.Builder
	for y := 0; y < s.cfg.Height; y++ {
		for x := 0; x < s.cfg.Width; x++ {
			cell := cells[s.cfg.Index(Position{X: x, Y: y})]
			if x == s.cfg.Width-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(runewidth.FillRight(cell, width))
			b.WriteString(" | ")
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

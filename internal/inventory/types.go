package inventory

// Package inventory implements a fixed-size grid of item slots. Each slot
// holds a single item type up to a per-slot capacity; adds spill over into
// matching and then empty slots, and whatever does not fit is dropped.

import "fmt"

// ItemType identifies what a slot holds. The zero value is None.
type ItemType int

const (
	// None marks an empty slot.
	None ItemType = iota
	Apple
	Bread
)

// String returns the built-in name of the item type.
func (t ItemType) String() string {
	switch t {
	case None:
		return "None"
	case Apple:
		return "Apple"
	case Bread:
		return "Bread"
	default:
		return fmt.Sprintf("Item(%d)", int(t))
	}
}

// Position is a grid coordinate (x, y) with origin at top-left.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// SlotData is the content of one grid cell. A slot is either empty
// (None, 0) or holds a positive amount of exactly one item type.
type SlotData struct {
	Item   ItemType `json:"item"`
	Amount int      `json:"amount"`
}

// IsEmpty reports whether the slot holds nothing.
func (s SlotData) IsEmpty() bool {
	return s.Item == None || s.Amount == 0
}

// Clean resets the slot to empty.
func (s *SlotData) Clean() {
	s.Item = None
	s.Amount = 0
}

// Config describes the grid shape and per-slot capacity.
type Config struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	SlotCapacity int `json:"slotCapacity"`
}

// Validate checks that all dimensions are positive.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.SlotCapacity <= 0 {
		return fmt.Errorf("%w: slot capacity %d", ErrInvalidConfig, c.SlotCapacity)
	}
	return nil
}

// Size is the number of slots in the grid.
func (c Config) Size() int { return c.Width * c.Height }

// TotalCapacity is the number of items the grid can hold when every slot is full.
func (c Config) TotalCapacity() int { return c.Size() * c.SlotCapacity }

// Contains reports whether p lies inside the grid.
func (c Config) Contains(p Position) bool {
	return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height
}

// Index maps a position to its row-major slot index.
func (c Config) Index(p Position) int { return p.X + c.Width*p.Y }

// PositionOf maps a row-major slot index back to its position.
func (c Config) PositionOf(index int) Position {
	return Position{X: index % c.Width, Y: index / c.Width}
}

// Data is the caller-owned slot storage, row-major.
type Data struct {
	Slots []SlotData `json:"slots"`
}

// NewData allocates an all-empty slot array sized for cfg.
func NewData(cfg Config) *Data {
	return &Data{Slots: make([]SlotData, cfg.Size())}
}

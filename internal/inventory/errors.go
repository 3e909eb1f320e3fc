package inventory

import "errors"

var (
	ErrInvalidConfig     = errors.New("inventory: invalid config")
	ErrDataSize          = errors.New("inventory: slot data does not match grid size")
	ErrOutOfBounds       = errors.New("inventory: position out of bounds")
	ErrInvalidItem       = errors.New("inventory: invalid item type")
	ErrInvalidAmount     = errors.New("inventory: amount must be positive")
	ErrItemMismatch      = errors.New("inventory: slot holds a different item")
	ErrSlotEmpty         = errors.New("inventory: slot is empty")
	ErrInsufficientItems = errors.New("inventory: not enough items")
)

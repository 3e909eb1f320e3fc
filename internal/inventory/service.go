package inventory

import (
	"fmt"

	"go.uber.org/zap"
)

// Option configures service construction.
type Option func(*Service)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNotifier shares an existing notifier instead of creating a new one.
func WithNotifier(n *Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.events = n
		}
	}
}

// WithRegistry attaches an item registry used for names in logs and dumps.
func WithRegistry(reg *Registry) Option {
	return func(s *Service) {
		s.registry = reg
	}
}

// RemoveOption tunes a single remove call.
type RemoveOption func(*removeOptions)

type removeOptions struct {
	drop bool
}

// WithoutDrop suppresses the items-dropped notification that normally
// follows a removal.
func WithoutDrop() RemoveOption {
	return func(o *removeOptions) { o.drop = false }
}

// Service runs the add/remove algorithms over caller-owned slot data.
// It assumes a single writer; callers serialize access.
type Service struct {
	data     *Data
	cfg      Config
	events   *Notifier
	registry *Registry
	logger   *zap.Logger
}

// NewService binds a service to data laid out according to cfg.
func NewService(data *Data, cfg Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: nil data", ErrDataSize)
	}
	if len(data.Slots) != cfg.Size() {
		return nil, fmt.Errorf("%w: have %d slots, grid needs %d", ErrDataSize, len(data.Slots), cfg.Size())
	}
	s := &Service{
		data:   data,
		cfg:    cfg,
		events: NewNotifier(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Config returns the grid configuration.
func (s *Service) Config() Config { return s.cfg }

// Registry returns the attached item registry, if any.
func (s *Service) Registry() *Registry { return s.registry }

// Notifier returns the notifier events are published on.
func (s *Service) Notifier() *Notifier { return s.events }

// OnItemsAdded registers a handler for items-added events.
func (s *Service) OnItemsAdded(h Handler) Subscription {
	return s.events.Subscribe(EventItemsAdded, h)
}

// OnItemsRemoved registers a handler for items-removed events.
func (s *Service) OnItemsRemoved(h Handler) Subscription {
	return s.events.Subscribe(EventItemsRemoved, h)
}

// OnItemsDropped registers a handler for items-dropped events.
func (s *Service) OnItemsDropped(h Handler) Subscription {
	return s.events.Subscribe(EventItemsDropped, h)
}

// Unsubscribe removes a handler registered through any On* method.
func (s *Service) Unsubscribe(sub Subscription) bool {
	return s.events.Unsubscribe(sub)
}

// Slot returns a copy of the slot at p.
func (s *Service) Slot(p Position) (SlotData, error) {
	if !s.cfg.Contains(p) {
		return SlotData{}, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	return s.data.Slots[s.cfg.Index(p)], nil
}

// Slots returns a copy of every slot in row-major order.
func (s *Service) Slots() []SlotData {
	out := make([]SlotData, len(s.data.Slots))
	copy(out, s.data.Slots)
	return out
}

// Add places amount items of the given type, topping up partial stacks of
// the same type first and then filling empty slots in row-major order.
// Whatever does not fit is dropped and returned.
func (s *Service) Add(item ItemType, amount int) (int, error) {
	if err := checkArgs(item, amount); err != nil {
		return 0, err
	}
	return s.distribute(item, amount), nil
}

// AddAt places items into the slot at p. Overflow beyond the slot's
// capacity is distributed like Add.
func (s *Service) AddAt(p Position, item ItemType, amount int) (int, error) {
	if !s.cfg.Contains(p) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if err := checkArgs(item, amount); err != nil {
		return 0, err
	}
	index := s.cfg.Index(p)
	slot := s.data.Slots[index]
	if !slot.IsEmpty() && slot.Item != item {
		return 0, fmt.Errorf("%w: %s holds %s, not %s", ErrItemMismatch, p, s.name(slot.Item), s.name(item))
	}
	remaining := s.fill(index, item, amount)
	if remaining == 0 {
		return 0, nil
	}
	return s.distribute(item, remaining), nil
}

// Remove takes amount items of the given type out of the grid, draining
// matching slots in row-major order. Nothing is touched unless the grid
// holds at least amount in total.
func (s *Service) Remove(item ItemType, amount int, opts ...RemoveOption) error {
	if err := checkArgs(item, amount); err != nil {
		return err
	}
	held := s.Count(item)
	if held < amount {
		s.logger.Debug("remove rejected",
			zap.String("item", s.name(item)),
			zap.Int("requested", amount),
			zap.Int("held", held))
		return fmt.Errorf("%w: want %d %s, have %d", ErrInsufficientItems, amount, s.name(item), held)
	}
	o := applyRemoveOptions(opts)

	remaining := amount
	for i := range s.data.Slots {
		if remaining == 0 {
			break
		}
		slot := s.data.Slots[i]
		if slot.IsEmpty() || slot.Item != item {
			continue
		}
		take := min(slot.Amount, remaining)
		s.take(i, item, take, o.drop)
		remaining -= take
	}
	if remaining != 0 {
		return fmt.Errorf("%w: removed %d of %d %s", ErrInsufficientItems, amount-remaining, amount, s.name(item))
	}
	return nil
}

// RemoveAt takes amount items out of the slot at p. The slot must hold the
// given type and at least amount of it.
func (s *Service) RemoveAt(p Position, item ItemType, amount int, opts ...RemoveOption) error {
	if !s.cfg.Contains(p) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if err := checkArgs(item, amount); err != nil {
		return err
	}
	index := s.cfg.Index(p)
	slot := s.data.Slots[index]
	switch {
	case slot.IsEmpty():
		return fmt.Errorf("%w: %s", ErrSlotEmpty, p)
	case slot.Item != item:
		return fmt.Errorf("%w: %s holds %s, not %s", ErrItemMismatch, p, s.name(slot.Item), s.name(item))
	case slot.Amount < amount:
		return fmt.Errorf("%w: %s holds %d, want %d", ErrInsufficientItems, p, slot.Amount, amount)
	}
	s.take(index, item, amount, applyRemoveOptions(opts).drop)
	return nil
}

// Count sums the amount of item held across all slots.
func (s *Service) Count(item ItemType) int {
	total := 0
	for _, slot := range s.data.Slots {
		if slot.Item == item {
			total += slot.Amount
		}
	}
	return total
}

// Has reports whether the grid holds at least amount of item.
func (s *Service) Has(item ItemType, amount int) bool {
	return s.Count(item) >= amount
}

// distribute runs the top-up pass, then the empty-slot pass, and drops
// whatever is left.
func (s *Service) distribute(item ItemType, amount int) int {
	remaining := amount
	for i := 0; i < len(s.data.Slots) && remaining > 0; i++ {
		slot := s.data.Slots[i]
		if slot.IsEmpty() || slot.Item != item || slot.Amount >= s.cfg.SlotCapacity {
			continue
		}
		remaining = s.fill(i, item, remaining)
	}
	for i := 0; i < len(s.data.Slots) && remaining > 0; i++ {
		if !s.data.Slots[i].IsEmpty() {
			continue
		}
		remaining = s.fill(i, item, remaining)
	}
	if remaining > 0 {
		s.logger.Warn("inventory full, dropping items",
			zap.String("item", s.name(item)),
			zap.Int("amount", remaining))
		s.events.Publish(Event{Kind: EventItemsDropped, Item: item, Amount: remaining})
	}
	return remaining
}

// fill puts as much of amount into slot index as its headroom allows and
// returns the leftover.
func (s *Service) fill(index int, item ItemType, amount int) int {
	slot := s.data.Slots[index]
	if slot.IsEmpty() {
		slot = SlotData{Item: item}
	}
	put := min(s.cfg.SlotCapacity-slot.Amount, amount)
	if put <= 0 {
		return amount
	}
	slot.Amount += put
	s.setSlot(index, slot)

	p := s.cfg.PositionOf(index)
	s.logger.Debug("items added",
		zap.String("item", s.name(item)),
		zap.Int("amount", put),
		zap.Int("x", p.X), zap.Int("y", p.Y))
	s.events.Publish(Event{Kind: EventItemsAdded, Item: item, Amount: put, Position: &p})
	return amount - put
}

// take removes amount from slot index. Callers have checked the slot.
func (s *Service) take(index int, item ItemType, amount int, drop bool) {
	slot := s.data.Slots[index]
	slot.Amount -= amount
	if slot.Amount == 0 {
		slot.Clean()
	}
	s.setSlot(index, slot)

	p := s.cfg.PositionOf(index)
	s.logger.Debug("items removed",
		zap.String("item", s.name(item)),
		zap.Int("amount", amount),
		zap.Int("x", p.X), zap.Int("y", p.Y))
	s.events.Publish(Event{Kind: EventItemsRemoved, Item: item, Amount: amount, Position: &p})
	if drop {
		s.events.Publish(Event{Kind: EventItemsDropped, Item: item, Amount: amount})
	}
}

func (s *Service) setSlot(index int, slot SlotData) {
	s.data.Slots[index] = slot
}

func (s *Service) name(t ItemType) string {
	return s.registry.Name(t)
}

func checkArgs(item ItemType, amount int) error {
	if item <= None {
		return fmt.Errorf("%w: %s", ErrInvalidItem, item)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}
	return nil
}

func applyRemoveOptions(opts []RemoveOption) removeOptions {
	o := removeOptions{drop: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

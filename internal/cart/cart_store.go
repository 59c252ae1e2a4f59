package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxQuantity caps a single line, matching the cart_items check constraint.
const MaxQuantity int32 = 999

// Item is one line of a cart. A cart holds at most one line per product.
type Item struct {
	ID             string
	ProductID      uuid.UUID
	ProductName    string
	ImageURL       string
	UnitPrice      decimal.Decimal
	CompareAtPrice decimal.Decimal
	Quantity       int32
}

func (it Item) lineTotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt32(it.Quantity))
}

func (it Item) lineSavings() decimal.Decimal {
	diff := it.CompareAtPrice.Sub(it.UnitPrice)
	if !diff.IsPositive() {
		return decimal.Zero
	}
	return diff.Mul(decimal.NewFromInt32(it.Quantity))
}

// Summary is derived from the items and only ever changed by Store.
type Summary struct {
	Subtotal     decimal.Decimal
	TotalItems   int64
	TotalSavings decimal.Decimal
}

// Store is the in-memory cart state. Aggregates are maintained by delta on
// every mutation; nothing outside this file writes to summary.
type Store struct {
	items   []Item
	index   map[uuid.UUID]int
	summary Summary
}

func NewStore() *Store {
	return &Store{
		index: make(map[uuid.UUID]int),
		summary: Summary{
			Subtotal:     decimal.Zero,
			TotalSavings: decimal.Zero,
		},
	}
}

// Add inserts a line, or bumps the quantity of the existing line for the
// same product. The stored unit price of an existing line is kept and the
// merged quantity is capped at MaxQuantity.
func (s *Store) Add(it Item) (Item, error) {
	if it.ProductID == uuid.Nil {
		return Item{}, ErrInvalidProductID
	}
	if it.Quantity < 1 || it.Quantity > MaxQuantity {
		return Item{}, ErrInvalidQty
	}
	if it.UnitPrice.IsNegative() || it.CompareAtPrice.IsNegative() {
		return Item{}, ErrInvalidPrice
	}

	if pos, ok := s.index[it.ProductID]; ok {
		return s.setQuantity(pos, capQuantity(s.items[pos].Quantity, it.Quantity)), nil
	}

	s.items = append(s.items, it)
	s.index[it.ProductID] = len(s.items) - 1
	s.apply(it, 1)
	return it, nil
}

func (s *Store) UpdateQuantity(productID uuid.UUID, qty int32) (Item, error) {
	if qty < 1 || qty > MaxQuantity {
		return Item{}, ErrInvalidQty
	}
	pos, ok := s.index[productID]
	if !ok {
		return Item{}, ErrCartItemNotFound
	}
	return s.setQuantity(pos, qty), nil
}

func (s *Store) Increment(productID uuid.UUID) (Item, error) {
	pos, ok := s.index[productID]
	if !ok {
		return Item{}, ErrCartItemNotFound
	}
	return s.setQuantity(pos, capQuantity(s.items[pos].Quantity, 1)), nil
}

// Decrement lowers the quantity by one and drops the line once it would
// reach zero. removed reports whether the line is gone.
func (s *Store) Decrement(productID uuid.UUID) (it Item, removed bool, err error) {
	pos, ok := s.index[productID]
	if !ok {
		return Item{}, false, ErrCartItemNotFound
	}
	if s.items[pos].Quantity <= 1 {
		it, err = s.Remove(productID)
		return it, true, err
	}
	return s.setQuantity(pos, s.items[pos].Quantity-1), false, nil
}

func (s *Store) Remove(productID uuid.UUID) (Item, error) {
	pos, ok := s.index[productID]
	if !ok {
		return Item{}, ErrCartItemNotFound
	}

	removed := s.items[pos]
	s.apply(removed, -1)

	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, productID)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ProductID] = i
	}
	return removed, nil
}

func (s *Store) Clear() {
	s.items = nil
	s.index = make(map[uuid.UUID]int)
	s.summary = Summary{
		Subtotal:     decimal.Zero,
		TotalSavings: decimal.Zero,
	}
}

func (s *Store) Get(productID uuid.UUID) (Item, bool) {
	pos, ok := s.index[productID]
	if !ok {
		return Item{}, false
	}
	return s.items[pos], true
}

// Items returns a copy; callers cannot mutate the store through it.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Summary() Summary {
	return s.summary
}

func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Store) setQuantity(pos int, qty int32) Item {
	old := s.items[pos]
	s.apply(old, -1)

	updated := old
	updated.Quantity = qty
	s.items[pos] = updated
	s.apply(updated, 1)
	return updated
}

func capQuantity(current, delta int32) int32 {
	return int32(min(int64(current)+int64(delta), int64(MaxQuantity)))
}

// apply adds (sign=1) or subtracts (sign=-1) one line's contribution.
func (s *Store) apply(it Item, sign int64) {
	if sign > 0 {
		s.summary.Subtotal = s.summary.Subtotal.Add(it.lineTotal())
		s.summary.TotalSavings = s.summary.TotalSavings.Add(it.lineSavings())
		s.summary.TotalItems += int64(it.Quantity)
		return
	}
	s.summary.Subtotal = s.summary.Subtotal.Sub(it.lineTotal())
	s.summary.TotalSavings = s.summary.TotalSavings.Sub(it.lineSavings())
	s.summary.TotalItems -= int64(it.Quantity)
}

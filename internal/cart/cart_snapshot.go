package cart

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const snapshotVersion = 1

type snapshotItem struct {
	ID             string          `json:"id"`
	ProductID      uuid.UUID       `json:"productId"`
	ProductName    string          `json:"productName"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	CompareAtPrice decimal.Decimal `json:"compareAtPrice"`
	Quantity       int32           `json:"quantity"`
}

type snapshotDoc struct {
	Version      int             `json:"version"`
	Items        json.RawMessage `json:"items"`
	Subtotal     json.RawMessage `json:"subtotal"`
	TotalItems   json.RawMessage `json:"totalItems"`
	TotalSavings json.RawMessage `json:"totalSavings"`
}

// EncodeSnapshot serializes the store together with its aggregates so a
// reader can check them against the items.
func EncodeSnapshot(s *Store) ([]byte, error) {
	items := make([]snapshotItem, 0, s.Len())
	for _, it := range s.Items() {
		items = append(items, snapshotItem{
			ID:             it.ID,
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			ImageURL:       it.ImageURL,
			UnitPrice:      it.UnitPrice,
			CompareAtPrice: it.CompareAtPrice,
			Quantity:       it.Quantity,
		})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot items: %w", err)
	}

	sum := s.Summary()
	return json.Marshal(snapshotDoc{
		Version:      snapshotVersion,
		Items:        rawItems,
		Subtotal:     json.RawMessage(sum.Subtotal.String()),
		TotalItems:   json.RawMessage(fmt.Sprintf("%d", sum.TotalItems)),
		TotalSavings: json.RawMessage(sum.TotalSavings.String()),
	})
}

// DecodeSnapshot rebuilds a Store from a persisted blob. Any structural
// problem rejects the whole blob with ErrMalformedSnapshot; a partially
// valid snapshot is never returned.
func DecodeSnapshot(blob []byte) (*Store, error) {
	var doc snapshotDoc
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if doc.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedSnapshot, doc.Version)
	}

	if !isJSONArray(doc.Items) {
		return nil, fmt.Errorf("%w: items is not an array", ErrMalformedSnapshot)
	}

	subtotal, err := jsonNumber(doc.Subtotal)
	if err != nil {
		return nil, fmt.Errorf("%w: subtotal: %v", ErrMalformedSnapshot, err)
	}
	totalItems, err := jsonNumber(doc.TotalItems)
	if err != nil {
		return nil, fmt.Errorf("%w: totalItems: %v", ErrMalformedSnapshot, err)
	}
	savings := decimal.Zero
	if len(doc.TotalSavings) > 0 {
		if savings, err = jsonNumber(doc.TotalSavings); err != nil {
			return nil, fmt.Errorf("%w: totalSavings: %v", ErrMalformedSnapshot, err)
		}
	}

	var items []snapshotItem
	if err := json.Unmarshal(doc.Items, &items); err != nil {
		return nil, fmt.Errorf("%w: items: %v", ErrMalformedSnapshot, err)
	}

	store := NewStore()
	for _, it := range items {
		if _, dup := store.Get(it.ProductID); dup {
			return nil, fmt.Errorf("%w: duplicate product %s", ErrMalformedSnapshot, it.ProductID)
		}
		if _, err := store.Add(Item{
			ID:             it.ID,
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			ImageURL:       it.ImageURL,
			UnitPrice:      it.UnitPrice,
			CompareAtPrice: it.CompareAtPrice,
			Quantity:       it.Quantity,
		}); err != nil {
			return nil, fmt.Errorf("%w: item %s: %v", ErrMalformedSnapshot, it.ProductID, err)
		}
	}

	sum := store.Summary()
	if !sum.Subtotal.Equal(subtotal) || !decimal.NewFromInt(sum.TotalItems).Equal(totalItems) || !sum.TotalSavings.Equal(savings) {
		return nil, fmt.Errorf("%w: aggregates do not match items", ErrMalformedSnapshot)
	}

	return store, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// jsonNumber only accepts an unquoted JSON number.
func jsonNumber(raw json.RawMessage) (decimal.Decimal, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] == '"' || trimmed[0] == 'n' {
		return decimal.Zero, fmt.Errorf("not a number: %q", string(trimmed))
	}
	return decimal.NewFromString(string(trimmed))
}

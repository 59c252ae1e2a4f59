package cart_test

import (
	"testing"

	"go-storefront-api/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	s := cart.NewStore()
	a := newItem("549", 2)
	a.CompareAtPrice = dec("600")
	a.ImageURL = "https://cdn.example.com/a.png"
	_, _ = s.Add(a)
	_, _ = s.Add(newItem("19.99", 3))

	blob, err := cart.EncodeSnapshot(s)
	require.NoError(t, err)

	got, err := cart.DecodeSnapshot(blob)
	require.NoError(t, err)

	assert.Equal(t, s.Len(), got.Len())
	assert.True(t, s.Summary().Subtotal.Equal(got.Summary().Subtotal))
	assert.Equal(t, s.Summary().TotalItems, got.Summary().TotalItems)
	assert.True(t, s.Summary().TotalSavings.Equal(got.Summary().TotalSavings))

	restored, ok := got.Get(a.ProductID)
	require.True(t, ok)
	assert.Equal(t, a.ImageURL, restored.ImageURL)
	assert.True(t, a.UnitPrice.Equal(restored.UnitPrice))
}

func TestSnapshot_EmptyStore(t *testing.T) {
	blob, err := cart.EncodeSnapshot(cart.NewStore())
	require.NoError(t, err)

	got, err := cart.DecodeSnapshot(blob)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestSnapshot_RejectsMalformed(t *testing.T) {
	const pid = "0f5c2a0e-8d3b-4c61-b8a1-6c2b0a9d4e11"
	item := func(price string, qty string) string {
		return `{"id":"i1","productId":"` + pid + `","productName":"x","unitPrice":` + price + `,"compareAtPrice":"0","quantity":` + qty + `}`
	}

	cases := map[string]string{
		"not_json":            `{{{`,
		"wrong_version":       `{"version":9,"items":[],"subtotal":0,"totalItems":0}`,
		"items_not_array":     `{"version":1,"items":{"a":1},"subtotal":0,"totalItems":0}`,
		"items_missing":       `{"version":1,"subtotal":0,"totalItems":0}`,
		"subtotal_string":     `{"version":1,"items":[],"subtotal":"0","totalItems":0}`,
		"subtotal_missing":    `{"version":1,"items":[],"totalItems":0}`,
		"total_items_null":    `{"version":1,"items":[],"subtotal":0,"totalItems":null}`,
		"zero_quantity":       `{"version":1,"items":[` + item(`"5"`, "0") + `],"subtotal":0,"totalItems":0}`,
		"negative_price":      `{"version":1,"items":[` + item(`"-5"`, "1") + `],"subtotal":-5,"totalItems":1}`,
		"duplicate_product":   `{"version":1,"items":[` + item(`"5"`, "1") + `,` + item(`"5"`, "1") + `],"subtotal":10,"totalItems":2}`,
		"aggregates_mismatch": `{"version":1,"items":[` + item(`"5"`, "2") + `],"subtotal":5,"totalItems":2}`,
	}

	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := cart.DecodeSnapshot([]byte(blob))
			assert.ErrorIs(t, err, cart.ErrMalformedSnapshot)
			assert.Nil(t, got)
		})
	}
}

func TestSnapshot_AcceptsNumericPriceForms(t *testing.T) {
	const pid = "0f5c2a0e-8d3b-4c61-b8a1-6c2b0a9d4e11"
	blob := `{"version":1,"items":[{"id":"i1","productId":"` + pid + `","productName":"x","unitPrice":549,"compareAtPrice":"0","quantity":2}],"subtotal":1098,"totalItems":2,"totalSavings":0}`

	got, err := cart.DecodeSnapshot([]byte(blob))
	require.NoError(t, err)
	assert.True(t, dec("1098").Equal(got.Summary().Subtotal))
}

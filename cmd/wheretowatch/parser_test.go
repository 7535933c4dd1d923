package wheretowatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertdiaaz/letterfin/internal/errors"
)

func TestParseServices_SingleCategory(t *testing.T) {
	payload := `{"best":{"stream":[{"name":"Netflix","price":9.99,"currency":"USD"}]}}`

	services, err := ParseServices(payload)
	require.NoError(t, err)
	require.Len(t, services, 1)

	stream, ok := services["stream"]
	require.True(t, ok)
	require.Len(t, stream, 1)

	service := stream[0]
	assert.Equal(t, "Netflix", service.Name)
	require.NotNil(t, service.Price)
	assert.Equal(t, 9.99, *service.Price)
	assert.Equal(t, "USD", service.Currency)
	// Unset fields default to empty strings
	assert.Equal(t, "", service.Icon)
	assert.Equal(t, "", service.Locale)
	assert.Equal(t, "", service.ViewURL)
	assert.Equal(t, "", service.Format)
	assert.Equal(t, "", service.Type)
}

func TestParseServices_AllCategories(t *testing.T) {
	payload := `{"best":{
		"stream":[{"name":"Netflix","format":"4K","type":"subscription"}],
		"rent":[{"name":"Apple TV","price":3.99,"currency":"USD"},{"name":"Amazon Video","price":3.99,"currency":"USD"}],
		"buy":[{"name":"Apple TV","price":14.99,"currency":"USD"}]
	}}`

	services, err := ParseServices(payload)
	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Len(t, services["stream"], 1)
	assert.Len(t, services["rent"], 2)
	assert.Len(t, services["buy"], 1)

	// Source order preserved within a category
	assert.Equal(t, "Apple TV", services["rent"][0].Name)
	assert.Equal(t, "Amazon Video", services["rent"][1].Name)
}

func TestParseServices_MissingCategoriesOmitted(t *testing.T) {
	payload := `{"best":{"rent":[{"name":"Apple TV"}]}}`

	services, err := ParseServices(payload)
	require.NoError(t, err)
	require.Len(t, services, 1)

	_, hasStream := services["stream"]
	assert.False(t, hasStream)
	_, hasBuy := services["buy"]
	assert.False(t, hasBuy)
}

func TestParseServices_NoBestKey(t *testing.T) {
	services, err := ParseServices(`{"other":{}}`)
	require.NoError(t, err)
	assert.Empty(t, services)
}

func TestParseServices_EmptyBest(t *testing.T) {
	services, err := ParseServices(`{"best":{}}`)
	require.NoError(t, err)
	assert.Empty(t, services)
}

func TestParseServices_PriceHandling(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    *float64
	}{
		{
			name:    "positive price kept",
			payload: `{"best":{"rent":[{"name":"A","price":3.99}]}}`,
			want:    floatPtr(3.99),
		},
		{
			name:    "zero price dropped",
			payload: `{"best":{"rent":[{"name":"A","price":0}]}}`,
			want:    nil,
		},
		{
			name:    "null price dropped",
			payload: `{"best":{"rent":[{"name":"A","price":null}]}}`,
			want:    nil,
		},
		{
			name:    "missing price dropped",
			payload: `{"best":{"rent":[{"name":"A"}]}}`,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, err := ParseServices(tt.payload)
			require.NoError(t, err)
			require.Len(t, services["rent"], 1)

			price := services["rent"][0].Price
			if tt.want == nil {
				assert.Nil(t, price)
			} else {
				require.NotNil(t, price)
				assert.Equal(t, *tt.want, *price)
			}
		})
	}
}

func TestParseServices_MalformedJSON(t *testing.T) {
	services, err := ParseServices(`{"best":`)
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))
	assert.Contains(t, err.Error(), "could not parse streaming services data")
	assert.Nil(t, services)
}

func TestParseServices_UntraversableBest(t *testing.T) {
	services, err := ParseServices(`{"best":"not an object"}`)
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))
	assert.Nil(t, services)
}

func floatPtr(f float64) *float64 {
	return &f
}

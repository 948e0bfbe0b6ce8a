package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-system/pkg/constants"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func intPtr(v int) *int { return &v }

func TestEndOfLifeDate(t *testing.T) {
	e := Equipment{PurchaseDate: datePtr(2020, time.June, 15), LifespanYears: intPtr(5)}

	eol := e.EndOfLifeDate()
	require.NotNil(t, eol)
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), *eol)
}

func TestEndOfLifeDateClampsLeapDay(t *testing.T) {
	e := Equipment{PurchaseDate: datePtr(2020, time.February, 29), LifespanYears: intPtr(3)}

	eol := e.EndOfLifeDate()
	require.NotNil(t, eol)
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), *eol,
		"Feb 29 plus three years lands on Feb 28, not Mar 1")

	e.LifespanYears = intPtr(4)
	eol = e.EndOfLifeDate()
	require.NotNil(t, eol)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), *eol,
		"leap-to-leap keeps Feb 29")
}

func TestEndOfLifeDateMissingInputs(t *testing.T) {
	assert.Nil(t, (&Equipment{LifespanYears: intPtr(5)}).EndOfLifeDate())
	assert.Nil(t, (&Equipment{PurchaseDate: datePtr(2020, time.June, 15)}).EndOfLifeDate())
}

func TestIsEndOfLifeReached(t *testing.T) {
	e := Equipment{PurchaseDate: datePtr(2020, time.June, 15), LifespanYears: intPtr(5)}

	assert.False(t, e.IsEndOfLifeReached(time.Date(2025, time.June, 14, 23, 59, 0, 0, time.UTC)))
	assert.True(t, e.IsEndOfLifeReached(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)),
		"end of life is reached on the day itself")
	assert.True(t, e.IsEndOfLifeReached(time.Date(2025, time.June, 16, 8, 30, 0, 0, time.UTC)))

	noLifespan := Equipment{PurchaseDate: datePtr(2020, time.June, 15)}
	assert.False(t, noLifespan.IsEndOfLifeReached(time.Date(2099, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestIsRetired(t *testing.T) {
	assert.True(t, (&Equipment{Status: constants.EquipmentStatusRetired}).IsRetired())
	assert.False(t, (&Equipment{Status: constants.EquipmentStatusActive}).IsRetired())
}

func TestPeripheralIsLowStock(t *testing.T) {
	assert.True(t, (&Peripheral{Quantity: 2, MinStockLevel: 3}).IsLowStock())
	assert.True(t, (&Peripheral{Quantity: 3, MinStockLevel: 3}).IsLowStock(), "threshold itself counts as low")
	assert.False(t, (&Peripheral{Quantity: 4, MinStockLevel: 3}).IsLowStock())
}

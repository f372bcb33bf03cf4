package stay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenOneAllocationPerRoom(t *testing.T) {
	line := standardLine(t)
	line.Count = 3

	allocations := line.Flatten()

	require.Len(t, allocations, 3)
	for _, a := range allocations {
		assert.Equal(t, line.RoomType, a.RoomType)
		require.Len(t, a.PricingByDay, 3)
		// single-room totals, not count-multiplied
		requireDecEqual(t, "636", a.GuestTotal)
		requireDecEqual(t, "360", a.OwnerTotal)
		requireDecEqual(t, "212", a.ChosenPrice)
	}
}

func TestFlattenCopiesBreakdown(t *testing.T) {
	line := standardLine(t)
	line.Count = 2

	allocations := line.Flatten()
	allocations[0].PricingByDay[0].Price = dec("1")

	// mutating one allocation must not leak into the line or its siblings
	requireDecEqual(t, "200", line.PricingByDay[0].Price)
	requireDecEqual(t, "200", allocations[1].PricingByDay[0].Price)
}

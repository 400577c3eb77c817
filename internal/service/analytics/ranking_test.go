package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

func TestShares(t *testing.T) {
	shares := Shares([]domain.RankedEntity{
		{ID: "s1", Name: "Fade", Revenue: 100, Appointments: 1},
		{ID: "s2", Name: "Beard", Revenue: 300, Appointments: 3},
	})

	require.Len(t, shares, 2)
	assert.InDelta(t, 25, shares[0].RevenueShare, 1e-9)
	assert.InDelta(t, 75, shares[1].RevenueShare, 1e-9)
	assert.InDelta(t, 100, shares[0].RevenueShare+shares[1].RevenueShare, 1e-9)
	assert.InDelta(t, 25, shares[0].AppointmentShare, 1e-9)
	assert.Equal(t, "Fade", shares[0].Name)
}

func TestShares_KeepsInputOrder(t *testing.T) {
	shares := Shares([]domain.RankedEntity{
		{ID: "low", Revenue: 10},
		{ID: "high", Revenue: 90},
		{ID: "low", Revenue: 10},
	})

	require.Len(t, shares, 3)
	assert.Equal(t, "low", shares[0].ID)
	assert.Equal(t, "high", shares[1].ID)
	assert.Equal(t, "low", shares[2].ID)
}

func TestShares_ZeroTotals(t *testing.T) {
	shares := Shares([]domain.RankedEntity{{ID: "a"}, {ID: "b"}})
	for _, s := range shares {
		assert.Zero(t, s.RevenueShare)
		assert.Zero(t, s.AppointmentShare)
	}

	assert.Empty(t, Shares(nil))
}

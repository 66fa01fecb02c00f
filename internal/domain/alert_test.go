package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to domain.AlertStatus
		want     bool
	}{
		{domain.AlertStatusActive, domain.AlertStatusActive, true},
		{domain.AlertStatusActive, domain.AlertStatusInvestigating, true},
		{domain.AlertStatusActive, domain.AlertStatusPendingConfirmation, true},
		{domain.AlertStatusActive, domain.AlertStatusResolved, true},
		{domain.AlertStatusInvestigating, domain.AlertStatusInvestigating, true},
		{domain.AlertStatusInvestigating, domain.AlertStatusPendingConfirmation, true},
		{domain.AlertStatusInvestigating, domain.AlertStatusResolved, true},
		{domain.AlertStatusPendingConfirmation, domain.AlertStatusInvestigating, true},
		{domain.AlertStatusPendingConfirmation, domain.AlertStatusResolved, true},

		{domain.AlertStatusInvestigating, domain.AlertStatusActive, false},
		{domain.AlertStatusPendingConfirmation, domain.AlertStatusActive, false},
		{domain.AlertStatusResolved, domain.AlertStatusActive, false},
		{domain.AlertStatusResolved, domain.AlertStatusInvestigating, false},
		{domain.AlertStatusResolved, domain.AlertStatusPendingConfirmation, false},
		{domain.AlertStatusResolved, domain.AlertStatusResolved, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, domain.CanTransition(c.from, c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestResolveReachableFromEveryNonTerminalState(t *testing.T) {
	t.Parallel()

	for _, from := range []domain.AlertStatus{
		domain.AlertStatusActive,
		domain.AlertStatusInvestigating,
		domain.AlertStatusPendingConfirmation,
	} {
		assert.True(t, domain.CanTransition(from, domain.AlertStatusResolved), "from %s", from)
	}
}

func TestAlertStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.AlertStatusResolved.Terminal())
	assert.False(t, domain.AlertStatusActive.Terminal())
	assert.True(t, domain.AlertStatusPendingConfirmation.Valid())
	assert.False(t, domain.AlertStatus("closed").Valid())
}

func TestTouristInsideRestrictedZone(t *testing.T) {
	t.Parallel()

	var noHistory domain.Tourist
	assert.False(t, noHistory.InsideRestrictedZone())

	withFix := domain.Tourist{Current: &domain.LocationFix{InsideZone: true}}
	assert.True(t, withFix.InsideRestrictedZone())

	outside := domain.Tourist{Current: &domain.LocationFix{InsideZone: false}}
	assert.False(t, outside.InsideRestrictedZone())
}

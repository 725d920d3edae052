package gamification

import (
	"context"
	"errors"
	"testing"

	model "github.com/BasileDS/royaume-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrich_ProfileErrorDegradesGracefully(t *testing.T) {
	aggregates := &fakeAggregates{
		windowed: []model.UserTotal{
			{CustomerID: alice, TotalXP: 100},
		},
	}
	profiles := &fakeProfiles{err: errors.New("profiles unavailable")}
	svc := newTestService(nil, aggregates, profiles, nil)

	entries, err := svc.WindowedLeaderboard(context.Background(), WindowWeekly, 50)

	// Le classement reste affichable, juste sans username ni avatar
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, alice, entries[0].CustomerID)
	assert.Empty(t, entries[0].Username)
	assert.Empty(t, entries[0].AvatarURL)
}

func TestEnrich_FetchesOnlyRetainedCustomers(t *testing.T) {
	aggregates := &fakeAggregates{
		windowed: []model.UserTotal{
			{CustomerID: alice, TotalXP: 100},
			{CustomerID: bob, TotalXP: 90},
		},
	}
	profiles := &fakeProfiles{}
	svc := newTestService(nil, aggregates, profiles, nil)

	_, err := svc.WindowedLeaderboard(context.Background(), WindowWeekly, 2)

	require.NoError(t, err)
	require.Len(t, profiles.requested, 1)
	assert.ElementsMatch(t, []string{alice, bob}, profiles.requested[0])
}

func TestFormatDisplayName(t *testing.T) {
	named := model.LeaderboardEntry{Username: "alice_metz"}
	assert.Equal(t, "alice_metz", FormatDisplayName(named))

	anonymous := model.LeaderboardEntry{CustomerID: alice}
	assert.Equal(t, "Utilisateur anonyme", FormatDisplayName(anonymous))
}

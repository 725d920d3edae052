package gamification

import (
	"context"
	"errors"
	"testing"

	model "github.com/BasileDS/royaume-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testThresholds() []model.LevelThreshold {
	return []model.LevelThreshold{
		{ID: 1, Level: 1, XPRequired: 0, Name: "Écuyer", SortOrder: 1},
		{ID: 2, Level: 2, XPRequired: 100, Name: "Chevalier", SortOrder: 2},
		{ID: 3, Level: 3, XPRequired: 300, Name: "Baron", SortOrder: 3},
	}
}

func TestResolveLevel_MidLevel(t *testing.T) {
	progress := ResolveLevel(testThresholds(), 150)

	require.NotNil(t, progress.CurrentLevel)
	require.NotNil(t, progress.NextLevel)
	assert.Equal(t, 2, progress.CurrentLevel.Level)
	assert.Equal(t, 3, progress.NextLevel.Level)
	assert.Equal(t, 25.0, progress.ProgressPercent)
	assert.Equal(t, 150, progress.XPToNextLevel)
	assert.Equal(t, 150, progress.CurrentXP)
	assert.Equal(t, 300, progress.NextLevelXP)
}

func TestResolveLevel_MaxLevel(t *testing.T) {
	progress := ResolveLevel(testThresholds(), 300)

	require.NotNil(t, progress.CurrentLevel)
	assert.Equal(t, 3, progress.CurrentLevel.Level)
	assert.Nil(t, progress.NextLevel)
	assert.Equal(t, 100.0, progress.ProgressPercent)
	assert.Equal(t, 0, progress.XPToNextLevel)
	assert.Equal(t, 300, progress.NextLevelXP)
}

func TestResolveLevel_BeyondMaxLevel(t *testing.T) {
	progress := ResolveLevel(testThresholds(), 9999)

	require.NotNil(t, progress.CurrentLevel)
	assert.Equal(t, 3, progress.CurrentLevel.Level)
	assert.Equal(t, 100.0, progress.ProgressPercent)
	assert.Equal(t, 0, progress.XPToNextLevel)
}

func TestResolveLevel_BelowFirstThreshold(t *testing.T) {
	// Table dont le premier palier demande déjà de l'XP
	thresholds := []model.LevelThreshold{
		{ID: 1, Level: 1, XPRequired: 100, Name: "Chevalier"},
		{ID: 2, Level: 2, XPRequired: 300, Name: "Baron"},
	}

	progress := ResolveLevel(thresholds, 50)

	require.NotNil(t, progress.CurrentLevel)
	require.NotNil(t, progress.NextLevel)
	assert.Equal(t, 1, progress.CurrentLevel.Level)
	assert.Equal(t, 2, progress.NextLevel.Level)
	assert.Equal(t, 0.0, progress.ProgressPercent)
	assert.Equal(t, 250, progress.XPToNextLevel)
}

func TestResolveLevel_EmptyTable(t *testing.T) {
	progress := ResolveLevel(nil, 500)

	assert.Nil(t, progress.CurrentLevel)
	assert.Nil(t, progress.NextLevel)
	assert.Equal(t, 0.0, progress.ProgressPercent)
	assert.Equal(t, 0, progress.XPToNextLevel)
	assert.Equal(t, 500, progress.CurrentXP)
}

func TestResolveLevel_SingleThreshold(t *testing.T) {
	thresholds := []model.LevelThreshold{
		{ID: 1, Level: 1, XPRequired: 0, Name: "Écuyer"},
	}

	progress := ResolveLevel(thresholds, 0)

	require.NotNil(t, progress.CurrentLevel)
	assert.Nil(t, progress.NextLevel)
	assert.Equal(t, 100.0, progress.ProgressPercent)
}

func TestResolveLevel_ZeroSpanGuard(t *testing.T) {
	// Deux paliers au même seuil : le span nul ne doit pas diviser par zéro
	thresholds := []model.LevelThreshold{
		{ID: 1, Level: 1, XPRequired: 100, Name: "A"},
		{ID: 2, Level: 2, XPRequired: 100, Name: "B"},
	}

	progress := ResolveLevel(thresholds, 50)

	assert.Equal(t, 0.0, progress.ProgressPercent)
}

func TestResolveLevel_MonotonicProperty(t *testing.T) {
	thresholds := testThresholds()

	for totalXP := 0; totalXP <= 600; totalXP += 10 {
		progress := ResolveLevel(thresholds, totalXP)

		require.NotNil(t, progress.CurrentLevel, "totalXP=%d", totalXP)
		assert.LessOrEqual(t, progress.CurrentLevel.XPRequired, totalXP, "totalXP=%d", totalXP)
		if progress.NextLevel != nil {
			assert.Greater(t, progress.NextLevel.XPRequired, totalXP, "totalXP=%d", totalXP)
		}
		assert.GreaterOrEqual(t, progress.ProgressPercent, 0.0, "totalXP=%d", totalXP)
		assert.LessOrEqual(t, progress.ProgressPercent, 100.0, "totalXP=%d", totalXP)
	}
}

func TestResolveUserLevel_FetchesThresholdsOnce(t *testing.T) {
	thresholds := &fakeThresholds{thresholds: testThresholds()}
	svc := newTestService(nil, nil, nil, thresholds)

	progress, err := svc.ResolveUserLevel(context.Background(), 150)

	require.NoError(t, err)
	assert.Equal(t, 1, thresholds.calls)
	assert.Equal(t, 2, progress.CurrentLevel.Level)
}

func TestResolveUserLevel_FetchError(t *testing.T) {
	thresholds := &fakeThresholds{err: errors.New("directus unreachable")}
	svc := newTestService(nil, nil, nil, thresholds)

	progress, err := svc.ResolveUserLevel(context.Background(), 150)

	require.Error(t, err)
	assert.Nil(t, progress.CurrentLevel)
	assert.Nil(t, progress.NextLevel)
	assert.Equal(t, 150, progress.CurrentXP)
}

func TestLevelByNumber(t *testing.T) {
	thresholds := &fakeThresholds{thresholds: testThresholds()}
	svc := newTestService(nil, nil, nil, thresholds)

	level, err := svc.LevelByNumber(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, level)
	assert.Equal(t, "Chevalier", level.Name)

	missing, err := svc.LevelByNumber(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

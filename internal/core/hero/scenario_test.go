// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/hero"
	"github.com/taibuivan/querylab/internal/platform/apperr"
)

func newService(repo hero.Repository) *hero.Service {
	return hero.NewService(repo, slog.New(slog.DiscardHandler))
}

// assertEnergy walks both variants through spending, exhaustion and recharging.
func assertEnergy(t *testing.T, service *hero.Service) {
	t.Helper()
	ctx := context.Background()

	spider := &hero.Hero{Name: "Peter Parker", HeroTitle: "Spider-Man", Energy: 100}
	require.NoError(t, service.CreateHero(ctx, spider))
	flash := &hero.Hero{Name: "Barry Allen", HeroTitle: "The Flash", Energy: 65}
	require.NoError(t, service.CreateHero(ctx, flash))

	energy := func(id int64) int {
		stored, err := service.GetHero(ctx, id)
		require.NoError(t, err)
		return stored.Energy
	}

	report, err := service.SwingFromBuildings(ctx, spider.ID)
	require.NoError(t, err)
	assert.Equal(t, "Peter Parker as Spider Hero swings from buildings using web shooters", report)
	assert.Equal(t, 20, energy(spider.ID))

	report, err = service.SwingFromBuildings(ctx, spider.ID)
	require.NoError(t, err)
	assert.Equal(t, "Peter Parker as Spider Hero is out of web shooter fluid", report)
	assert.Equal(t, 20, energy(spider.ID), "an exhausted hero is not saved")

	recharged, err := service.RechargeEnergy(ctx, spider.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 70, recharged.Energy)

	recharged, err = service.RechargeEnergy(ctx, spider.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, hero.MaxEnergy, recharged.Energy)
	assert.Equal(t, hero.MaxEnergy, energy(spider.ID))

	report, err = service.RunAtSuperSpeed(ctx, flash.ID)
	require.NoError(t, err)
	assert.Equal(t, "Barry Allen as Flash Hero needs to recharge the speed force", report, "zero remaining energy is exhaustion")
	assert.Equal(t, 65, energy(flash.ID))

	_, err = service.RechargeEnergy(ctx, flash.ID, 1)
	require.NoError(t, err)
	report, err = service.RunAtSuperSpeed(ctx, flash.ID)
	require.NoError(t, err)
	assert.Equal(t, "Barry Allen as Flash Hero runs at lightning speed, saving the day", report)
	assert.Equal(t, 1, energy(flash.ID))

	_, err = service.RechargeEnergy(ctx, 999, 10)
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))

	_, err = service.RunAtSuperSpeed(ctx, 999)
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
}

// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import "context"

// Repository persists heroes. Energy updates are atomic per hero.
type Repository interface {
	CreateHero(ctx context.Context, hero *Hero) error
	GetHero(ctx context.Context, id int64) (*Hero, error)

	// Recharge adds amount to the hero's energy, capped at MaxEnergy.
	Recharge(ctx context.Context, id int64, amount int) (*Hero, error)

	// SpendEnergy subtracts cost only when the remainder stays above zero. It reports whether
	// the energy was spent and returns the hero as stored afterwards.
	SpendEnergy(ctx context.Context, id int64, cost int) (*Hero, bool, error)
}

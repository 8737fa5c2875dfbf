// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import (
	"context"
	"log/slog"
)

// Service manages hero energy. Nothing here is cached.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) CreateHero(ctx context.Context, hero *Hero) error {
	if err := ValidateHero(hero); err != nil {
		return err
	}
	if err := service.repo.CreateHero(ctx, hero); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "hero_created", slog.Int64("hero_id", hero.ID))
	return nil
}

func (service *Service) GetHero(ctx context.Context, id int64) (*Hero, error) {
	return service.repo.GetHero(ctx, id)
}

// RechargeEnergy adds amount to the hero's energy, capped at MaxEnergy, and saves it.
func (service *Service) RechargeEnergy(ctx context.Context, id int64, amount int) (*Hero, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	hero, err := service.repo.Recharge(ctx, id, amount)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "hero_recharged",
		slog.Int64("hero_id", hero.ID),
		slog.Int("energy", hero.Energy),
	)
	return hero, nil
}

// UseAbility spends the ability's cost if the hero keeps some energy afterwards. Otherwise nothing
// is saved and the exhausted message is returned.
func (service *Service) UseAbility(ctx context.Context, id int64, name string) (string, error) {
	if err := validateAbility(name); err != nil {
		return "", err
	}
	ability := Abilities[name]

	hero, performed, err := service.repo.SpendEnergy(ctx, id, ability.Cost)
	if err != nil {
		return "", err
	}

	service.logger.InfoContext(ctx, "hero_ability_used",
		slog.Int64("hero_id", hero.ID),
		slog.String("ability", ability.Name),
		slog.Bool("performed", performed),
		slog.Int("energy", hero.Energy),
	)
	return ability.Outcome(hero.Name, performed), nil
}

// SwingFromBuildings is the Spider Hero ability.
func (service *Service) SwingFromBuildings(ctx context.Context, id int64) (string, error) {
	return service.UseAbility(ctx, id, AbilitySwing)
}

// RunAtSuperSpeed is the Flash Hero ability.
func (service *Service) RunAtSuperSpeed(ctx context.Context, id int64) (string, error) {
	return service.UseAbility(ctx, id, AbilityRun)
}

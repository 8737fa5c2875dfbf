// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import (
	"context"
	"sync"

	"github.com/taibuivan/querylab/internal/platform/apperr"
)

// MemoryRepository keeps heroes in process memory.
type MemoryRepository struct {
	mu     sync.Mutex
	heroes map[int64]Hero
	lastID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{heroes: map[int64]Hero{}}
}

func (repository *MemoryRepository) CreateHero(_ context.Context, hero *Hero) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.lastID++
	hero.ID = repository.lastID
	repository.heroes[hero.ID] = *hero
	return nil
}

func (repository *MemoryRepository) GetHero(_ context.Context, id int64) (*Hero, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	hero, ok := repository.heroes[id]
	if !ok {
		return nil, apperr.NotFound("Hero")
	}
	return &hero, nil
}

func (repository *MemoryRepository) Recharge(_ context.Context, id int64, amount int) (*Hero, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	hero, ok := repository.heroes[id]
	if !ok {
		return nil, apperr.NotFound("Hero")
	}

	hero.Energy = min(hero.Energy+amount, MaxEnergy)
	repository.heroes[id] = hero
	return &hero, nil
}

func (repository *MemoryRepository) SpendEnergy(_ context.Context, id int64, cost int) (*Hero, bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	hero, ok := repository.heroes[id]
	if !ok {
		return nil, false, apperr.NotFound("Hero")
	}
	if hero.Energy-cost <= 0 {
		return &hero, false, nil
	}

	hero.Energy -= cost
	repository.heroes[id] = hero
	return &hero, true, nil
}

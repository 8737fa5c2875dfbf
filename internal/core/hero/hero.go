// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import "fmt"

// Hero spends energy on abilities and recharges up to MaxEnergy.
type Hero struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	HeroTitle string `json:"hero_title"`
	Energy    int    `json:"energy"`
}

// MaxEnergy caps every recharge.
const MaxEnergy = 100

// Ability names.
const (
	AbilitySwing = "swing_from_buildings"
	AbilityRun   = "run_at_super_speed"
)

// Ability is an energy-consuming action of one hero variant.
type Ability struct {
	Name      string
	Variant   string
	Cost      int
	success   string
	exhausted string
}

// Abilities lists every ability by name.
var Abilities = map[string]Ability{
	AbilitySwing: {
		Name: AbilitySwing, Variant: "Spider Hero", Cost: 80,
		success:   "%s as Spider Hero swings from buildings using web shooters",
		exhausted: "%s as Spider Hero is out of web shooter fluid",
	},
	AbilityRun: {
		Name: AbilityRun, Variant: "Flash Hero", Cost: 65,
		success:   "%s as Flash Hero runs at lightning speed, saving the day",
		exhausted: "%s as Flash Hero needs to recharge the speed force",
	},
}

// Outcome renders the result of using the ability as name.
func (ability Ability) Outcome(name string, performed bool) string {
	if performed {
		return fmt.Sprintf(ability.success, name)
	}
	return fmt.Sprintf(ability.exhausted, name)
}

// Field names for validation
const (
	FieldName      = "name"
	FieldHeroTitle = "hero_title"
	FieldEnergy    = "energy"
	FieldAmount    = "amount"
	FieldAbility   = "ability"
)

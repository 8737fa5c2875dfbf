// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import (
	"slices"
	"strings"

	"github.com/taibuivan/querylab/internal/platform/validate"
)

// ValidateHero checks a hero before it is written.
func ValidateHero(hero *Hero) error {
	return (&validate.Validator{}).
		Required(FieldName, hero.Name).
		MaxLen(FieldName, hero.Name, 100).
		Required(FieldHeroTitle, hero.HeroTitle).
		MaxLen(FieldHeroTitle, hero.HeroTitle, 100).
		Min(FieldEnergy, hero.Energy, 0).
		Err()
}

func validateAmount(amount int) error {
	return (&validate.Validator{}).Min(FieldAmount, amount, 0).Err()
}

func validateAbility(name string) error {
	names := make([]string, 0, len(Abilities))
	for known := range Abilities {
		names = append(names, known)
	}
	slices.Sort(names)

	_, ok := Abilities[name]
	return (&validate.Validator{}).
		Custom(FieldAbility, !ok, "Must be one of: "+strings.Join(names, ", ")).
		Err()
}

package schema

// HeroTable represents the 'hero.hero' table
type HeroTable struct {
	Table     string
	ID        string
	Name      string
	HeroTitle string
	Energy    string
}

// Hero is the schema definition for hero.hero
var Hero = HeroTable{
	Table:     "hero.hero",
	ID:        "id",
	Name:      "name",
	HeroTitle: "herotitle",
	Energy:    "energy",
}

func (t HeroTable) Columns() []string {
	return []string{t.ID, t.Name, t.HeroTitle, t.Energy}
}

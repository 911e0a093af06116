package models

// SourceCategories carries the joined party abbreviation, position
// abbreviations and level names for one politician. Party is nil when the
// reference is absent or dangling.
type SourceCategories struct {
	Party     *string  `bson:"party,omitempty" json:"party,omitempty"`
	Positions []string `bson:"positions" json:"positions"`
	Levels    []string `bson:"levels" json:"levels"`
}

// PoliticianProfile is the assembler's denormalized output: the politician's
// own fields plus joined categories and flattened satellite arrays.
type PoliticianProfile struct {
	Politician       `bson:",inline"`
	SourceCategories SourceCategories   `bson:"source_categories" json:"source_categories"`
	Promises         []PromiseEntry     `bson:"promises" json:"promises"`
	Achievements     []AchievementEntry `bson:"achievements" json:"achievements"`
}

package sym

import "sort"

// Category classifies what kind of concept a mapping entry represents.
// The set of categories is fixed; a Table rejects entries that name a
// category outside this set.
type Category string

const (
	CategoryQuantifier Category = "quantifier"
	CategoryLogic      Category = "logic"
	CategoryComparison Category = "comparison"
	CategoryDefinition Category = "definition"
	CategoryFunction   Category = "function"
	CategorySet        Category = "set"
	CategoryContractor Category = "contractor"
	CategoryIntent     Category = "intent"
	CategoryType       Category = "type"
	CategoryTruth      Category = "truth"
	CategorySpecial    Category = "special"
	CategoryMath       Category = "math"
	CategoryBlock      Category = "block"
	CategoryTier       Category = "tier"
)

var knownCategories = map[Category]bool{
	CategoryQuantifier: true,
	CategoryLogic:      true,
	CategoryComparison: true,
	CategoryDefinition: true,
	CategoryFunction:   true,
	CategorySet:        true,
	CategoryContractor: true,
	CategoryIntent:     true,
	CategoryType:       true,
	CategoryTruth:      true,
	CategorySpecial:    true,
	CategoryMath:       true,
	CategoryBlock:      true,
	CategoryTier:       true,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	return knownCategories[c]
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// AllCategories returns every known category, sorted by name.
func AllCategories() []Category {
	cats := make([]Category, 0, len(knownCategories))
	for c := range knownCategories {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

package news

import "golang.org/x/text/cases"

// DefaultCategory is the provider category used for unmapped preferences and
// for the unfiltered feed.
const DefaultCategory = "general"

// categoryTable maps folded preference strings to provider categories. Built
// once; never mutated after init.
var categoryTable = map[string]string{
	"technology":    "technology",
	"sports":        "sports",
	"business":      "business",
	"entertainment": "entertainment",
	"health":        "health",
	"science":       "science",
	"movies":        "entertainment",
	"comics":        "entertainment",
	"games":         "entertainment",
}

var fold = cases.Fold()

// ResolveCategory maps a user preference to a provider category,
// case-insensitively. Unknown preferences resolve to the default category
// rather than being dropped.
func ResolveCategory(preference string) string {
	if category, ok := categoryTable[fold.String(preference)]; ok {
		return category
	}
	return DefaultCategory
}

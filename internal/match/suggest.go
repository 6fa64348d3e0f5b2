package match

import (
	"cmp"
	"slices"
)

// DefaultMinScore is the similarity a known name needs to be worth suggesting.
const DefaultMinScore = 0.5

// Suggestion is a known name scored against a wanted one.
type Suggestion struct {
	Name  string
	Score float64
}

// Suggest ranks known names by similarity to wanted, best first, ties broken by name.
// Names scoring below minScore are dropped; at most limit suggestions are returned when
// limit is positive. The wanted name itself is never suggested.
func Suggest(wanted string, known []string, minScore float64, limit int) []Suggestion {
	var out []Suggestion

	for _, name := range known {
		if name == wanted {
			continue
		}

		score := IdentSimilarity(wanted, name)
		if score < minScore {
			continue
		}

		out = append(out, Suggestion{Name: name, Score: score})
	}

	slices.SortFunc(out, func(a, b Suggestion) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

// Names returns the names of suggestions in order.
func Names(suggestions []Suggestion) []string {
	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = s.Name
	}

	return names
}

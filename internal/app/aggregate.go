package app

// MostUsedLanguage returns the language set on the largest number of repositories.
//
// Repositories without a language are skipped. On equal counts the language seen first
// in repos wins, so the result follows the order github returned the list in.
// Returns false if no repository has a language.
func MostUsedLanguage(repos []Repository) (string, bool) {
	counts := make(map[string]int)
	var order []string
	for _, r := range repos {
		if r.Language == "" {
			continue
		}
		if _, ok := counts[r.Language]; !ok {
			order = append(order, r.Language)
		}
		counts[r.Language]++
	}

	var best string
	for _, lang := range order {
		if best == "" || counts[lang] > counts[best] {
			best = lang
		}
	}

	return best, best != ""
}

// TotalStars sums stars of all repositories.
func TotalStars(repos []Repository) int {
	var total int
	for _, r := range repos {
		total += r.Stars
	}

	return total
}

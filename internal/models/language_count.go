package models

import "sort"

// LanguageCount is how many repositories use a primary language
type LanguageCount struct {
	Language string
	Count    int
}

// CountLanguages tallies primary languages in first-seen order and sorts
// them by count, descending. Ties keep first-seen order.
func CountLanguages(repos []*Repository) []LanguageCount {
	index := make(map[string]int)
	var counts []LanguageCount
	for _, repo := range repos {
		if repo.Language == "" {
			continue
		}
		if i, ok := index[repo.Language]; ok {
			counts[i].Count++
			continue
		}
		index[repo.Language] = len(counts)
		counts = append(counts, LanguageCount{Language: repo.Language, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

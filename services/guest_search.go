package services

import (
	"sort"
	"strings"

	"github.com/Samoo1234/HotelCosta-sub001/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// normalizeName remove acentos e caixa para busca tolerante
// (José ≈ Jose, Conceição ≈ Conceicao).
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(name)))
}

// SearchGuests busca hóspedes por nome com tolerância a acentos e erros de
// digitação. Primeiro tenta substring no nome normalizado; se sobrar espaço,
// completa com os mais próximos por bag-of-words, ordenados por distância de
// edição.
func SearchGuests(guests []models.Guest, query string, limit int) []models.Guest {
	if limit <= 0 {
		limit = 10
	}
	normalizedQuery := normalizeName(query)
	if normalizedQuery == "" {
		return []models.Guest{}
	}

	byName := make(map[string][]models.Guest, len(guests))
	names := make([]string, 0, len(guests))
	for _, g := range guests {
		n := normalizeName(g.Name)
		if _, seen := byName[n]; !seen {
			names = append(names, n)
		}
		byName[n] = append(byName[n], g)
	}

	results := make([]models.Guest, 0, limit)
	picked := make(map[uint]bool)

	appendMatches := func(name string) {
		for _, g := range byName[name] {
			if len(results) >= limit || picked[g.ID] {
				continue
			}
			picked[g.ID] = true
			results = append(results, g)
		}
	}

	// 1. Substring direta no nome normalizado
	for _, n := range names {
		if strings.Contains(n, normalizedQuery) {
			appendMatches(n)
		}
		if len(results) >= limit {
			return results
		}
	}

	// 2. Aproximação fuzzy para o restante
	cm := closestmatch.New(names, []int{2, 3})
	candidates := cm.ClosestN(normalizedQuery, limit*2)

	sort.SliceStable(candidates, func(i, j int) bool {
		di := levenshtein.DistanceForStrings([]rune(normalizedQuery), []rune(candidates[i]), levenshtein.DefaultOptions)
		dj := levenshtein.DistanceForStrings([]rune(normalizedQuery), []rune(candidates[j]), levenshtein.DefaultOptions)
		return di < dj
	})

	for _, n := range candidates {
		appendMatches(n)
		if len(results) >= limit {
			break
		}
	}

	return results
}

package service

import (
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
)

// RecipeEmbedding builds a deterministic vector from a recipe's name and
// ingredient list. It is intentionally crude: length, vowel and consonant
// counts give stable nearest-neighbour ordering for the similar-recipes
// query without an external embedding provider.
func RecipeEmbedding(name string, ingredients []string) pgvector.Vector {
	text := strings.ToLower(name + " " + strings.Join(ingredients, " "))
	var vowels, consonants float32
	for _, r := range text {
		if strings.ContainsRune("aeiou", r) {
			vowels++
		} else if r >= 'a' && r <= 'z' {
			consonants++
		}
	}
	return pgvector.NewVector([]float32{float32(len(text)), vowels, consonants})
}

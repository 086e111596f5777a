package services

import (
	"testing"

	"github.com/Samoo1234/HotelCosta-sub001/models"
)

func searchFixture() []models.Guest {
	return []models.Guest{
		{ID: 1, Name: "José da Silva"},
		{ID: 2, Name: "Maria Conceição"},
		{ID: 3, Name: "João Pereira"},
		{ID: 4, Name: "Ana Souza"},
	}
}

func TestSearchGuestsIgnoresAccents(t *testing.T) {
	results := SearchGuests(searchFixture(), "jose", 10)
	if len(results) == 0 || results[0].ID != 1 {
		t.Fatalf("expected José to match unaccented query, got %+v", results)
	}

	results = SearchGuests(searchFixture(), "Conceicao", 10)
	if len(results) == 0 || results[0].ID != 2 {
		t.Fatalf("expected Conceição to match unaccented query, got %+v", results)
	}
}

func TestSearchGuestsToleratesTypos(t *testing.T) {
	results := SearchGuests(searchFixture(), "joao perera", 3)
	found := false
	for _, g := range results {
		if g.ID == 3 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected fuzzy match for João Pereira, got %+v", results)
	}
}

func TestSearchGuestsRespectsLimit(t *testing.T) {
	guests := []models.Guest{
		{ID: 1, Name: "Ana Silva"},
		{ID: 2, Name: "Ana Santos"},
		{ID: 3, Name: "Ana Souza"},
	}
	results := SearchGuests(guests, "ana", 2)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestSearchGuestsEmptyQuery(t *testing.T) {
	if results := SearchGuests(searchFixture(), "   ", 10); len(results) != 0 {
		t.Fatalf("blank query should return nothing, got %+v", results)
	}
}

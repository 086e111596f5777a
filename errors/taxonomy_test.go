package errors

import (
	"regexp"
	"strings"
	"testing"
)

func TestCategoryTableIsComplete(t *testing.T) {
	categories := []Category{
		CategoryCheckIn, CategoryCheckOut, CategoryCancel, CategoryStatusChange,
		CategoryPayment, CategoryConsumption, CategoryValidation, CategoryServer,
		CategoryNetwork, CategoryPermission, CategoryNotFound, CategoryGeneral,
	}
	if len(categories) != 12 {
		t.Fatalf("expected 12 categories, got %d", len(categories))
	}

	seen := make(map[string]Category)
	for _, category := range categories {
		entry, ok := categoryTable[category]
		if !ok {
			t.Fatalf("category %s missing from table", category)
		}
		if len(entry.ShortCode) != 2 {
			t.Fatalf("category %s short code %q must be 2 letters", category, entry.ShortCode)
		}
		if prev, dup := seen[entry.ShortCode]; dup {
			t.Fatalf("short code %q reused by %s and %s", entry.ShortCode, prev, category)
		}
		seen[entry.ShortCode] = category
		if entry.Title == "" || entry.Message == "" || len(entry.Suggestions) == 0 {
			t.Fatalf("category %s must have title, message and suggestions", category)
		}
	}
}

func TestNewCorrelationCodeShape(t *testing.T) {
	withContext := regexp.MustCompile(`^HC-SC-[A-Z]{1,4}-[0-9]{4}$`)
	code := NewCorrelationCode(CategoryStatusChange, "cancelled")
	if !withContext.MatchString(code) {
		t.Fatalf("unexpected code shape with context: %q", code)
	}

	withoutContext := regexp.MustCompile(`^HC-PG-[0-9]{4}$`)
	code = NewCorrelationCode(CategoryPayment, "")
	if !withoutContext.MatchString(code) {
		t.Fatalf("unexpected code shape without context: %q", code)
	}

	// Contexto acentuado é reduzido a ASCII
	code = NewCorrelationCode(CategoryValidation, "hóspede")
	if !strings.HasPrefix(code, "HC-VL-HOSP-") {
		t.Fatalf("accented context should decay to ASCII letters, got %q", code)
	}
}

func TestHandleDefaultsAndOverrides(t *testing.T) {
	h := Handle(CategoryPayment, HandleOptions{})
	if h.Title != "Falha no Pagamento" {
		t.Fatalf("expected canned title, got %q", h.Title)
	}
	if h.Severity != SeverityError || len(h.Suggestions) == 0 {
		t.Fatalf("expected canned severity and suggestions, got %+v", h)
	}

	h = Handle(CategoryPayment, HandleOptions{
		Message:     "Valor acima do saldo da reserva.",
		Suggestions: []string{"Confira o total da reserva"},
	})
	if h.Message != "Valor acima do saldo da reserva." {
		t.Fatalf("caller message should win, got %q", h.Message)
	}
	if len(h.Suggestions) != 1 {
		t.Fatalf("caller suggestions should replace canned ones, got %v", h.Suggestions)
	}

	// Categoria desconhecida cai na geral
	h = Handle(Category("whatever"), HandleOptions{})
	if h.Category != CategoryGeneral {
		t.Fatalf("unknown category should fall back to general, got %s", h.Category)
	}
}

func TestHandleValidationResultWins(t *testing.T) {
	v := &ValidationResult{
		Valid:       false,
		Message:     "Não é possível voltar de Check-in Realizado para Confirmada.",
		Severity:    SeverityError,
		Suggestions: []string{"O status da reserva não retrocede"},
	}

	h := Handle(CategoryStatusChange, HandleOptions{Validation: v, Context: "confirmed"})
	if h.Message != v.Message {
		t.Fatalf("validation message should win over canned one, got %q", h.Message)
	}
	if len(h.Suggestions) != 1 || h.Suggestions[0] != v.Suggestions[0] {
		t.Fatalf("validation suggestions should win, got %v", h.Suggestions)
	}
	if h.Title != "Mudança de Status Inválida" {
		t.Fatalf("title stays canned, got %q", h.Title)
	}
}

func TestFormatInline(t *testing.T) {
	h := HandledError{Message: "Estoque insuficiente.", Severity: SeverityWarning}
	inline := h.FormatInline()
	if !strings.HasSuffix(inline, "Estoque insuficiente.") {
		t.Fatalf("inline format should end with the message, got %q", inline)
	}
	if !strings.HasPrefix(inline, SeverityWarning.Icon()) {
		t.Fatalf("inline format should start with the severity icon, got %q", inline)
	}
}

package errors

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
)

// Severity define os níveis de severidade de um resultado tratado
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Icon retorna o ícone de exibição da severidade
func (s Severity) Icon() string {
	switch s {
	case SeverityWarning:
		return "⚠️"
	case SeverityInfo:
		return "ℹ️"
	case SeveritySuccess:
		return "✅"
	default:
		return "❌"
	}
}

// Category é a taxonomia fechada de erros tratados
type Category string

const (
	CategoryCheckIn      Category = "check_in"
	CategoryCheckOut     Category = "check_out"
	CategoryCancel       Category = "cancel"
	CategoryStatusChange Category = "status_change"
	CategoryPayment      Category = "payment"
	CategoryConsumption  Category = "consumption"
	CategoryValidation   Category = "validation"
	CategoryServer       Category = "server"
	CategoryNetwork      Category = "network"
	CategoryPermission   Category = "permission"
	CategoryNotFound     Category = "not_found"
	CategoryGeneral      Category = "general"
)

// categoryEntry é o registro imutável de cada categoria: título fixo,
// mensagem padrão, severidade padrão e sugestões enlatadas.
type categoryEntry struct {
	ShortCode   string // 2 letras, usado no código de correlação
	Title       string
	Message     string
	Severity    Severity
	Suggestions []string
}

var categoryTable = map[Category]categoryEntry{
	CategoryCheckIn: {
		ShortCode: "CI",
		Title:     "Falha no Check-in",
		Message:   "Não foi possível realizar o check-in da reserva.",
		Severity:  SeverityError,
		Suggestions: []string{
			"Verifique se a reserva está confirmada",
			"Confira se o quarto está liberado pela governança",
		},
	},
	CategoryCheckOut: {
		ShortCode: "CO",
		Title:     "Falha no Check-out",
		Message:   "Não foi possível realizar o check-out da reserva.",
		Severity:  SeverityError,
		Suggestions: []string{
			"Verifique se o check-in foi realizado",
			"Confira se há consumos pendentes de lançamento",
		},
	},
	CategoryCancel: {
		ShortCode: "CA",
		Title:     "Falha no Cancelamento",
		Message:   "Não foi possível cancelar a reserva.",
		Severity:  SeverityError,
		Suggestions: []string{
			"Verifique se a reserva já foi encerrada",
			"Consulte a política de cancelamento do hotel",
		},
	},
	CategoryStatusChange: {
		ShortCode: "SC",
		Title:     "Mudança de Status Inválida",
		Message:   "A mudança de status solicitada não é permitida.",
		Severity:  SeverityError,
		Suggestions: []string{
			"Verifique o status atual da reserva",
			"Siga a ordem: confirmada, check-in, check-out",
		},
	},
	CategoryPayment: {
		ShortCode: "PG",
		Title:     "Falha no Pagamento",
		Message:   "Não foi possível registrar o pagamento.",
		Severity:  SeverityError,
		Suggestions: []string{
			"Confira o valor e a forma de pagamento",
			"Tente novamente em alguns instantes",
		},
	},
	CategoryConsumption: {
		ShortCode: "CS",
		Title:     "Falha no Lançamento de Consumo",
		Message:   "Não foi possível lançar o consumo na reserva.",
		Severity:  SeverityError,
		Suggestions: []string{
			"Verifique o estoque do produto",
			"Confira se a reserva está com check-in ativo",
		},
	},
	CategoryValidation: {
		ShortCode: "VL",
		Title:     "Dados Inválidos",
		Message:   "Os dados informados não passaram na validação.",
		Severity:  SeverityError,
		Suggestions: []string{
			"Revise os campos destacados",
			"Confira o formato das datas (AAAA-MM-DD)",
		},
	},
	CategoryServer: {
		ShortCode: "SV",
		Title:     "Erro no Servidor",
		Message:   "Ocorreu um erro interno. Tente novamente.",
		Severity:  SeverityError,
		Suggestions: []string{
			"Tente novamente em alguns instantes",
			"Se persistir, informe o código de suporte ao administrador",
		},
	},
	CategoryNetwork: {
		ShortCode: "RD",
		Title:     "Falha de Conexão",
		Message:   "Não foi possível comunicar com o banco de dados.",
		Severity:  SeverityError,
		Suggestions: []string{
			"Verifique sua conexão com a internet",
			"Tente novamente em alguns instantes",
		},
	},
	CategoryPermission: {
		ShortCode: "PM",
		Title:     "Acesso Negado",
		Message:   "Você não tem permissão para executar esta operação.",
		Severity:  SeverityError,
		Suggestions: []string{
			"Solicite acesso ao administrador",
			"Verifique se sua sessão não expirou",
		},
	},
	CategoryNotFound: {
		ShortCode: "NF",
		Title:     "Registro Não Encontrado",
		Message:   "O registro solicitado não foi encontrado.",
		Severity:  SeverityError,
		Suggestions: []string{
			"Atualize a listagem e tente novamente",
			"O registro pode ter sido removido por outro usuário",
		},
	},
	CategoryGeneral: {
		ShortCode: "GE",
		Title:     "Erro Inesperado",
		Message:   "Ocorreu um erro inesperado.",
		Severity:  SeverityError,
		Suggestions: []string{
			"Tente repetir a operação",
			"Se persistir, informe o código de suporte ao administrador",
		},
	},
}

// ValidationResult é o resultado estruturado (não excepcional) de uma
// validação de transição de status. Valid=true significa "sem erro".
type ValidationResult struct {
	Valid       bool     `json:"valid"`
	Message     string   `json:"message,omitempty"`
	Severity    Severity `json:"severity,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// HandledError é o resultado estruturado de um erro tratado, renderizável
// como ícone + título + mensagem + lista de sugestões.
type HandledError struct {
	Code        string   `json:"code"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Message     string   `json:"message"`
	Severity    Severity `json:"severity"`
	Suggestions []string `json:"suggestions"`
}

// FormatInline produz a variante compacta de uma linha (ícone + mensagem).
func (h HandledError) FormatInline() string {
	return h.Severity.Icon() + " " + h.Message
}

// HandleOptions permite sobrescrever os padrões da categoria.
// Validation, quando presente e inválido, tem preferência sobre a categoria
// para mensagem, severidade e sugestões.
type HandleOptions struct {
	Message     string
	Suggestions []string
	Context     string // fragmento livre usado só no código de correlação
	Validation  *ValidationResult
}

// Handle monta o HandledError para a categoria aplicando as opções do chamador.
func Handle(category Category, opts HandleOptions) HandledError {
	entry, ok := categoryTable[category]
	if !ok {
		entry = categoryTable[CategoryGeneral]
		category = CategoryGeneral
	}

	h := HandledError{
		Code:        NewCorrelationCode(category, opts.Context),
		Category:    category,
		Title:       entry.Title,
		Message:     entry.Message,
		Severity:    entry.Severity,
		Suggestions: entry.Suggestions,
	}

	if opts.Message != "" {
		h.Message = opts.Message
	}
	if len(opts.Suggestions) > 0 {
		h.Suggestions = opts.Suggestions
	}

	if v := opts.Validation; v != nil && !v.Valid {
		if v.Message != "" {
			h.Message = v.Message
		}
		if v.Severity != "" {
			h.Severity = v.Severity
		}
		if len(v.Suggestions) > 0 {
			h.Suggestions = v.Suggestions
		}
	}

	return h
}

// correlationPrefix é o prefixo fixo dos códigos de suporte.
const correlationPrefix = "HC"

// NewCorrelationCode gera o código curto de correlação: prefixo fixo,
// código de 2 letras da categoria, fragmento opcional de 4 letras do
// contexto e sufixo aleatório de 4 dígitos. Uso exclusivo de suporte e
// rastreabilidade — nunca para despacho por igualdade.
func NewCorrelationCode(category Category, context string) string {
	entry, ok := categoryTable[category]
	if !ok {
		entry = categoryTable[CategoryGeneral]
	}

	parts := []string{correlationPrefix, entry.ShortCode}
	if frag := contextFragment(context); frag != "" {
		parts = append(parts, frag)
	}
	parts = append(parts, fmt.Sprintf("%04d", rand.Intn(10000)))

	return strings.Join(parts, "-")
}

// contextFragment reduz o contexto livre a no máximo 4 letras ASCII maiúsculas.
func contextFragment(context string) string {
	ascii := unidecode.Unidecode(context)
	var b strings.Builder
	for _, r := range strings.ToUpper(ascii) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
		if b.Len() == 4 {
			break
		}
	}
	return b.String()
}

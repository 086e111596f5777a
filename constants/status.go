package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Formas de pagamento aceitas
var PaymentMethods = []string{"dinheiro", "cartao", "pix"}

// Paginação
const (
	DefaultPage  = 0
	DefaultLimit = 10
)

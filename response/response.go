package response

import (
	"net/http"

	"github.com/Samoo1234/HotelCosta-sub001/errors"

	"github.com/gin-gonic/gin"
)

// Response define a estrutura padrão de resposta
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination define a estrutura de paginação
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success retorna resposta de sucesso
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Sucesso",
		Data: data,
	})
}

// SuccessWithPagination retorna resposta de sucesso paginada
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Sucesso",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// Error retorna resposta de erro
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: code,
		Mess: message,
	})
}

// HandledError retorna o erro tratado estruturado (ícone por severidade,
// título, mensagem e sugestões) no envelope padrão
func HandledError(c *gin.Context, status int, h errors.HandledError) {
	c.JSON(status, Response{
		Code: 0,
		Mess: h.Message,
		Data: h,
	})
}

// ServerError retorna resposta de erro interno
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Erro no servidor",
	})
}

// Unauthorized retorna resposta de não autenticado
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Não autenticado",
	})
}

// Forbidden retorna resposta de acesso negado
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Acesso negado",
	})
}

// NotFound retorna resposta de não encontrado
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Não encontrado",
	})
}

// ValidationError retorna resposta de erro de validação
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// BadRequest retorna resposta de requisição inválida
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict retorna resposta de conflito (409)
func Conflict(c *gin.Context) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: "Conflito de dados",
	})
}

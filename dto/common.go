package dto

// PaginationQuery são os parâmetros de paginação das listagens
type PaginationQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

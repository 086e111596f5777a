package dto

// LoginInput é o corpo da requisição de login
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterInput é o corpo da requisição de cadastro de usuário
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     int    `json:"role"`
}

// LoginResponse é a resposta do login
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        int    `json:"role"`
}

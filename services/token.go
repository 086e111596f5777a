package services

import (
	"os"
	"time"

	"github.com/Samoo1234/HotelCosta-sub001/errors"

	"github.com/dgrijalva/jwt-go"
)

// UserInfo é o payload de identidade embutido no token
type UserInfo struct {
	UserID uint `json:"userid"`
	Role   int  `json:"role"`
}

// Claims são as claims do token de acesso
type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func secretKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken gera um token de acesso assinado
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// GetUserIDFromToken valida o token e extrai userID e role
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Método de assinatura inesperado", nil)
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token inválido", err)
	}

	if claims.UserInfo.UserID == 0 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token sem informação de usuário", nil)
	}

	return claims.UserInfo.UserID, claims.UserInfo.Role, nil
}

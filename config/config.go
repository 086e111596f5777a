package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: erro ao carregar o arquivo .env: %v", err)
	}
	return nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

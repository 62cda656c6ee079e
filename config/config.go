package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config trả về giá trị biến môi trường theo key (ưu tiên file .env)
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Không tìm thấy file .env, dùng biến môi trường hệ thống")
	}
	return os.Getenv(key)
}

// ConfigOrDefault trả về giá trị mặc định nếu biến môi trường rỗng
func ConfigOrDefault(key, fallback string) string {
	value := Config(key)
	if value == "" {
		return fallback
	}
	return value
}

package middleware

import (
	"errors"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"pizza_manager/model"
	"pizza_manager/utils"
)

// Protected chỉ xác thực token — việc cấp token thuộc dịch vụ auth riêng
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		user := model.TokenClaim{}
		if claims, ok := jwtToken.Claims.(jwt.MapClaims); ok {
			user.AccountId, _ = claims["accountId"].(string)
			user.Username, _ = claims["username"].(string)
			user.Role, _ = claims["role"].(string)
		}
		c.Locals("user", user)
		return c.Next()
	}
}

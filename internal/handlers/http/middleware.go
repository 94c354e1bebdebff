package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

var validate = validator.New()

// JWTMiddleware verifies the bearer token and copies the identity claims
// into the request locals
func JWTMiddleware(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ContextKey:   "user",
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			user := c.Locals("user").(*jwt.Token)
			claims := user.Claims.(jwt.MapClaims)
			c.Locals("username", claims["username"])
			c.Locals("user_role", claims["role"])
			return c.Next()
		},
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return respondError(c, "Unauthorized", fiber.StatusUnauthorized)
}

// AdminOnly rejects requests whose token does not carry the admin role
func AdminOnly(c *fiber.Ctx) error {
	userRole, ok := c.Locals("user_role").(string)
	if !ok || userRole != "admin" {
		return respondError(c, "Admin access required", fiber.StatusForbidden)
	}
	return c.Next()
}

// ValidateBody parses the request body into dest and checks its validate
// tags; the returned error message is safe to echo back to the client
func ValidateBody(c *fiber.Ctx, dest interface{}) error {
	if err := c.BodyParser(dest); err != nil {
		return errors.New("Invalid request body")
	}

	if err := validate.Struct(dest); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		firstError := validationErrors[0]

		switch firstError.Tag() {
		case "required":
			return errors.New(firstError.Field() + " is required")
		case "email":
			return errors.New("Invalid email format")
		case "min":
			return errors.New(firstError.Field() + " is too short")
		case "max":
			return errors.New(firstError.Field() + " is too long")
		default:
			return errors.New("Validation failed for " + firstError.Field())
		}
	}

	return nil
}

func usernameFromContext(c *fiber.Ctx) string {
	if username, ok := c.Locals("username").(string); ok {
		return username
	}
	return ""
}

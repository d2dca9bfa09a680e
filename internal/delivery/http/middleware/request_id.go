package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestIDHeader - заголовок, в котором возвращается идентификатор запроса
const RequestIDHeader = "X-Request-ID"

// RequestID - middleware, назначающий каждому запросу идентификатор.
// Идентификатор из входящего заголовка сохраняется, чтобы сквозная
// трассировка от скрапера работала.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(requestIDKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// RequestIDFromCtx возвращает идентификатор текущего запроса
func RequestIDFromCtx(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}

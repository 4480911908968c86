// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"bookstore/pkg/logger"
)

// HeaderRequestID - заголовок, через который клиент может передать свой request id.
const HeaderRequestID = "X-Request-ID"

const localsRequestContext = "requestContext"

// NewRequestIDMiddleware кладет в Locals контекст запроса с request id
// и возвращает тот же id в заголовке ответа.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderRequestID))
		if requestID, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(HeaderRequestID, requestID)
		}

		ctx.Locals(localsRequestContext, requestCtx)

		return ctx.Next()
	}
}

// RequestContext возвращает контекст запроса с request id.
func RequestContext(ctx fiber.Ctx) context.Context {
	requestCtx, ok := ctx.Locals(localsRequestContext).(context.Context)
	if !ok {
		return ctx.Context()
	}
	return requestCtx
}

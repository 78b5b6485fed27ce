package middleware

import (
	"cardbox/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware gates every interaction behind the shared password.
// The Telegram sender ID is the owner identity for everything the user
// touches downstream.
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			// Unauthorized users may only run /start and answer the
			// password prompt (plain text).
			if !authorized && c.Text() != "/start" && c.Callback() == nil && len(c.Text()) > 0 && c.Text()[0] == '/' {
				return c.Send("Please send the access password first.")
			}

			return next(c)
		}
	}
}

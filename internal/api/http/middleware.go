package http

import (
	"context"
	"errors"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/observability"
	"github.com/eltonkaiton/mombasa-admin/internal/session"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

// ExpiredLoginPath is where an operator whose backend token was refused is sent.
const ExpiredLoginPath = "/adminlogin?expired=1"

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, sessions *session.Manager, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	// The request logger wraps error handling so it sees the final status.
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics, sessions))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := toDomainError(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				err = nil
				if wantsJSON(c) {
					writeJSONError(c, domainErr)
					return
				}
				if domainErr.Code == apperrors.CodeUnauthorized {
					if sessions != nil {
						if derr := sessions.Destroy(c); derr != nil {
							logger.Warn("failed to destroy session", zap.Error(derr))
						}
					}
					_ = c.Redirect(ExpiredLoginPath, fiber.StatusSeeOther)
					return
				}
				writeHTMLError(c, logger, domainErr)
			}
		}()
		return c.Next()
	}
}

// toDomainError also understands the router's own errors, such as an
// unmatched route.
func toDomainError(err error) *apperrors.DomainError {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := "HTTP_ERROR"
		if fiberErr.Code == fiber.StatusNotFound {
			code = apperrors.CodeNotFound
		}
		return apperrors.NewDomainError(code, fiberErr.Message, fiberErr.Code, nil)
	}
	return apperrors.ToDomainError(err)
}

func wantsJSON(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Path(), "/health") {
		return true
	}
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

func writeJSONError(c *fiber.Ctx, domainErr *apperrors.DomainError) {
	response := fiber.Map{"error": fiber.Map{
		"code":    domainErr.Code,
		"message": domainErr.Message,
	}}
	if len(domainErr.Details) > 0 {
		response["error"].(fiber.Map)["details"] = domainErr.Details
	}
	c.Status(domainErr.HTTPStatus)
	_ = c.JSON(response)
}

func writeHTMLError(c *fiber.Ctx, logger *zap.Logger, domainErr *apperrors.DomainError) {
	message := domainErr.Message
	switch {
	case domainErr.HTTPStatus >= 500:
		message = "Something went wrong. Please try again."
	case domainErr.Code == apperrors.CodeForbidden:
		message = "You do not have access to this page."
	case domainErr.Code == apperrors.CodeNotFound:
		message = "The page you are looking for does not exist."
	}
	c.Status(domainErr.HTTPStatus)
	data := fiber.Map{"Title": "Error", "Status": domainErr.HTTPStatus, "Message": message}
	if err := c.Render("errors/error", data, "layouts/auth"); err != nil {
		logger.Error("failed to render error page", zap.Error(err))
		_ = c.SendString(message)
	}
}

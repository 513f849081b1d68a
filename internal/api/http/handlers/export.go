package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eltonkaiton/mombasa-admin/internal/export"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

// sendSheets streams sheets as a download named base-<date>.<format>.
func sendSheets(c *fiber.Ctx, base string, format export.Format, sheets ...export.Sheet) error {
	var buf bytes.Buffer
	if err := export.Write(&buf, format, sheets...); err != nil {
		return apperrors.NewInternalError(err)
	}
	filename := fmt.Sprintf("%s-%s.%s", base, time.Now().Format("2006-01-02"), format)
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, format.ContentType())
	return c.Send(buf.Bytes())
}

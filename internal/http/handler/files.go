package handler

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"catalogapi/internal/service"
	"catalogapi/internal/storage"
)

// DescribeFile echoes the captured file path (the wildcard keeps slashes)
// and annotates it with object info when something is stored there.
// @Summary Describe file path
// @Success 200 {object} service.FileInfo
// @Router /files/{path} [get]
func DescribeFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Params("+")
		info, err := svc.Describe(c.UserContext(), path)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(info)
	}
}

// UploadFile stores the raw request body under the captured path.
func UploadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Params("+")
		body := c.Body()
		if len(body) == 0 {
			return writeError(c, fiber.StatusBadRequest, "EMPTY_BODY", "request body is required")
		}

		info, err := svc.Upload(c.UserContext(), path, bytes.NewReader(body), int64(len(body)), c.Get(fiber.HeaderContentType))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(info)
	}
}

// DeleteFile removes the object stored under the captured path.
func DeleteFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Params("+")
		if err := svc.Delete(c.UserContext(), path); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

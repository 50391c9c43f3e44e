package handler

import (
	"github.com/gofiber/fiber/v2"

	"catalogapi/internal/model"
)

// GetModel resolves an enum path parameter: only the predefined model
// names are accepted, anything else is rejected with the allowed set.
func GetModel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, ok := model.ParseModelName(c.Params("name"))
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_MODEL_NAME",
				"model name must be one of: "+model.ModelNamesList())
		}
		return c.JSON(fiber.Map{
			"model_name": name,
			"message":    name.Message(),
		})
	}
}

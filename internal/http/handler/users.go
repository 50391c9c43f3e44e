package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// tributeDescription fills in when the caller did not ask for the short form.
const tributeDescription = "This is not the greatest description, this is a tribute"

// CurrentUser answers for the fixed /users/me path. It must be
// registered before GetUser, or the :id route swallows "me".
func CurrentUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": "the current user"})
	}
}

// GetUser echoes the user id path segment without any parsing.
func GetUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Params("id")})
	}
}

// ListUsers returns the fixed demo user list.
func ListUsers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON([]string{"Elmo", "Bert"})
	}
}

// UserItem combines two path parameters (uid int, id string) with the
// optional q and short query parameters.
func UserItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := strconv.Atoi(c.Params("uid"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_USER_ID", "user id must be an integer")
		}

		res := fiber.Map{
			"user_id": uid,
			"item_id": c.Params("id"),
		}
		if q := c.Query("q"); q != "" {
			res["q"] = q
		}
		if !boolQuery(c, "short") {
			res["description"] = tributeDescription
		}
		return c.JSON(res)
	}
}

package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"catalogapi/internal/model"
	"catalogapi/internal/service"
	"catalogapi/internal/validation"
)

// Root greets the caller.
// @Summary Greeting
// @Success 200 {object} map[string]string
// @Router / [get]
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello World"})
	}
}

// ListItems pages through the catalog with skip & limit query parameters.
// @Summary List items
// @Param skip query int false "rows to skip" default(0)
// @Param limit query int false "page size" default(10)
// @Success 200 {object} service.ItemListResult
// @Failure 400 {object} errorPayload
// @Router /items [get]
func ListItems(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip, err := strconv.Atoi(c.Query("skip", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SKIP", "invalid skip")
		}
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		res, err := svc.List(c.UserContext(), skip, limit)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// boolQuery reports whether a boolean query flag is set. Accepted
// spellings: 1, true, on, yes (case-insensitive).
func boolQuery(c *fiber.Ctx, key string) bool {
	switch strings.ToLower(c.Query(key)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// GetItem echoes an integer item id together with the optional q and
// short query parameters.
func GetItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "item id must be a non-negative integer")
		}

		res := fiber.Map{"item_id": id}
		if q := c.Query("q"); q != "" {
			res["q"] = q
		}
		if !boolQuery(c, "short") {
			res["description"] = "This is an amazing item that has a long description"
		}
		return c.JSON(res)
	}
}

// ItemDetails demonstrates a required query parameter: needy must be present.
func ItemDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		needy := c.Query("needy")
		if needy == "" {
			return writeError(c, fiber.StatusBadRequest, "MISSING_NEEDY", "query parameter needy is required")
		}
		return c.JSON(fiber.Map{
			"item_id": c.Params("id"),
			"needy":   needy,
		})
	}
}

// CreateItem validates the request body and stores a new item.
// @Summary Create item
// @Accept json
// @Param item body model.ItemInput true "item to store"
// @Success 201 {object} model.Item
// @Failure 400 {object} errorPayload
// @Router /items [post]
func CreateItem(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ItemInput
		if err := validation.BindBody(c, &in); err != nil {
			return writeBindError(c, err)
		}

		item, err := svc.Create(c.UserContext(), &in)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// ComputeItem validates an item body without storing it and derives
// price_with_tax when tax was provided.
func ComputeItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ItemInput
		if err := validation.BindBody(c, &in); err != nil {
			return writeBindError(c, err)
		}

		res := fiber.Map{
			"name":  in.Name,
			"price": in.Price,
		}
		if in.Description != "" {
			res["description"] = in.Description
		}
		if len(in.Tags) > 0 {
			res["tags"] = in.Tags
		}
		if total, ok := in.PriceWithTax(); ok {
			res["tax"] = *in.Tax
			res["price_with_tax"] = total
		}
		return c.JSON(res)
	}
}

// UpdateItem combines a path parameter, a request body, and an optional
// query parameter in one endpoint.
func UpdateItem(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in model.ItemInput
		if err := validation.BindBody(c, &in); err != nil {
			return writeBindError(c, err)
		}

		stored, err := svc.Update(c.UserContext(), id, &in)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "item not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		res := fiber.Map{
			"item_id":    stored.ID,
			"name":       stored.Name,
			"price":      stored.Price,
			"updated_at": stored.UpdatedAt,
		}
		if stored.Description != "" {
			res["description"] = stored.Description
		}
		if stored.Tax != nil {
			res["tax"] = *stored.Tax
		}
		if len(stored.Tags) > 0 {
			res["tags"] = stored.Tags
		}
		if q := c.Query("q"); q != "" {
			res["q"] = q
		}
		return c.JSON(res)
	}
}

// UpdateItemDetails accepts two body models plus a singular body value on
// the same level: {"item": {...}, "user": {...}, "importance": n}.
// The path id is range-checked (0..1000) instead of resolved against storage.
func UpdateItemDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "item id must be an integer")
		}
		if verr := validation.Var("id", id, "gte=0,lte=1000"); verr != nil {
			return writeBindError(c, verr)
		}

		var in model.ItemDetailsInput
		if err := validation.BindBody(c, &in); err != nil {
			return writeBindError(c, err)
		}

		return c.JSON(fiber.Map{
			"item_id":    id,
			"item":       in.Item,
			"user":       in.User,
			"importance": in.Importance,
		})
	}
}

// CreateEmbeddedItem expects the item nested under an "item" key rather
// than as the top-level body.
func CreateEmbeddedItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.EmbeddedItemInput
		if err := validation.BindBody(c, &in); err != nil {
			return writeBindError(c, err)
		}
		return c.JSON(fiber.Map{"item": in.Item})
	}
}

// validatedItemsResult is the fixed demo payload for the validated query route.
func validatedItemsResult() fiber.Map {
	return fiber.Map{
		"items": []fiber.Map{{"item_id": "Foo"}, {"item_id": "Bar"}},
	}
}

// ValidatedItems constrains the optional q query parameter (3..50 chars).
// The parameter may repeat, and "item-query" is accepted as an alias.
func ValidatedItems() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var values []string
		for _, key := range []string{"q", "item-query"} {
			for _, v := range c.Context().QueryArgs().PeekMulti(key) {
				values = append(values, string(v))
			}
		}

		for _, v := range values {
			if verr := validation.Var("q", v, "min=3,max=50"); verr != nil {
				return writeBindError(c, verr)
			}
		}

		res := validatedItemsResult()
		switch len(values) {
		case 0:
		case 1:
			res["q"] = values[0]
		default:
			res["q"] = values
		}
		return c.JSON(res)
	}
}

// SearchItems binds the whole query string into a FilterParams model.
// @Summary Search items
// @Param limit query int false "page size" default(100)
// @Param offset query int false "rows to skip" default(0)
// @Param order_by query string false "created_at or updated_at"
// @Param tags query []string false "required tags" collectionFormat(multi)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errorPayload
// @Router /items/search [get]
func SearchItems(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := model.DefaultFilterParams()
		if err := validation.BindQuery(c, &f); err != nil {
			return writeBindError(c, err)
		}

		res, err := svc.Search(c.UserContext(), f)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{
			"filter": f,
			"items":  res.Items,
			"total":  res.Total,
		})
	}
}

// SearchItemsStrict behaves like SearchItems but rejects query keys the
// model does not declare.
func SearchItemsStrict(svc service.CatalogService) fiber.Handler {
	allowed := make(map[string]struct{})
	for _, k := range model.FilterParamKeys() {
		allowed[k] = struct{}{}
	}

	search := SearchItems(svc)

	return func(c *fiber.Ctx) error {
		var unexpected string
		c.Context().QueryArgs().VisitAll(func(key, _ []byte) {
			if unexpected != "" {
				return
			}
			if _, ok := allowed[string(key)]; !ok {
				unexpected = string(key)
			}
		})
		if unexpected != "" {
			return writeError(c, fiber.StatusBadRequest, "UNEXPECTED_PARAMETER", "unexpected query parameter: "+unexpected)
		}
		return search(c)
	}
}

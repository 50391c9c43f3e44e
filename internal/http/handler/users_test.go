package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUser(t *testing.T) {
	app := fiber.New()
	app.Get("/users/me", CurrentUser())

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "the current user", body["user_id"])
}

func TestGetUser(t *testing.T) {
	app := fiber.New()
	app.Get("/users/:id", GetUser())

	t.Run("echoes the raw segment", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/you", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeMap(t, resp)
		assert.Equal(t, "you", body["user_id"])
	})

	t.Run("numeric segment stays a string", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
		resp, _ := app.Test(req)

		body := decodeMap(t, resp)
		assert.Equal(t, "42", body["user_id"])
	})
}

func TestListUsers(t *testing.T) {
	app := fiber.New()
	app.Get("/users", ListUsers())

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var users []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Equal(t, []string{"Elmo", "Bert"}, users)
}

func TestUserItem(t *testing.T) {
	app := fiber.New()
	app.Get("/users/:uid/items/:id", UserItem())

	t.Run("combines both path params", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/7/items/sword", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeMap(t, resp)
		assert.Equal(t, float64(7), body["user_id"])
		assert.Equal(t, "sword", body["item_id"])
		assert.NotEmpty(t, body["description"])
	})

	t.Run("short drops the description", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/7/items/sword?q=legend&short=1", nil)
		resp, _ := app.Test(req)

		body := decodeMap(t, resp)
		assert.Equal(t, "legend", body["q"])
		assert.NotContains(t, body, "description")
	})

	t.Run("non-integer user id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/bob/items/sword", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_USER_ID", body.Error.Code)
	})
}

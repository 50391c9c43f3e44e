package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetModel(t *testing.T) {
	app := fiber.New()
	app.Get("/models/:name", GetModel())

	tests := []struct {
		name        string
		wantMessage string
	}{
		{name: "alexnet", wantMessage: "Deep Learning FTW!"},
		{name: "lenet", wantMessage: "LeCNN all the images"},
		{name: "resnet", wantMessage: "Have some residuals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/models/"+tt.name, nil)
			resp, _ := app.Test(req)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			body := decodeMap(t, resp)
			assert.Equal(t, tt.name, body["model_name"])
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}

	t.Run("unknown model name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/models/vgg16", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_MODEL_NAME", body.Error.Code)
		assert.Contains(t, body.Error.Message, "alexnet")
	})
}

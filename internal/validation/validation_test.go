package validation

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name  string  `json:"name" query:"name" validate:"required,min=3,max=10"`
	Score float64 `json:"score" query:"score" validate:"gte=0,lte=100"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

// bind runs fn inside a request handler and returns the error it produced.
func bind(t *testing.T, method, target, body string, fn func(c *fiber.Ctx) error) error {
	t.Helper()

	var got error
	app := fiber.New()
	app.Add(method, "/", func(c *fiber.Ctx) error {
		got = fn(c)
		return nil
	})

	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	_, err := app.Test(req)
	require.NoError(t, err)
	return got
}

func TestBindBody(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		var p samplePayload
		err := bind(t, http.MethodPost, "/", `{"name":"Foo","score":50}`, func(c *fiber.Ctx) error {
			return BindBody(c, &p)
		})
		assert.NoError(t, err)
		assert.Equal(t, "Foo", p.Name)
	})

	t.Run("malformed body", func(t *testing.T) {
		var p samplePayload
		err := bind(t, http.MethodPost, "/", `{not json`, func(c *fiber.Ctx) error {
			return BindBody(c, &p)
		})
		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "malformed request body", verr.Message)
		assert.Empty(t, verr.Fields)
	})

	t.Run("failures use wire names", func(t *testing.T) {
		var p samplePayload
		err := bind(t, http.MethodPost, "/", `{"name":"ab","score":101}`, func(c *fiber.Ctx) error {
			return BindBody(c, &p)
		})
		var verr *Error
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 2)

		fields := map[string]string{}
		for _, f := range verr.Fields {
			fields[f.Field] = f.Error
		}
		assert.Equal(t, "must be at least 3 characters", fields["name"])
		assert.Equal(t, "must not exceed 100", fields["score"])
	})
}

func TestBindQuery(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		var p samplePayload
		err := bind(t, http.MethodGet, "/?name=Foo&score=50", "", func(c *fiber.Ctx) error {
			return BindQuery(c, &p)
		})
		assert.NoError(t, err)
		assert.Equal(t, 50.0, p.Score)
	})

	t.Run("keeps preset defaults for absent keys", func(t *testing.T) {
		p := samplePayload{Name: "preset", Score: 42}
		err := bind(t, http.MethodGet, "/?score=7", "", func(c *fiber.Ctx) error {
			return BindQuery(c, &p)
		})
		assert.NoError(t, err)
		assert.Equal(t, "preset", p.Name)
		assert.Equal(t, 7.0, p.Score)
	})

	t.Run("unparsable value", func(t *testing.T) {
		var p samplePayload
		err := bind(t, http.MethodGet, "/?name=Foo&score=abc", "", func(c *fiber.Ctx) error {
			return BindQuery(c, &p)
		})
		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "malformed query parameters", verr.Message)
	})

	t.Run("validation failure", func(t *testing.T) {
		var p samplePayload
		err := bind(t, http.MethodGet, "/?name=toolongofaname", "", func(c *fiber.Ctx) error {
			return BindQuery(c, &p)
		})
		var verr *Error
		require.ErrorAs(t, err, &verr)
		require.NotEmpty(t, verr.Fields)
		assert.Equal(t, "name", verr.Fields[0].Field)
	})
}

func TestVar(t *testing.T) {
	t.Run("passes", func(t *testing.T) {
		assert.NoError(t, Var("q", "fixedquery", "min=3,max=50"))
	})

	t.Run("too short", func(t *testing.T) {
		err := Var("q", "ab", "min=3,max=50")
		var verr *Error
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "q", verr.Fields[0].Field)
		assert.Equal(t, "must be at least 3 characters", verr.Fields[0].Error)
	})

	t.Run("numeric bound", func(t *testing.T) {
		err := Var("id", 1001, "gte=0,lte=1000")
		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "must not exceed 1000", verr.Fields[0].Error)
	})
}

func TestStruct(t *testing.T) {
	t.Run("nil error on valid input", func(t *testing.T) {
		assert.NoError(t, Struct(&samplePayload{Name: "Foo", Score: 1}))
	})

	t.Run("raw validator errors pass through untranslated", func(t *testing.T) {
		err := Struct(&samplePayload{})
		require.Error(t, err)
		var verr *Error
		assert.False(t, errors.As(err, &verr))
	})
}

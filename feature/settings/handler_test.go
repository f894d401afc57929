package settings_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"chest-sorter/core/reconcile"
	"chest-sorter/feature/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp() (*fiber.App, *settings.Store) {
	store := settings.NewStore(settings.Settings{Mode: reconcile.ModeAlpha})
	feature := settings.NewFeature(store, zap.NewNop())
	app := fiber.New()
	_ = feature.Load(app)
	return app, store
}

func postCommand(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	req := httptest.NewRequest("POST", "/settings/commands", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestHandleGetSettings(t *testing.T) {
	app, _ := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/settings", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var s settings.Settings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	assert.Equal(t, reconcile.ModeAlpha, s.Mode)
}

func TestHandleCommand(t *testing.T) {
	app, store := setupApp()

	t.Run("Operator", func(t *testing.T) {
		code, body := postCommand(t, app, `{"player":{"name":"Steve","tags":["operator"]},"online_players":5,"message":"/sortanywhere"}`)
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, "[ChestSort] Sorting without sneaking is now ENABLED.", body["broadcast"])
		assert.True(t, store.Current().SortWithoutSneak)
	})

	t.Run("Forbidden", func(t *testing.T) {
		code, _ := postCommand(t, app, `{"player":{"name":"Alex"},"online_players":5,"message":"/sortmode type"}`)
		assert.Equal(t, fiber.StatusForbidden, code)
		assert.Equal(t, reconcile.ModeAlpha, store.Current().Mode)
	})

	t.Run("BadUsage", func(t *testing.T) {
		code, body := postCommand(t, app, `{"player":{"name":"Alex"},"online_players":1,"message":"/sortmode shuffle"}`)
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Equal(t, "[ChestSort] Invalid usage. Use /sortmode alpha|count|type", body["private"])
	})

	t.Run("NotCommand", func(t *testing.T) {
		code, _ := postCommand(t, app, `{"player":{"name":"Alex"},"online_players":1,"message":"hi"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	})

	t.Run("BareSortMode", func(t *testing.T) {
		code, _ := postCommand(t, app, `{"player":{"name":"Alex"},"online_players":1,"message":"/sortmode"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, code)
		assert.Equal(t, reconcile.ModeAlpha, store.Current().Mode)
	})

	t.Run("BadBody", func(t *testing.T) {
		code, _ := postCommand(t, app, `{`)
		assert.Equal(t, fiber.StatusBadRequest, code)
	})
}

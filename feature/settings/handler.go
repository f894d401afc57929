package settings

import (
	"errors"

	"chest-sorter/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for sorter settings.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CommandRequest is a chat message forwarded by the host.
type CommandRequest struct {
	Player        Player `json:"player"`
	OnlinePlayers int    `json:"online_players"`
	Message       string `json:"message"`
}

// RegisterRoutes registers the settings routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/settings")
	group.Get("/", h.HandleGetSettings)
	group.Post("/commands", h.HandleCommand)
}

// HandleGetSettings returns the active settings.
// @Summary Get Settings
// @Description Returns the active sorting mode, verbosity and sneak requirement.
// @Tags settings
// @Produce json
// @Success 200 {object} settings.Settings "Active Settings"
// @Router /settings [get]
func (h *Handler) HandleGetSettings(c *fiber.Ctx) error {
	return c.JSON(h.service.Current())
}

// HandleCommand executes a sorter chat command.
// @Summary Execute Command
// @Description Executes /sortmode, /sortverbose or /sortanywhere on behalf of a player.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body settings.CommandRequest true "Chat message"
// @Success 200 {object} settings.Reply "Applied"
// @Failure 400 {object} settings.Reply "Invalid usage"
// @Failure 403 {object} settings.Reply "Not an operator"
// @Failure 422 {object} map[string]string "Not a sorter command"
// @Router /settings/commands [post]
func (h *Handler) HandleCommand(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CommandRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	reply, err := h.service.Execute(req.Player, req.OnlinePlayers, req.Message)
	switch {
	case err == nil:
		return c.JSON(reply)
	case errors.Is(err, ErrNotCommand):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotOperator):
		return c.Status(fiber.StatusForbidden).JSON(reply)
	default:
		l.Debug("Invalid settings command", zap.String("message", req.Message), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(reply)
	}
}

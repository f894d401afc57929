package container

import (
	"errors"

	"chest-sorter/core/logger"
	"chest-sorter/core/reconcile"
	"chest-sorter/core/utils"
	"chest-sorter/feature/container/models"
	"chest-sorter/feature/settings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for containers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// InteractRequest describes a player opening a container.
type InteractRequest struct {
	Player   settings.Player `json:"player"`
	Sneaking bool            `json:"sneaking"`
}

// RegisterRoutes registers the container routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/containers")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandlePut)
	group.Post("/:id/sort", h.HandleSort)
	group.Post("/:id/interact", h.HandleInteract)
	group.Post("/:id/restore", h.HandleRestore)
}

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidDocument):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrNoJournal):
		return fiber.StatusNotImplemented
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := errorStatus(err)
	if status >= fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error(msg, logger.Container(c.Params("id")), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleList lists container ids.
// @Summary List Containers
// @Description Lists the ids of every stored container.
// @Tags containers
// @Produce json
// @Success 200 {object} map[string]interface{} "Container ids"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /containers [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	ids, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, "Container listing failed", err)
	}
	return c.JSON(fiber.Map{"backend": h.service.Backend(), "containers": ids})
}

// HandleGet returns a container.
// @Summary Get Container
// @Description Returns the slots of a stored container.
// @Tags containers
// @Produce json
// @Param id path string true "Container ID"
// @Success 200 {object} models.ContainerDocument "Container"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /containers/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	doc, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Container lookup failed", err)
	}
	return c.JSON(doc)
}

// HandlePut stores a container.
// @Summary Put Container
// @Description Creates or replaces a container.
// @Tags containers
// @Accept json
// @Produce json
// @Param id path string true "Container ID"
// @Param container body models.ContainerDocument true "Container"
// @Success 200 {object} models.ContainerDocument "Stored Container"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /containers/{id} [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	var doc models.ContainerDocument
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	doc.ID = c.Params("id")

	if err := h.service.Put(c.Context(), &doc); err != nil {
		return h.fail(c, "Container save failed", err)
	}
	return c.JSON(doc)
}

// HandleSort sorts a container.
// @Summary Sort Container
// @Description Merges, orders and verifies the container contents. The container is rolled back on any mismatch.
// @Tags containers
// @Produce json
// @Param id path string true "Container ID"
// @Param mode query string false "Sorting mode (alpha, count, type)"
// @Param dry_run query boolean false "Plan only"
// @Success 200 {object} SortReport "Sorted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} SortReport "Rolled back"
// @Router /containers/{id}/sort [post]
func (h *Handler) HandleSort(c *fiber.Ctx) error {
	opts := SortOptions{DryRun: utils.ToBool(c.Query("dry_run"))}
	if raw := c.Query("mode"); raw != "" {
		mode, err := reconcile.ParseMode(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		opts.Mode = mode
	}

	report, err := h.service.Sort(c.Context(), c.Params("id"), opts)
	if err != nil {
		return h.fail(c, "Sort failed", err)
	}
	return c.Status(sortStatus(report)).JSON(report)
}

// sortStatus is 200 for a verified sort and 409 for a sort that was not applied.
func sortStatus(report *SortReport) int {
	if report.Result.Success {
		return fiber.StatusOK
	}
	return fiber.StatusConflict
}

// HandleInteract handles a player opening a container.
// @Summary Interact With Container
// @Description Sorts the container when the player sneaks or sorting without sneaking is enabled.
// @Tags containers
// @Accept json
// @Produce json
// @Param id path string true "Container ID"
// @Param request body InteractRequest true "Interaction"
// @Success 200 {object} InteractReport "Interaction handled"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /containers/{id}/interact [post]
func (h *Handler) HandleInteract(c *fiber.Ctx) error {
	var req InteractRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	report, err := h.service.Interact(c.Context(), c.Params("id"), req.Player, req.Sneaking)
	if err != nil {
		return h.fail(c, "Interaction failed", err)
	}
	return c.JSON(report)
}

// HandleRestore restores a container from its journal.
// @Summary Restore Container
// @Description Writes the newest pre-sort snapshot back into the container.
// @Tags containers
// @Produce json
// @Param id path string true "Container ID"
// @Success 200 {object} models.JournalEntry "Restored entry"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 501 {object} map[string]string "Backend keeps no journal"
// @Router /containers/{id}/restore [post]
func (h *Handler) HandleRestore(c *fiber.Ctx) error {
	entry, err := h.service.Restore(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Restore failed", err)
	}
	return c.JSON(entry)
}

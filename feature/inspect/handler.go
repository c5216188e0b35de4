package inspect

import (
	"strconv"

	"corpus-builder/core/logger"
	"corpus-builder/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// maxIDs bounds a single batch request.
const maxIDs = 50

// Handler serves inspection reports over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inspect routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/inspect/items", h.HandleItems)
	app.Get("/inspect/items/:id", h.HandleItem)
}

// HandleItem reports where an item is present and which fields disagree.
// @Summary Inspect Item
// @Description Presence in every backend and the corpus, plus relational/metadata field mismatches.
// @Tags inspect
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} reconcile.Result
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 502 {object} map[string]string "Backend Error"
// @Router /inspect/items/{id} [get]
func (h *Handler) HandleItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	res, err := h.service.Inspect(c.Context(), id)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Inspection failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

// HandleItems reports on a comma separated list of items.
// @Summary Inspect Items
// @Tags inspect
// @Produce json
// @Param ids query string true "Comma separated item IDs"
// @Success 200 {array} reconcile.Result
// @Failure 400 {object} map[string]string "Invalid IDs"
// @Failure 502 {object} map[string]string "Backend Error"
// @Router /inspect/items [get]
func (h *Handler) HandleItems(c *fiber.Ctx) error {
	ids, err := utils.ParseIDs([]string{c.Query("ids")})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(ids) == 0 || len(ids) > maxIDs {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "between 1 and " + strconv.Itoa(maxIDs) + " ids required"})
	}
	results, err := h.service.InspectMany(c.Context(), ids)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Inspection failed", zap.Ints("ids", ids), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(results)
}

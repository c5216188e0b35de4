package corpus

import (
	"strconv"

	"corpus-builder/core/logger"
	"corpus-builder/feature/models"
	"corpus-builder/feature/persist"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the corpus over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the corpus routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/summary", h.HandleSummary)
	app.Post("/summary/refresh", h.HandleRefresh)

	app.Get("/maps", h.list(persist.KindMap))
	app.Get("/maps/:id", h.HandleMap)

	app.Get("/monsters", h.list(persist.KindMonster))
	app.Get("/monsters/:id", h.HandleMonster)

	app.Get("/items", h.list(persist.KindItem))
	app.Get("/items/:id", h.HandleItem)
	app.Get("/items/:id/droppers", h.HandleDroppers)
}

// HandleSummary returns the record counts of the corpus.
// @Summary Corpus Summary
// @Description Number of persisted maps, monsters and items per type.
// @Tags corpus
// @Produce json
// @Success 200 {object} persist.Counts
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	counts, err := h.service.Summary(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(counts)
}

// HandleRefresh drops cached aggregates after a fetch run.
// @Summary Refresh Aggregates
// @Tags corpus
// @Success 204
// @Router /summary/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	h.service.Refresh()
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleMap returns a persisted map.
// @Summary Get Map
// @Tags corpus
// @Produce json
// @Param id path int true "Map ID"
// @Success 200 {object} models.Map
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /maps/{id} [get]
func (h *Handler) HandleMap(c *fiber.Ctx) error {
	return respond(c, func(id int) (*models.Map, bool) { return h.service.Map(id) })
}

// HandleMonster returns a persisted monster.
// @Summary Get Monster
// @Tags corpus
// @Produce json
// @Param id path int true "Monster ID"
// @Success 200 {object} models.Monster
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /monsters/{id} [get]
func (h *Handler) HandleMonster(c *fiber.Ctx) error {
	return respond(c, func(id int) (*models.Monster, bool) { return h.service.Monster(id) })
}

// HandleItem returns a persisted item.
// @Summary Get Item
// @Tags corpus
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Item
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /items/{id} [get]
func (h *Handler) HandleItem(c *fiber.Ctx) error {
	return respond(c, func(id int) (*models.Item, bool) { return h.service.Item(id) })
}

// HandleDroppers returns the monsters dropping an item.
// @Summary Item Droppers
// @Tags corpus
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {array} Dropper
// @Failure 400 {object} map[string]string "Invalid ID"
// @Router /items/{id}/droppers [get]
func (h *Handler) HandleDroppers(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	droppers, err := h.service.Droppers(c.Context(), id)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Dropper lookup failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if droppers == nil {
		droppers = []Dropper{}
	}
	return c.JSON(droppers)
}

func (h *Handler) list(kind persist.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ids, err := h.service.List(kind)
		if err != nil {
			logger.WithRayID(h.service.logger, c).Error("Listing failed", zap.String("kind", string(kind)), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if ids == nil {
			ids = []int{}
		}
		return c.JSON(fiber.Map{"ids": ids, "count": len(ids)})
	}
}

func respond[T any](c *fiber.Ctx, read func(int) (*T, bool)) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	rec, ok := read(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.JSON(rec)
}

func parseID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
}

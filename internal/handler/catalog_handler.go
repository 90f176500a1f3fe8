package handler

import (
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go-catalog-ws/internal/service"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// parsePayload decodes the body into a generic object so field types can be
// checked by the validator instead of failing the whole decode.
func parsePayload(c *fiber.Ctx) (map[string]interface{}, bool) {
	var payload map[string]interface{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil || payload == nil {
		return nil, false
	}
	return payload, true
}

// writeError maps service errors onto status codes.
func writeError(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Fields})
	case errors.Is(err, service.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	default:
		zap.S().Errorw("catalog write failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save product, please try again"})
	}
}

// GET /products
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.ListProducts())
}

// GET /products/:id
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

// POST /products
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	payload, ok := parsePayload(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.CreateProduct(payload)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// PUT /products/:id
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	payload, ok := parsePayload(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.UpdateProduct(c.Params("id"), payload)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

// DELETE /products/:id
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Deleted successfully"})
}

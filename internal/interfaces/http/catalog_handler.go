package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dashboard"
)

// CatalogHandler productos, clientes e inventario agrupado.
type CatalogHandler struct {
	uc *dashboard.CatalogUseCase
}

func NewCatalogHandler(uc *dashboard.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts godoc
// @Summary      Catálogo de productos
// @Description  Todos los productos en orden de nombre; los no estándar se etiquetan con su nombre
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.ProductDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.Products(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ProductOptions godoc
// @Summary      Productos estándar para formularios
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.ProductOptionDTO
// @Router       /api/products/options [get]
func (h *CatalogHandler) ProductOptions(c *fiber.Ctx) error {
	out, err := h.uc.ProductOptions(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListClients GET /api/clients
func (h *CatalogHandler) ListClients(c *fiber.Ctx) error {
	out, err := h.uc.Clients(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Inventario agrupado por código (FR, CA)
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.GroupedInventoryDTO
// @Router       /api/inventory [get]
func (h *CatalogHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

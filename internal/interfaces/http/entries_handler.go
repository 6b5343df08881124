package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/entries"
)

// EntriesHandler alta, corrección, baja y listado de producción y envíos.
type EntriesHandler struct {
	uc *entries.UseCase
}

func NewEntriesHandler(uc *entries.UseCase) *EntriesHandler {
	return &EntriesHandler{uc: uc}
}

// ListProduction godoc
// @Summary      Registros de producción
// @Tags         production
// @Produce      json
// @Param        date  query  string  false  "Día exacto YYYY-MM-DD"
// @Success      200  {array}   dto.ProductionEntryDTO
// @Router       /api/production [get]
func (h *EntriesHandler) ListProduction(c *fiber.Ctx) error {
	out, err := h.uc.ListProduction(c.Context(), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateProduction godoc
// @Summary      Registra producción
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionRequest  true  "Registro"
// @Success      201  {object}  dto.ProductionEntryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/production [post]
func (h *EntriesHandler) CreateProduction(c *fiber.Ctx) error {
	var in dto.CreateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body JSON inválido")
	}
	out, err := h.uc.CreateProduction(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateProduction PUT /api/production/:id (campos parciales)
func (h *EntriesHandler) UpdateProduction(c *fiber.Ctx) error {
	id, err := entryID(c)
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body JSON inválido")
	}
	out, err := h.uc.UpdateProduction(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteProduction DELETE /api/production/:id
func (h *EntriesHandler) DeleteProduction(c *fiber.Ctx) error {
	id, err := entryID(c)
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.DeleteProduction(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListShipments godoc
// @Summary      Envíos
// @Tags         shipments
// @Produce      json
// @Param        date  query  string  false  "Día exacto YYYY-MM-DD"
// @Success      200  {array}   dto.ShipmentEntryDTO
// @Router       /api/shipments [get]
func (h *EntriesHandler) ListShipments(c *fiber.Ctx) error {
	out, err := h.uc.ListShipments(c.Context(), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateShipment POST /api/shipments
func (h *EntriesHandler) CreateShipment(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body JSON inválido")
	}
	out, err := h.uc.CreateShipment(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateShipment PUT /api/shipments/:id
func (h *EntriesHandler) UpdateShipment(c *fiber.Ctx) error {
	id, err := entryID(c)
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body JSON inválido")
	}
	out, err := h.uc.UpdateShipment(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteShipment DELETE /api/shipments/:id
func (h *EntriesHandler) DeleteShipment(c *fiber.Ctx) error {
	id, err := entryID(c)
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.DeleteShipment(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func entryID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

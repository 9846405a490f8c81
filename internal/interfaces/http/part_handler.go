package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rvaldez/repairshop-pro/internal/application/dto"
	"github.com/rvaldez/repairshop-pro/internal/application/usecase"
	"github.com/rvaldez/repairshop-pro/internal/domain"
)

// PartHandler handles part catalog requests. Reads are open to any
// authenticated user; writes are admin-only (enforced in the router).
type PartHandler struct {
	uc *usecase.PartUseCase
}

// NewPartHandler builds the handler.
func NewPartHandler(uc *usecase.PartUseCase) *PartHandler {
	return &PartHandler{uc: uc}
}

// Create godoc
// @Summary      Create part (admin)
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartRequest  true  "name is required"
// @Success      201   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parts [post]
func (h *PartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	part, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(part)
}

// List GET /api/parts?query=brake&limit=20&offset=0
func (h *PartHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.List(c.Query("query"), limit, offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/parts/:id
func (h *PartHandler) GetByID(c *fiber.Ctx) error {
	part, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if part == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "part not found"})
	}
	return c.JSON(part)
}

// Update PUT /api/parts/:id (admin)
func (h *PartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	part, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name must not be empty"})
		}
		return internalError(c, err)
	}
	if part == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "part not found"})
	}
	return c.JSON(part)
}

// Delete DELETE /api/parts/:id (admin). Order lines that reference the part
// keep their snapshot price; the reference is cleared.
func (h *PartHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "part not found"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "part deleted"})
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rvaldez/repairshop-pro/internal/application/dto"
	"github.com/rvaldez/repairshop-pro/internal/application/orders"
	"github.com/rvaldez/repairshop-pro/internal/domain"
)

const dateLayout = "2006-01-02"

// OrderHandler handles repair order requests: order CRUD, lines, totals,
// history, payment and the printable sheet.
type OrderHandler struct {
	uc    *orders.UseCase
	sheet *orders.SheetUseCase
}

// NewOrderHandler builds the handler.
func NewOrderHandler(uc *orders.UseCase, sheet *orders.SheetUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, sheet: sheet}
}

// Create godoc
// @Summary      Open repair order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "customer_id is required; number is generated when empty"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	order, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id must reference an existing customer; status and tax_state must be valid"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "repair order number already exists"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List GET /api/orders?limit=20&offset=0
func (h *OrderHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// Search godoc
// @Summary      Search orders by number substring
// @Tags         orders
// @Produce      json
// @Param        repairOrderNumber  query  string  true  "substring of the repair order number"
// @Success      200     {array}  dto.OrderResponse
// @Router       /api/orders/search [get]
func (h *OrderHandler) Search(c *fiber.Ctx) error {
	number := c.Query("repairOrderNumber")
	if number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "repairOrderNumber query param is required"})
	}
	list, err := h.uc.Search(number)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// DateRange GET /api/orders/date-range?start=2026-01-01&end=2026-01-31
// Both bounds are inclusive whole days; an inverted range yields an empty
// list.
func (h *OrderHandler) DateRange(c *fiber.Ctx) error {
	start, err := time.Parse(dateLayout, c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start must be a YYYY-MM-DD date"})
	}
	end, err := time.Parse(dateLayout, c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end must be a YYYY-MM-DD date"})
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	list, err := h.uc.ListByDateRange(start, end)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/orders/:id, returns the order with customer and lines.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "order not found"})
	}
	return c.JSON(order)
}

// Update PUT /api/orders/:id
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	order, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id, status and tax_state must be valid"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "repair order number already exists"})
		}
		return internalError(c, err)
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "order not found"})
	}
	return c.JSON(order)
}

// Delete DELETE /api/orders/:id (admin). Lines and history go with the
// order.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "order not found"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "order deleted"})
}

// Pay POST /api/orders/:id/pay marks the order paid. Repeating the call
// appends another history entry; the flag stays set.
func (h *OrderHandler) Pay(c *fiber.Ctx) error {
	order, err := h.uc.MarkPaid(c.Context(), c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "order not found"})
	}
	return c.JSON(order)
}

// Totals godoc
// @Summary      Order totals
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "order id"
// @Success      200  {object}  dto.OrderTotalsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/total [get]
func (h *OrderHandler) Totals(c *fiber.Ctx) error {
	totals, err := h.uc.Totals(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if totals == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "order not found"})
	}
	return c.JSON(totals)
}

// History GET /api/orders/:id/history, messages in append order. Unknown
// orders yield an empty list.
func (h *OrderHandler) History(c *fiber.Ctx) error {
	messages, err := h.uc.GetHistory(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(messages)
}

// Sheet GET /api/orders/:id/pdf, the printable repair order sheet.
func (h *OrderHandler) Sheet(c *fiber.Ctx) error {
	doc, filename, err := h.sheet.Generate(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if doc == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "order not found"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}

// AddLine POST /api/orders/:id/lines
func (h *OrderHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddOrderLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	line, err := h.uc.AddLine(c.Context(), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "description is required and quantity must not be negative"})
		}
		return internalError(c, err)
	}
	if line == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "order not found"})
	}
	return c.Status(fiber.StatusCreated).JSON(line)
}

// UpdateLine PUT /api/orders/:id/lines/:lineId. Line lookups are scoped by
// order: a wrong order id is a 404 even when the line exists elsewhere.
func (h *OrderHandler) UpdateLine(c *fiber.Ctx) error {
	var in dto.UpdateOrderLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	line, err := h.uc.UpdateLine(c.Context(), c.Params("id"), c.Params("lineId"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "description must not be empty and quantity must not be negative"})
		}
		return internalError(c, err)
	}
	if line == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "line not found on this order"})
	}
	return c.JSON(line)
}

// DeleteLine DELETE /api/orders/:id/lines/:lineId (admin)
func (h *OrderHandler) DeleteLine(c *fiber.Ctx) error {
	err := h.uc.DeleteLine(c.Context(), c.Params("id"), c.Params("lineId"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "line not found on this order"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "line deleted"})
}

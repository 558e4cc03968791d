package leads

import (
	"fmt"

	"aimlink-backend/internal/pkg/response"
	"aimlink-backend/internal/properties"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

type CreateLeadRequest struct {
	PropertyID string  `json:"property_id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Message    *string `json:"message"`
}

// CreateLead POST /api/leads (public: inquiries come from prospective buyers)
func (h *Handlers) CreateLead(c *fiber.Ctx) error {
	var req CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	missing := ""
	switch {
	case req.PropertyID == "":
		missing = "property_id"
	case req.Name == "":
		missing = "name"
	case req.Phone == "":
		missing = "phone"
	}
	if missing != "" {
		return response.Error(c, fmt.Sprintf("Missing required field: %s", missing), fiber.StatusBadRequest, nil)
	}

	lead, err := h.Service.Create(c.Context(), CreateLeadInput{
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Phone:      req.Phone,
		Message:    req.Message,
	})
	if err != nil {
		switch err {
		case properties.ErrInvalidID:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case properties.ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return c.JSON(lead)
}

// GetLeads GET /api/leads (admin — leads carry caller PII)
func (h *Handlers) GetLeads(c *fiber.Ctx) error {
	list, err := h.Service.List(c.Context(), ListFilters{Status: c.Query("status")})
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return c.JSON(list)
}

type UpdateLeadRequest struct {
	Status string `json:"status"`
}

// UpdateLead PUT /api/leads/:lead_id (admin)
func (h *Handlers) UpdateLead(c *fiber.Ctx) error {
	var req UpdateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	lead, err := h.Service.UpdateStatus(c.Context(), c.Params("lead_id"), req.Status)
	if err != nil {
		switch err {
		case ErrInvalidID, ErrInvalidStatus:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return c.JSON(lead)
}

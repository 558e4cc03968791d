package properties

import (
	"fmt"
	"strconv"

	"aimlink-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// CreatePropertyRequest uses pointers for the required numeric fields so a
// missing field is distinguishable from an explicit zero.
type CreatePropertyRequest struct {
	Title          string   `json:"title"`
	Area           string   `json:"area"`
	LocationDetail string   `json:"location_detail"`
	PriceUSD       *float64 `json:"price_usd"`
	PropertyType   string   `json:"property_type"`
	SizeSqm        *float64 `json:"size_sqm"`
	Bedrooms       *int     `json:"bedrooms"`
	Bathrooms      *int     `json:"bathrooms"`
	FloorLevel     *string  `json:"floor_level"`
	ViewType       *string  `json:"view_type"`
	Description    string   `json:"description"`
	Images         []string `json:"images"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Status         string   `json:"status"`
}

// CreateProperty POST /api/properties (admin)
func (h *Handlers) CreateProperty(c *fiber.Ctx) error {
	var req CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	missing := ""
	switch {
	case req.Title == "":
		missing = "title"
	case req.Area == "":
		missing = "area"
	case req.LocationDetail == "":
		missing = "location_detail"
	case req.PriceUSD == nil:
		missing = "price_usd"
	case req.PropertyType == "":
		missing = "property_type"
	case req.SizeSqm == nil:
		missing = "size_sqm"
	case req.Description == "":
		missing = "description"
	}
	if missing != "" {
		return response.Error(c, fmt.Sprintf("Missing required field: %s", missing), fiber.StatusBadRequest, nil)
	}

	property, err := h.Service.Create(c.Context(), CreatePropertyInput{
		Title:          req.Title,
		Area:           req.Area,
		LocationDetail: req.LocationDetail,
		PriceUSD:       *req.PriceUSD,
		PropertyType:   req.PropertyType,
		SizeSqm:        *req.SizeSqm,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		FloorLevel:     req.FloorLevel,
		ViewType:       req.ViewType,
		Description:    req.Description,
		Images:         req.Images,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Status:         req.Status,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(property)
}

// GetProperties GET /api/properties (public)
// status defaults to "active" when absent; an explicit empty status disables
// the status filter so admins can fetch everything.
func (h *Handlers) GetProperties(c *fiber.Ctx) error {
	filters := ListFilters{
		Area:         c.Query("area"),
		PropertyType: c.Query("property_type"),
		Status:       "active",
	}
	if c.Context().QueryArgs().Has("status") {
		filters.Status = c.Query("status")
	}
	if v := c.Query("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return response.Error(c, "Invalid min_price", fiber.StatusBadRequest, nil)
		}
		filters.MinPrice = &f
	}
	if v := c.Query("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return response.Error(c, "Invalid max_price", fiber.StatusBadRequest, nil)
		}
		filters.MaxPrice = &f
	}

	list, err := h.Service.List(c.Context(), filters)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(list)
}

// GetProperty GET /api/properties/:property_id (public)
func (h *Handlers) GetProperty(c *fiber.Ctx) error {
	property, err := h.Service.GetByID(c.Context(), c.Params("property_id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(property)
}

// UpdatePropertyRequest mirrors UpdatePropertyInput: every field optional.
type UpdatePropertyRequest struct {
	Title          *string   `json:"title"`
	Area           *string   `json:"area"`
	LocationDetail *string   `json:"location_detail"`
	PriceUSD       *float64  `json:"price_usd"`
	PropertyType   *string   `json:"property_type"`
	SizeSqm        *float64  `json:"size_sqm"`
	Bedrooms       *int      `json:"bedrooms"`
	Bathrooms      *int      `json:"bathrooms"`
	FloorLevel     *string   `json:"floor_level"`
	ViewType       *string   `json:"view_type"`
	Description    *string   `json:"description"`
	Images         *[]string `json:"images"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	Status         *string   `json:"status"`
}

// UpdateProperty PUT /api/properties/:property_id (admin)
func (h *Handlers) UpdateProperty(c *fiber.Ctx) error {
	var req UpdatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	property, err := h.Service.Update(c.Context(), c.Params("property_id"), UpdatePropertyInput{
		Title:          req.Title,
		Area:           req.Area,
		LocationDetail: req.LocationDetail,
		PriceUSD:       req.PriceUSD,
		PropertyType:   req.PropertyType,
		SizeSqm:        req.SizeSqm,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		FloorLevel:     req.FloorLevel,
		ViewType:       req.ViewType,
		Description:    req.Description,
		Images:         req.Images,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Status:         req.Status,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(property)
}

// DeleteProperty DELETE /api/properties/:property_id (admin)
func (h *Handlers) DeleteProperty(c *fiber.Ctx) error {
	if err := h.Service.Delete(c.Context(), c.Params("property_id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Property deleted successfully"})
}

func errorResponse(c *fiber.Ctx, err error) error {
	switch err {
	case ErrInvalidID, ErrEmptyUpdate, ErrInvalidStatus, ErrNegativePrice, ErrNegativeSize:
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	case ErrNotFound:
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	default:
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
}

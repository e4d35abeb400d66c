package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/banquetdesk/banquet-backend/internal/menu"
	"github.com/banquetdesk/banquet-backend/internal/pkg/request"
	"github.com/banquetdesk/banquet-backend/internal/pkg/response"
)

type Handler struct {
	service menu.Service
}

func NewHandler(service menu.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreatePackage(c *gin.Context) {
	var body CreatePackageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.CreatePackage(c.Request.Context(), menu.CreatePackageRequest{
		Name:     body.Name,
		Type:     menu.PackageType(body.Type),
		Category: body.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPackageResponse(p))
}

func (h *Handler) GetPackage(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	p, err := h.service.GetPackage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPackageResponse(p))
}

func (h *Handler) ListPackages(c *gin.Context) {
	var page request.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination parameters"})
		return
	}
	page.Normalize()

	filter := menu.Filter{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Page:     page.Page,
		PageSize: page.PageSize,
	}

	packages, total, err := h.service.ListPackages(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list packages"})
		return
	}

	items := make([]PackageResponse, len(packages))
	for i, p := range packages {
		items[i] = NewPackageResponse(p)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, page.Page, page.PageSize, total))
}

func (h *Handler) UpdatePackage(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdatePackageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req := menu.UpdatePackageRequest{
		Name:     body.Name,
		Category: body.Category,
	}
	if body.Type != nil {
		t := menu.PackageType(*body.Type)
		req.Type = &t
	}

	p, err := h.service.UpdatePackage(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPackageResponse(p))
}

func (h *Handler) DeletePackage(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.DeletePackage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RecalculatePrice(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	price, err := h.service.RecalculatePackagePrice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, RecalculateResponse{PackageID: id, Price: price})
}

func (h *Handler) ListItems(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	items, err := h.service.ListItems(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewItemResponse(it))
	}

	c.JSON(http.StatusOK, gin.H{"items": out})
}

func (h *Handler) CreateItem(c *gin.Context) {
	var body CreateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	it, err := h.service.CreateItem(c.Request.Context(), menu.CreateItemRequest{
		PackageID:       body.PackageID,
		Name:            body.Name,
		Type:            menu.PackageType(body.Type),
		Price:           body.Price,
		AdditionalPrice: body.AdditionalPrice,
		Quantity:        body.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemResponse(it))
}

func (h *Handler) UpdateItem(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req := menu.UpdateItemRequest{
		Name:            body.Name,
		Price:           body.Price,
		AdditionalPrice: body.AdditionalPrice,
		Quantity:        body.Quantity,
	}
	if body.Type != nil {
		t := menu.PackageType(*body.Type)
		req.Type = &t
	}

	it, err := h.service.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponse(it))
}

func (h *Handler) DeleteItem(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

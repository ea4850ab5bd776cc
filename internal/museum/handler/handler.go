package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/museumsapi/museums-api/internal/museum"
	"github.com/museumsapi/museums-api/internal/museum/service"
	"github.com/museumsapi/museums-api/pkg/logger"
)

// Created is the acknowledgment body returned by a successful create. The
// new id is not included.
const Created = "Resource Created"

// ErrorResponse is the JSON body of every failed museum request.
type ErrorResponse struct {
	Err string `json:"err" example:"No result found"`
}

// Handler serves the museum collection.
type Handler struct {
	svc service.Service
}

// New returns a Handler backed by svc.
func New(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the museum routes under rg (normally /api/v1).
func (h *Handler) Register(rg *gin.RouterGroup) {
	m := rg.Group("/museums")
	m.GET("", h.List)
	m.GET("/:id", h.Get)
	m.POST("", h.Create)
	m.PUT("/:id", h.Update)
	m.DELETE("/:id", h.Delete)
}

// RegisterMuseumRoutes wires a Handler for svc onto r under /api/v1.
func RegisterMuseumRoutes(r *gin.Engine, svc service.Service) {
	New(svc).Register(r.Group("/api/v1"))
}

func fail(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Err: msg})
}

// List godoc
//
//	@Summary	Retrieve all museums
//	@Tags		museums
//	@Produce	json
//	@Success	200	{array}		museum.Museum	"A list of museums"
//	@Failure	400	{object}	ErrorResponse	"Bad Request"
//	@Failure	404	{object}	ErrorResponse	"Not found"
//	@Router		/museums [get]
func (h *Handler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("list museums: %v", err)
		fail(c, http.StatusBadRequest, "Bad Request: "+err.Error())
		return
	}
	if list == nil {
		fail(c, http.StatusNotFound, "No results found")
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get godoc
//
//	@Summary	Find a museum by its id
//	@Tags		museums
//	@Produce	json
//	@Param		id	path		string			true	"Museum id"
//	@Success	200	{object}	museum.Museum	"A single museum"
//	@Failure	400	{object}	ErrorResponse	"Malformed id"
//	@Failure	404	{object}	ErrorResponse	"Not found"
//	@Router		/museums/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	m, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrNotFound):
		fail(c, http.StatusNotFound, "No result found")
	case err != nil:
		fail(c, http.StatusBadRequest, "Bad Request: "+err.Error())
	default:
		c.JSON(http.StatusOK, m)
	}
}

// Create godoc
//
//	@Summary	Add a new museum from the request body
//	@Tags		museums
//	@Accept		json
//	@Produce	json
//	@Param		museum	body		museum.Input	true	"Museum to add"
//	@Success	201		{string}	string			"Resource Created"
//	@Failure	400		{object}	ErrorResponse	"Bad Request"
//	@Router		/museums [post]
func (h *Handler) Create(c *gin.Context) {
	var in museum.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		if errors.Is(err, io.EOF) {
			fail(c, http.StatusBadRequest, "Request Body Required")
			return
		}
		fail(c, http.StatusBadRequest, "Bad Request: "+err.Error())
		return
	}
	id, err := h.svc.Create(c.Request.Context(), &in)
	if err != nil {
		fail(c, http.StatusBadRequest, "Bad Request: "+err.Error())
		return
	}
	logger.Debugf("museum %s created", id)
	c.JSON(http.StatusCreated, Created)
}

// Update godoc
//
//	@Summary	Replace the selected museum with the request body
//	@Tags		museums
//	@Accept		json
//	@Param		id		path	string			true	"Museum id"
//	@Param		museum	body	museum.Input	true	"Replacement museum"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse	"Bad Request"
//	@Failure	404	{object}	ErrorResponse	"Not found"
//	@Router		/museums/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var in museum.Input
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		fail(c, http.StatusBadRequest, "Bad Request "+err.Error())
		return
	}
	err := h.svc.Update(c.Request.Context(), c.Param("id"), &in)
	switch {
	case errors.Is(err, service.ErrNotFound):
		fail(c, http.StatusNotFound, "Resource was not found")
	case errors.Is(err, service.ErrIDMismatch):
		fail(c, http.StatusBadRequest, "The ID's don't match")
	case err != nil:
		fail(c, http.StatusBadRequest, "Bad Request "+err.Error())
	default:
		c.Status(http.StatusNoContent)
	}
}

// Delete godoc
//
//	@Summary	Remove the selected museum
//	@Tags		museums
//	@Param		id	path	string	true	"Museum id"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse	"Malformed id"
//	@Failure	404	{object}	ErrorResponse	"Not found"
//	@Router		/museums/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrNotFound):
		fail(c, http.StatusNotFound, "Not found")
	case err != nil:
		fail(c, http.StatusBadRequest, "Bad Request: "+err.Error())
	default:
		c.Status(http.StatusNoContent)
	}
}

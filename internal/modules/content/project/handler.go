package project

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hjstudio/core/internal/models"
	"github.com/hjstudio/core/internal/pkg/pagination"
	"github.com/hjstudio/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	g := rg.Group("/projects")

	g.GET("", h.list)
	g.GET("/all", h.listAll)
	g.GET("/categories", h.categories)
	g.GET("/:id", h.get)

	a := g.Group("", gateMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /projects?category=Residential
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	items, pag, err := h.svc.List(q, c.Query("category"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

// GET /projects/all, what the projects page renders
func (h *Handler) listAll(c *gin.Context) {
	items, err := h.svc.ListAll(c.Query("category"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// GET /projects/categories
func (h *Handler) categories(c *gin.Context) {
	out := append([]string{CategoryAll}, models.ProjectCategories...)
	response.OK(c, out)
}

// GET /projects/:id
func (h *Handler) get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "project not found")
		return
	}
	m, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "project not found")
		return
	}
	response.OK(c, m)
}

// POST /projects
func (h *Handler) create(c *gin.Context) {
	var dto ProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalErrorMsg(c, "error adding project")
		return
	}
	response.Created(c, m)
}

// PUT /projects/:id
func (h *Handler) update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "project not found")
		return
	}
	var dto ProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Replace(id, &dto)
	if err != nil {
		response.InternalErrorMsg(c, "error updating project")
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "project not found")
		return
	}
	response.OK(c, m)
}

// DELETE /projects/:id
func (h *Handler) delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "project not found")
		return
	}
	if err := h.svc.Delete(id); err != nil {
		response.InternalErrorMsg(c, "error deleting project")
		return
	}
	response.NoContent(c)
}

func parseID(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	return uint(v), err
}

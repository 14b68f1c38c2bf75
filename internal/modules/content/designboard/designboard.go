package designboard

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hjstudio/core/internal/models"
	"github.com/hjstudio/core/internal/pkg/pagination"
	"github.com/hjstudio/core/internal/pkg/response"
	"gorm.io/gorm"
)

// DesignBoardDTO carries the full editable row for add and update.
type DesignBoardDTO struct {
	Title       string `json:"title"    binding:"required"`
	Category    string `json:"category" binding:"required"`
	Image       string `json:"image"    binding:"required"`
	Description string `json:"description"`
}

func (dto *DesignBoardDTO) apply(m *models.DesignBoardModel) {
	m.Title = dto.Title
	m.Category = dto.Category
	m.Image = dto.Image
	m.Description = dto.Description
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(q pagination.Query) ([]models.DesignBoardModel, response.Pagination, error) {
	tx := s.db.Model(&models.DesignBoardModel{}).Order("created_at DESC, id DESC")
	var items []models.DesignBoardModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) ListAll() ([]models.DesignBoardModel, error) {
	var items []models.DesignBoardModel
	err := s.db.Order("created_at DESC, id DESC").Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id uint) (*models.DesignBoardModel, error) {
	var m models.DesignBoardModel
	if err := s.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Create(dto *DesignBoardDTO) (*models.DesignBoardModel, error) {
	var m models.DesignBoardModel
	dto.apply(&m)
	return &m, s.db.Create(&m).Error
}

func (s *Service) Replace(id uint, dto *DesignBoardDTO) (*models.DesignBoardModel, error) {
	m, err := s.GetByID(id)
	if err != nil || m == nil {
		return m, err
	}
	dto.apply(m)
	return m, s.db.Save(m).Error
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.DesignBoardModel{}, id).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	g := rg.Group("/design-board")
	g.GET("", h.list)
	g.GET("/all", h.listAll)
	g.GET("/:id", h.get)

	a := g.Group("", gateMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	items, pag, err := h.svc.List(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

func (h *Handler) listAll(c *gin.Context) {
	items, err := h.svc.ListAll()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "design board item not found")
		return
	}
	m, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "design board item not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) create(c *gin.Context) {
	var dto DesignBoardDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalErrorMsg(c, "error adding design board item")
		return
	}
	response.Created(c, m)
}

func (h *Handler) update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "design board item not found")
		return
	}
	var dto DesignBoardDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Replace(id, &dto)
	if err != nil {
		response.InternalErrorMsg(c, "error updating design board item")
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "design board item not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "design board item not found")
		return
	}
	if err := h.svc.Delete(id); err != nil {
		response.InternalErrorMsg(c, "error deleting design board item")
		return
	}
	response.NoContent(c)
}

func parseID(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	return uint(v), err
}

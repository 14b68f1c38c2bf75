package testimonial

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hjstudio/core/internal/models"
	"github.com/hjstudio/core/internal/pkg/pagination"
	"github.com/hjstudio/core/internal/pkg/response"
	"gorm.io/gorm"
)

// TestimonialDTO carries the full editable row. Rating is a pointer so an
// omitted value gets the default instead of zero.
type TestimonialDTO struct {
	Name     string `json:"name"    binding:"required"`
	Role     string `json:"role"    binding:"required"`
	Company  string `json:"company" binding:"required"`
	Image    string `json:"image"`
	Rating   *int   `json:"rating"  binding:"omitempty,min=1,max=5"`
	Text     string `json:"text"    binding:"required"`
	Featured bool   `json:"featured"`
}

func (dto *TestimonialDTO) apply(m *models.TestimonialModel) {
	m.Name = dto.Name
	m.Role = dto.Role
	m.Company = dto.Company
	m.Image = dto.Image
	if dto.Rating != nil {
		m.Rating = *dto.Rating
	} else {
		m.Rating = models.DefaultTestimonialRating
	}
	m.Text = dto.Text
	m.Featured = dto.Featured
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(q pagination.Query) ([]models.TestimonialModel, response.Pagination, error) {
	tx := s.db.Model(&models.TestimonialModel{}).Order("created_at DESC, id DESC")
	var items []models.TestimonialModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) ListAll() ([]models.TestimonialModel, error) {
	var items []models.TestimonialModel
	err := s.db.Order("created_at DESC, id DESC").Find(&items).Error
	return items, err
}

// ListFeatured returns featured testimonials for the home page.
func (s *Service) ListFeatured(limit int) ([]models.TestimonialModel, error) {
	var items []models.TestimonialModel
	tx := s.db.Where("featured = ?", true).Order("created_at DESC, id DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	return items, tx.Find(&items).Error
}

func (s *Service) GetByID(id uint) (*models.TestimonialModel, error) {
	var m models.TestimonialModel
	if err := s.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Create(dto *TestimonialDTO) (*models.TestimonialModel, error) {
	var m models.TestimonialModel
	dto.apply(&m)
	return &m, s.db.Create(&m).Error
}

func (s *Service) Replace(id uint, dto *TestimonialDTO) (*models.TestimonialModel, error) {
	m, err := s.GetByID(id)
	if err != nil || m == nil {
		return m, err
	}
	dto.apply(m)
	return m, s.db.Save(m).Error
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.TestimonialModel{}, id).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	g := rg.Group("/testimonials")
	g.GET("", h.list)
	g.GET("/all", h.listAll)
	g.GET("/featured", h.featured)
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

func (h *Handler) featured(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	items, err := h.svc.ListFeatured(limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "testimonial not found")
		return
	}
	m, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "testimonial not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) create(c *gin.Context) {
	var dto TestimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalErrorMsg(c, "error adding testimonial")
		return
	}
	response.Created(c, m)
}

func (h *Handler) update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "testimonial not found")
		return
	}
	var dto TestimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Replace(id, &dto)
	if err != nil {
		response.InternalErrorMsg(c, "error updating testimonial")
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "testimonial not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "testimonial not found")
		return
	}
	if err := h.svc.Delete(id); err != nil {
		response.InternalErrorMsg(c, "error deleting testimonial")
		return
	}
	response.NoContent(c)
}

func parseID(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	return uint(v), err
}

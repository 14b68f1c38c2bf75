package achievement

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hjstudio/core/internal/models"
	"github.com/hjstudio/core/internal/pkg/pagination"
	"github.com/hjstudio/core/internal/pkg/response"
	"gorm.io/gorm"
)

// AchievementDTO carries the full editable row.
type AchievementDTO struct {
	Title          string `json:"title"        binding:"required"`
	Organization   string `json:"organization" binding:"required"`
	Year           string `json:"year"         binding:"required"`
	Category       string `json:"category"     binding:"required,oneof=award certification publication"`
	Icon           string `json:"icon"         binding:"omitempty,oneof=Award Trophy Star Medal"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	CertificateURL string `json:"certificate_url"`
	Featured       bool   `json:"featured"`
}

func (dto *AchievementDTO) apply(m *models.AchievementModel) {
	m.Title = dto.Title
	m.Organization = dto.Organization
	m.Year = dto.Year
	m.Category = models.AchievementCategory(dto.Category)
	if dto.Icon != "" {
		m.Icon = dto.Icon
	} else {
		m.Icon = models.DefaultAchievementIcon
	}
	m.Description = dto.Description
	m.Image = dto.Image
	m.CertificateURL = dto.CertificateURL
	m.Featured = dto.Featured
}

// Grouped is the /achievements/grouped payload, one bucket per page section.
type Grouped struct {
	Awards         []models.AchievementModel `json:"awards"`
	Certifications []models.AchievementModel `json:"certifications"`
	Publications   []models.AchievementModel `json:"publications"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) scope() *gorm.DB {
	return s.db.Model(&models.AchievementModel{}).Order("year DESC, id DESC")
}

func (s *Service) List(q pagination.Query) ([]models.AchievementModel, response.Pagination, error) {
	var items []models.AchievementModel
	pag, err := pagination.Paginate(s.scope(), q, &items)
	return items, pag, err
}

func (s *Service) ListAll() ([]models.AchievementModel, error) {
	var items []models.AchievementModel
	err := s.db.Order("year DESC, id DESC").Find(&items).Error
	return items, err
}

// ListGrouped partitions all achievements into the three category buckets.
// Buckets are always non-nil so clients get empty arrays, not null.
func (s *Service) ListGrouped() (*Grouped, error) {
	items, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	g := &Grouped{
		Awards:         []models.AchievementModel{},
		Certifications: []models.AchievementModel{},
		Publications:   []models.AchievementModel{},
	}
	for _, it := range items {
		switch it.Category {
		case models.AchievementAward:
			g.Awards = append(g.Awards, it)
		case models.AchievementCertification:
			g.Certifications = append(g.Certifications, it)
		case models.AchievementPublication:
			g.Publications = append(g.Publications, it)
		}
	}
	return g, nil
}

func (s *Service) GetByID(id uint) (*models.AchievementModel, error) {
	var m models.AchievementModel
	if err := s.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Create(dto *AchievementDTO) (*models.AchievementModel, error) {
	var m models.AchievementModel
	dto.apply(&m)
	return &m, s.db.Create(&m).Error
}

func (s *Service) Replace(id uint, dto *AchievementDTO) (*models.AchievementModel, error) {
	m, err := s.GetByID(id)
	if err != nil || m == nil {
		return m, err
	}
	dto.apply(m)
	return m, s.db.Save(m).Error
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.AchievementModel{}, id).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	g := rg.Group("/achievements")
	g.GET("", h.list)
	g.GET("/all", h.listAll)
	g.GET("/grouped", h.grouped)
	g.GET("/meta", h.meta)
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

func (h *Handler) grouped(c *gin.Context) {
	g, err := h.svc.ListGrouped()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, g)
}

// GET /achievements/meta serves the form vocabularies the editor renders.
func (h *Handler) meta(c *gin.Context) {
	response.OK(c, gin.H{
		"categories": models.AchievementCategories,
		"icons":      models.AchievementIcons,
	})
}

func (h *Handler) get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "achievement not found")
		return
	}
	m, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "achievement not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) create(c *gin.Context) {
	var dto AchievementDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalErrorMsg(c, "error adding achievement")
		return
	}
	response.Created(c, m)
}

func (h *Handler) update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "achievement not found")
		return
	}
	var dto AchievementDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Replace(id, &dto)
	if err != nil {
		response.InternalErrorMsg(c, "error updating achievement")
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "achievement not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "achievement not found")
		return
	}
	if err := h.svc.Delete(id); err != nil {
		response.InternalErrorMsg(c, "error deleting achievement")
		return
	}
	response.NoContent(c)
}

func parseID(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	return uint(v), err
}

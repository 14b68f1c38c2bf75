package publication

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hjstudio/core/internal/models"
	"github.com/hjstudio/core/internal/pkg/pagination"
	"github.com/hjstudio/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PublicationDTO carries the full editable row. An empty author falls back
// to the studio principal.
type PublicationDTO struct {
	Title       string `json:"title"   binding:"required"`
	Journal     string `json:"journal" binding:"required"`
	Date        string `json:"date"    binding:"required"`
	Author      string `json:"author"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Featured    bool   `json:"featured"`
}

func (dto *PublicationDTO) apply(m *models.PublicationModel) {
	m.Title = dto.Title
	m.Journal = dto.Journal
	m.Date = dto.Date
	if dto.Author != "" {
		m.Author = dto.Author
	} else {
		m.Author = models.DefaultPublicationAuthor
	}
	m.Image = dto.Image
	m.Description = dto.Description
	m.Link = dto.Link
	m.Featured = dto.Featured
}

type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

func (s *Service) List(q pagination.Query) ([]models.PublicationModel, response.Pagination, error) {
	tx := s.db.Model(&models.PublicationModel{}).Order("date DESC, id DESC")
	var items []models.PublicationModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) ListAll() ([]models.PublicationModel, error) {
	var items []models.PublicationModel
	err := s.db.Order("date DESC, id DESC").Find(&items).Error
	return items, err
}

// ListPublic is what the public page renders. When the store errors or holds
// no rows it serves the built-in press list so the page never goes blank.
func (s *Service) ListPublic() []models.PublicationModel {
	items, err := s.ListAll()
	if err != nil {
		s.logger.Warn("publications unavailable, serving fallback", zap.Error(err))
		return fallbackPublications()
	}
	if len(items) == 0 {
		return fallbackPublications()
	}
	return items
}

func (s *Service) GetByID(id uint) (*models.PublicationModel, error) {
	var m models.PublicationModel
	if err := s.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Create(dto *PublicationDTO) (*models.PublicationModel, error) {
	var m models.PublicationModel
	dto.apply(&m)
	return &m, s.db.Create(&m).Error
}

func (s *Service) Replace(id uint, dto *PublicationDTO) (*models.PublicationModel, error) {
	m, err := s.GetByID(id)
	if err != nil || m == nil {
		return m, err
	}
	dto.apply(m)
	return m, s.db.Save(m).Error
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.PublicationModel{}, id).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	g := rg.Group("/publications")
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
	response.OK(c, h.svc.ListPublic())
}

func (h *Handler) get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "publication not found")
		return
	}
	m, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "publication not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) create(c *gin.Context) {
	var dto PublicationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalErrorMsg(c, "error adding publication")
		return
	}
	response.Created(c, m)
}

func (h *Handler) update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "publication not found")
		return
	}
	var dto PublicationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Replace(id, &dto)
	if err != nil {
		response.InternalErrorMsg(c, "error updating publication")
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "publication not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "publication not found")
		return
	}
	if err := h.svc.Delete(id); err != nil {
		response.InternalErrorMsg(c, "error deleting publication")
		return
	}
	response.NoContent(c)
}

func parseID(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	return uint(v), err
}

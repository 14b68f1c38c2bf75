package inquiry

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hjstudio/core/internal/models"
	"github.com/hjstudio/core/internal/pkg/bark"
	"github.com/hjstudio/core/internal/pkg/pagination"
	"github.com/hjstudio/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InquiryDTO is the contact form payload.
type InquiryDTO struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"      binding:"required,email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"    binding:"required"`
}

type Service struct {
	db     *gorm.DB
	push   *bark.Service
	logger *zap.Logger
}

func NewService(db *gorm.DB, push *bark.Service, logger *zap.Logger) *Service {
	return &Service{db: db, push: push, logger: logger}
}

// Create stores the inquiry and notifies the studio owner. The push runs in
// the background so a slow Bark server never delays the form submit.
func (s *Service) Create(dto *InquiryDTO) (*models.InquiryModel, error) {
	m := &models.InquiryModel{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Phone:     dto.Phone,
		Message:   dto.Message,
	}
	if err := s.db.Create(m).Error; err != nil {
		return nil, err
	}
	if s.push != nil {
		go s.push.InquiryPush(m.FirstName+" "+m.LastName, m.Email)
	}
	return m, nil
}

func (s *Service) List(q pagination.Query) ([]models.InquiryModel, response.Pagination, error) {
	tx := s.db.Model(&models.InquiryModel{}).Order("created_at DESC, id DESC")
	var items []models.InquiryModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) GetByID(id uint) (*models.InquiryModel, error) {
	var m models.InquiryModel
	if err := s.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// MarkRead flips the read flag so the admin inbox can track new messages.
func (s *Service) MarkRead(id uint, read bool) (*models.InquiryModel, error) {
	m, err := s.GetByID(id)
	if err != nil || m == nil {
		return m, err
	}
	m.Read = read
	return m, s.db.Save(m).Error
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.InquiryModel{}, id).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	g := rg.Group("/inquiries")
	g.POST("", h.create)

	a := g.Group("", gateMW)
	a.GET("", h.list)
	a.GET("/:id", h.get)
	a.PATCH("/:id/read", h.markRead)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var dto InquiryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalErrorMsg(c, "error submitting inquiry")
		return
	}
	response.Created(c, m)
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

func (h *Handler) get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "inquiry not found")
		return
	}
	m, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "inquiry not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) markRead(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "inquiry not found")
		return
	}
	var body struct {
		Read *bool `json:"read" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.MarkRead(id, *body.Read)
	if err != nil {
		response.InternalErrorMsg(c, "error updating inquiry")
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "inquiry not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "inquiry not found")
		return
	}
	if err := h.svc.Delete(id); err != nil {
		response.InternalErrorMsg(c, "error deleting inquiry")
		return
	}
	response.NoContent(c)
}

func parseID(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	return uint(v), err
}

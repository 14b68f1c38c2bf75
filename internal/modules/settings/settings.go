package settings

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/hjstudio/core/internal/models"
	"github.com/hjstudio/core/internal/pkg/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// publicKeys is the allowlist of settings the public site may read. Anything
// else (push credentials, tokens) stays behind the gate.
var publicKeys = []string{
	"site_title",
	"contact_email",
	"contact_phone",
	"contact_address",
	"instagram_handle",
	"office_hours",
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.OptionModel, error) {
	var items []models.OptionModel
	return items, s.db.Order("name ASC").Find(&items).Error
}

func (s *Service) Get(name string) (*models.OptionModel, error) {
	var opt models.OptionModel
	if err := s.db.Where("name = ?", name).First(&opt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &opt, nil
}

// Set upserts a setting by name.
func (s *Service) Set(name, value string) (*models.OptionModel, error) {
	opt := models.OptionModel{Name: name, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&opt).Error
	return &opt, err
}

func (s *Service) Delete(name string) error {
	return s.db.Where("name = ?", name).Delete(&models.OptionModel{}).Error
}

// Public returns the allowlisted settings as a flat name/value map.
func (s *Service) Public() (map[string]string, error) {
	var items []models.OptionModel
	if err := s.db.Where("name IN ?", publicKeys).Find(&items).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(items))
	for _, it := range items {
		out[it.Name] = it.Value
	}
	return out, nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	rg.GET("/settings/public", h.public)

	g := rg.Group("/settings", gateMW)
	g.GET("", h.list)
	g.GET("/:key", h.get)
	g.PATCH("/:key", h.patch)
	g.DELETE("/:key", h.delete)
}

func (h *Handler) public(c *gin.Context) {
	out, err := h.svc.Public()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, out)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) get(c *gin.Context) {
	opt, err := h.svc.Get(c.Param("key"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if opt == nil {
		response.NotFoundMsg(c, "setting not found")
		return
	}
	response.OK(c, opt)
}

type patchDTO struct {
	Value string `json:"value" binding:"required"`
}

func (h *Handler) patch(c *gin.Context) {
	var dto patchDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	opt, err := h.svc.Set(c.Param("key"), dto.Value)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, opt)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("key")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

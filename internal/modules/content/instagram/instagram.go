package instagram

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

// PostDTO carries the full editable row for a curated post.
type PostDTO struct {
	Image    string `json:"image"     binding:"required"`
	Likes    int    `json:"likes"     binding:"omitempty,min=0"`
	Comments int    `json:"comments"  binding:"omitempty,min=0"`
	PostLink string `json:"post_link"`
	PostDate string `json:"post_date" binding:"required"`
	Caption  string `json:"caption"`
}

func (dto *PostDTO) apply(m *models.InstagramPostModel) {
	m.Image = dto.Image
	m.Likes = dto.Likes
	m.Comments = dto.Comments
	m.PostLink = dto.PostLink
	m.PostDate = dto.PostDate
	m.Caption = dto.Caption
}

type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

func (s *Service) List(q pagination.Query) ([]models.InstagramPostModel, response.Pagination, error) {
	tx := s.db.Model(&models.InstagramPostModel{}).Order("post_date DESC, id DESC")
	var items []models.InstagramPostModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) ListAll() ([]models.InstagramPostModel, error) {
	var items []models.InstagramPostModel
	err := s.db.Order("post_date DESC, id DESC").Find(&items).Error
	return items, err
}

// ListPublic serves the home strip. The built-in set keeps the strip
// populated before any posts are curated.
func (s *Service) ListPublic() []models.InstagramPostModel {
	items, err := s.ListAll()
	if err != nil {
		s.logger.Warn("instagram posts unavailable, serving fallback", zap.Error(err))
		return fallbackPosts()
	}
	if len(items) == 0 {
		return fallbackPosts()
	}
	return items
}

func (s *Service) GetByID(id uint) (*models.InstagramPostModel, error) {
	var m models.InstagramPostModel
	if err := s.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Create(dto *PostDTO) (*models.InstagramPostModel, error) {
	var m models.InstagramPostModel
	dto.apply(&m)
	return &m, s.db.Create(&m).Error
}

func (s *Service) Replace(id uint, dto *PostDTO) (*models.InstagramPostModel, error) {
	m, err := s.GetByID(id)
	if err != nil || m == nil {
		return m, err
	}
	dto.apply(m)
	return m, s.db.Save(m).Error
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.InstagramPostModel{}, id).Error
}

type Handler struct {
	svc  *Service
	feed *FeedService
}

func NewHandler(svc *Service, feed *FeedService) *Handler {
	return &Handler{svc: svc, feed: feed}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	g := rg.Group("/instagram")
	g.GET("", h.list)
	g.GET("/all", h.listAll)
	g.GET("/feed", h.liveFeed)
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

func (h *Handler) liveFeed(c *gin.Context) {
	items, err := h.feed.Fetch(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrTokenNotConfigured) {
			response.InternalErrorMsg(c, "Instagram access token not configured")
			return
		}
		response.InternalErrorMsg(c, "Failed to fetch Instagram posts")
		return
	}
	response.OK(c, items)
}

func (h *Handler) get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "instagram post not found")
		return
	}
	m, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "instagram post not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) create(c *gin.Context) {
	var dto PostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalErrorMsg(c, "error adding instagram post")
		return
	}
	response.Created(c, m)
}

func (h *Handler) update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "instagram post not found")
		return
	}
	var dto PostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Replace(id, &dto)
	if err != nil {
		response.InternalErrorMsg(c, "error updating instagram post")
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "instagram post not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFoundMsg(c, "instagram post not found")
		return
	}
	if err := h.svc.Delete(id); err != nil {
		response.InternalErrorMsg(c, "error deleting instagram post")
		return
	}
	response.NoContent(c)
}

func parseID(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	return uint(v), err
}

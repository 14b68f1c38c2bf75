// Package gate implements the admin gate: a password-revealed editing mode.
//
// This is NOT an authentication or authorization boundary. The password is a
// verbatim string compare against a configured constant with no hashing, no
// lockout and no throttling, exactly as the site has always behaved. It only
// decides whether editor controls are visible; anything that must actually be
// protected does not belong behind it.
package gate

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"github.com/hjstudio/core/internal/middleware"
	"github.com/hjstudio/core/internal/pkg/gatesession"
	"github.com/hjstudio/core/internal/pkg/response"
	"gorm.io/gorm"
)

type OpenDTO struct {
	Password string `json:"password" binding:"required"`
}

type Service struct {
	db     *gorm.DB
	secret string
}

func NewService(db *gorm.DB, secret string) *Service {
	return &Service{db: db, secret: secret}
}

// Open compares the submitted password with the configured secret and, on a
// match, issues a gate session token.
func (s *Service) Open(password, ip, ua string) (string, bool, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.secret)) != 1 {
		return "", false, nil
	}
	token, _, err := gatesession.Issue(s.db, ip, ua, gatesession.DefaultTTL)
	if err != nil {
		return "", true, err
	}
	return token, true, nil
}

// Close revokes the session so the gate reads as closed immediately.
func (s *Service) Close(sessionID string) error {
	return gatesession.Revoke(s.db, sessionID)
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	g := rg.Group("/gate")
	g.POST("/open", h.open)
	g.GET("/state", middleware.OptionalGate(h.svc.db), h.state)
	g.POST("/close", gateMW, h.close)
}

// POST /gate/open
func (h *Handler) open(c *gin.Context) {
	var dto OpenDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, ok, err := h.svc.Open(dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !ok {
		response.Unauthorized(c, "incorrect password")
		return
	}
	response.OK(c, gin.H{"open": true, "token": token})
}

// GET /gate/state
func (h *Handler) state(c *gin.Context) {
	response.OK(c, gin.H{"open": middleware.IsGateOpen(c)})
}

// POST /gate/close
func (h *Handler) close(c *gin.Context) {
	if err := h.svc.Close(middleware.CurrentGateSID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"open": false})
}

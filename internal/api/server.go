package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shixin-guo/seo-agent/internal/audit"
	"github.com/shixin-guo/seo-agent/internal/model"
	"github.com/shixin-guo/seo-agent/internal/output"
)

// AuditRequest is the POST /api/audit-site payload.
type AuditRequest struct {
	Domain   string `json:"domain" binding:"required"`
	MaxPages int    `json:"max_pages"`
}

// AuditResponse is the full audit result with the rendered action plan
// appended.
type AuditResponse struct {
	*model.Result
	ActionPlan string `json:"action_plan"`
}

// Server exposes the auditor over HTTP.
type Server struct {
	cfg    audit.Config
	engine *gin.Engine
}

// New builds a Server with routes registered.
func New(cfg audit.Config) *Server {
	s := &Server{cfg: cfg, engine: gin.New()}
	s.engine.Use(gin.Logger(), gin.Recovery())
	s.engine.GET("/healthz", s.health)
	s.engine.POST("/api/audit-site", s.auditSite)
	return s
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error { return s.engine.Run(addr) }

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) auditSite(c *gin.Context) {
	var req AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if req.MaxPages <= 0 {
		req.MaxPages = audit.DefaultMaxPages
	}

	// Fresh auditor per request keeps request pacing independent.
	auditor := audit.New(s.cfg)
	res, err := auditor.Audit(c.Request.Context(), req.Domain, req.MaxPages)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuditResponse{
		Result:     res,
		ActionPlan: output.ActionPlan(res),
	})
}

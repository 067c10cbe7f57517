package engineController

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/service"
)

// Controller HTTP-доступ к расчётному движку
type Controller struct {
	Engine service.IEngineService
	Log    *slog.Logger
}

func New(engine service.IEngineService, log *slog.Logger) *Controller {
	return &Controller{
		Engine: engine,
		Log:    log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/v1")
	{
		v1.POST("/charts/vedic", c.handleChart)
		v1.POST("/panchang", c.handlePanchang)
		v1.POST("/dasha/vimshottari", c.handleDasha)
		v1.POST("/analysis/rules", c.handleRules)
		v1.POST("/match/ashtakoot", c.handleMatch)
	}
}

func (c *Controller) handleChart(ctx *gin.Context) {
	var birth domain.BirthDetails

	if err := ctx.ShouldBindJSON(&birth); err != nil {
		c.Log.Warn("failed to bind chart request",
			"error", err,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "code": "validation_error"})
		return
	}

	chart, err := c.Engine.ComputeChart(ctx.Request.Context(), birth)
	if err != nil {
		c.respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, chart)
}

func (c *Controller) handlePanchang(ctx *gin.Context) {
	var req domain.PanchangRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind panchang request",
			"error", err,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "code": "validation_error"})
		return
	}

	panchang, err := c.Engine.ComputePanchang(ctx.Request.Context(), req)
	if err != nil {
		c.respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, panchang)
}

func (c *Controller) handleDasha(ctx *gin.Context) {
	var birth domain.BirthDetails

	if err := ctx.ShouldBindJSON(&birth); err != nil {
		c.Log.Warn("failed to bind dasha request",
			"error", err,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "code": "validation_error"})
		return
	}

	timeline, err := c.Engine.ComputeDasha(ctx.Request.Context(), birth)
	if err != nil {
		c.respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, timeline)
}

func (c *Controller) handleRules(ctx *gin.Context) {
	var req RulesRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind rules request",
			"error", err,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "code": "validation_error"})
		return
	}

	asOf, err := req.asOfTime()
	if err != nil {
		c.respondDomainError(ctx, err)
		return
	}

	output, err := c.Engine.EvaluateRules(ctx.Request.Context(), req.Birth, asOf)
	if err != nil {
		c.respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

func (c *Controller) handleMatch(ctx *gin.Context) {
	var req MatchRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind match request",
			"error", err,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "code": "validation_error"})
		return
	}

	score, err := c.Engine.MatchCharts(ctx.Request.Context(), req.Bride, req.Groom)
	if err != nil {
		c.respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, score)
}

// respondDomainError отображает таксономию ошибок домена в HTTP-статусы;
// внутренние ошибки наружу не протекают
func (c *Controller) respondDomainError(ctx *gin.Context, err error) {
	status, code := errorStatus(err)

	if status >= http.StatusInternalServerError {
		c.Log.Error("engine request failed",
			"error", err,
			"path", ctx.FullPath(),
		)
		ctx.JSON(status, gin.H{"error": "internal server error", "code": code})
		return
	}

	c.Log.Info("engine request rejected",
		"error", err,
		"path", ctx.FullPath(),
		"code", code,
	)
	ctx.JSON(status, gin.H{"error": err.Error(), "code": code})
}

func errorStatus(err error) (int, string) {
	switch {
	case domain.IsValidationError(err):
		return http.StatusBadRequest, "validation_error"
	case domain.IsLocationUnresolvedError(err):
		return http.StatusUnprocessableEntity, "location_unresolved"
	case domain.IsUnsupportedConfigurationError(err):
		return http.StatusUnprocessableEntity, "unsupported_configuration"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

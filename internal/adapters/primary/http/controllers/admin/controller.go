package admin

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/repository"
	jyotishUsecase "github.com/admin/tg-bots/jyotish-engine/internal/usecases/jyotish"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

type Controller struct {
	Engine    *jyotishUsecase.Service
	ChartRepo repository.IChartRepo
	Log       *slog.Logger
}

func New(
	engine *jyotishUsecase.Service,
	chartRepo repository.IChartRepo,
	log *slog.Logger,
) *Controller {
	return &Controller{
		Engine:    engine,
		ChartRepo: chartRepo,
		Log:       log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	admin := router.Group("/admin")
	{
		admin.POST("/cache/warm", c.warmCache)
		admin.GET("/charts/recent", c.recentCharts)
	}
}

// WarmCacheResponse ответ на запрос прогрева кэша
type WarmCacheResponse struct {
	Success      bool     `json:"success"`
	Warmed       []string `json:"warmed,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// RecentChartsResponse последние записи лога рассчитанных карт
type RecentChartsResponse struct {
	Count  int                   `json:"count"`
	Charts []*domain.ChartRecord `json:"charts"`
}

// warmCache внепланово обновляет ключи текущих позиций и панчанги дня,
// не дожидаясь ночного джоба
func (c *Controller) warmCache(ctx *gin.Context) {
	if c.Engine.Cache == nil {
		ctx.JSON(http.StatusServiceUnavailable, WarmCacheResponse{
			Success:      false,
			ErrorMessage: "cache is not configured",
		})
		return
	}

	now := time.Now()
	warmed := make([]string, 0, 2)

	if err := c.Engine.UpdateCachedPositions(ctx.Request.Context(), now); err != nil {
		c.Log.Error("failed to warm positions cache", "error", err)
		ctx.JSON(http.StatusInternalServerError, WarmCacheResponse{
			Success:      false,
			Warmed:       warmed,
			ErrorMessage: "failed to warm positions cache",
		})
		return
	}
	warmed = append(warmed, "positions")

	if err := c.Engine.UpdateCachedPanchang(ctx.Request.Context(), now); err != nil {
		c.Log.Error("failed to warm panchang cache", "error", err)
		ctx.JSON(http.StatusInternalServerError, WarmCacheResponse{
			Success:      false,
			Warmed:       warmed,
			ErrorMessage: "failed to warm panchang cache",
		})
		return
	}
	warmed = append(warmed, "panchang")

	ctx.JSON(http.StatusOK, WarmCacheResponse{Success: true, Warmed: warmed})
}

// recentCharts отдаёт последние записи лога карт; limit ограничен сверху
func (c *Controller) recentCharts(ctx *gin.Context) {
	limit := defaultRecentLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.Log.Warn("invalid recent charts limit", "limit", raw)
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	records, err := c.ChartRepo.ListRecent(ctx.Request.Context(), limit)
	if err != nil {
		c.Log.Error("failed to list recent charts", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, RecentChartsResponse{
		Count:  len(records),
		Charts: records,
	})
}

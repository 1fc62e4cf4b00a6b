package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sankalp-academy/site-api/model"
	"github.com/sankalp-academy/site-api/utils/response"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// StatsHandler serves dashboard aggregates
type StatsHandler struct {
	db *gorm.DB
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

// Stats holds per-entity row counts
type Stats struct {
	Courses       int64 `json:"courses"`
	Branches      int64 `json:"branches"`
	GalleryImages int64 `json:"gallery_images"`
	Testimonials  int64 `json:"testimonials"`
}

// GetStats handles GET /api/v1/admin/stats. The four counts run
// concurrently and are never cached, so the response always reflects
// live table state.
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	var stats Stats

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		return h.db.WithContext(ctx).Model(&model.Course{}).Count(&stats.Courses).Error
	})
	g.Go(func() error {
		return h.db.WithContext(ctx).Model(&model.Branch{}).Count(&stats.Branches).Error
	})
	g.Go(func() error {
		return h.db.WithContext(ctx).Model(&model.GalleryImage{}).Count(&stats.GalleryImages).Error
	})
	g.Go(func() error {
		return h.db.WithContext(ctx).Model(&model.Testimonial{}).Count(&stats.Testimonials).Error
	})

	if err := g.Wait(); err != nil {
		return response.InternalServerError(c, "Failed to compute stats")
	}

	return response.Success(c, stats)
}

package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sankalp-academy/site-api/config"
	"github.com/sankalp-academy/site-api/database"
	"github.com/sankalp-academy/site-api/handlers"
	admin_handlers "github.com/sankalp-academy/site-api/handlers/admin"
	auth_handlers "github.com/sankalp-academy/site-api/handlers/auth"
	branch_handlers "github.com/sankalp-academy/site-api/handlers/branch"
	course_handlers "github.com/sankalp-academy/site-api/handlers/course"
	enrollment_handlers "github.com/sankalp-academy/site-api/handlers/enrollment"
	gallery_handlers "github.com/sankalp-academy/site-api/handlers/gallery"
	hero_handlers "github.com/sankalp-academy/site-api/handlers/hero"
	inquiry_handlers "github.com/sankalp-academy/site-api/handlers/inquiry"
	settings_handlers "github.com/sankalp-academy/site-api/handlers/settings"
	team_handlers "github.com/sankalp-academy/site-api/handlers/team"
	testimonial_handlers "github.com/sankalp-academy/site-api/handlers/testimonial"
	upload_handlers "github.com/sankalp-academy/site-api/handlers/upload"
	"github.com/sankalp-academy/site-api/services/storage"
	"github.com/sankalp-academy/site-api/utils/auth"
	"github.com/sankalp-academy/site-api/utils/cache"
	"github.com/sankalp-academy/site-api/utils/middleware"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	getEnv, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	jwtIssuer := getEnv.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "sankalp-academy-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: getEnv.JWT_SECRET,
		Expiry: auth.DefaultExpiry,
		Issuer: jwtIssuer,
	})

	db := store.GetDB()

	// Redis-backed brute force protection; skipped when Redis is absent
	var bruteForceProtection *middleware.BruteForceProtection
	if getEnv.REDIS_URL != "" {
		redisCache, err := cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection will be disabled.", err)
		} else {
			bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
		}
	}

	// Media storage; the upload route answers 500 when unconfigured
	var mediaStore *storage.MediaStore
	if getEnv.STORAGE_BUCKET != "" {
		mediaStore, err = storage.NewMediaStore(storage.Config{
			AccessKey: getEnv.STORAGE_ACCESS_KEY,
			SecretKey: getEnv.STORAGE_SECRET_KEY,
			Bucket:    getEnv.STORAGE_BUCKET,
			Region:    getEnv.STORAGE_REGION,
			Endpoint:  getEnv.STORAGE_ENDPOINT,
			CDNURL:    getEnv.STORAGE_CDN_URL,
		})
		if err != nil {
			log.Printf("Warning: Failed to initialize media storage: %v. Uploads will be unavailable.", err)
		}
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)
	courseHandler := course_handlers.NewCourseHandler(db)
	branchHandler := branch_handlers.NewBranchHandler(db)
	galleryHandler := gallery_handlers.NewGalleryHandler(db)
	testimonialHandler := testimonial_handlers.NewTestimonialHandler(db)
	heroHandler := hero_handlers.NewHeroHandler(db)
	teamHandler := team_handlers.NewTeamHandler(db)
	settingsHandler := settings_handlers.NewSettingsHandler(db)
	inquiryHandler := inquiry_handlers.NewInquiryHandler(db)
	uploadHandler := upload_handlers.NewUploadHandler(mediaStore)
	statsHandler := admin_handlers.NewStatsHandler(db)
	enrollmentHandler := enrollment_handlers.NewEnrollmentHandler(db)

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,
		RateLimitWindow:   1 * time.Minute,
	})

	// Health check endpoint (public)
	app.Get("/ping", handlers.HandleCheckHealth(store))

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)
	authGroup.Get("/me", authMiddleware.Required(), authHandler.Me)
	authGroup.Post("/register", authMiddleware.RequireAdmin(), authHandler.Register)

	// Courses
	courses := api.Group("/courses")
	courses.Get("/", courseHandler.ListCourses)
	courses.Get("/:id", courseHandler.GetCourse)
	courses.Post("/", authMiddleware.RequireAdmin(), courseHandler.CreateCourse)
	courses.Put("/:id", authMiddleware.RequireAdmin(), courseHandler.UpdateCourse)
	courses.Delete("/:id", authMiddleware.RequireAdmin(), courseHandler.DeleteCourse)

	// Branches
	branches := api.Group("/branches")
	branches.Get("/", branchHandler.ListBranches)
	branches.Get("/:id", branchHandler.GetBranch)
	branches.Post("/", authMiddleware.RequireAdmin(), branchHandler.CreateBranch)
	branches.Put("/:id", authMiddleware.RequireAdmin(), branchHandler.UpdateBranch)
	branches.Delete("/:id", authMiddleware.RequireAdmin(), branchHandler.DeleteBranch)
	branches.Post("/:id/courses/:courseId", authMiddleware.RequireAdmin(), branchHandler.LinkCourse)
	branches.Delete("/:id/courses/:courseId", authMiddleware.RequireAdmin(), branchHandler.UnlinkCourse)

	// Gallery
	gallery := api.Group("/gallery")
	gallery.Get("/", galleryHandler.ListImages)
	gallery.Get("/:id", galleryHandler.GetImage)
	gallery.Post("/", authMiddleware.RequireAdmin(), galleryHandler.CreateImage)
	gallery.Put("/:id", authMiddleware.RequireAdmin(), galleryHandler.UpdateImage)
	gallery.Delete("/:id", authMiddleware.RequireAdmin(), galleryHandler.DeleteImage)

	// Testimonials
	testimonials := api.Group("/testimonials")
	testimonials.Get("/", testimonialHandler.ListTestimonials)
	testimonials.Get("/:id", testimonialHandler.GetTestimonial)
	testimonials.Post("/", authMiddleware.RequireAdmin(), testimonialHandler.CreateTestimonial)
	testimonials.Put("/:id", authMiddleware.RequireAdmin(), testimonialHandler.UpdateTestimonial)
	testimonials.Delete("/:id", authMiddleware.RequireAdmin(), testimonialHandler.DeleteTestimonial)

	// Hero banners
	heroGroup := api.Group("/hero")
	heroGroup.Get("/", heroHandler.ListBanners)
	heroGroup.Get("/:id", heroHandler.GetBanner)
	heroGroup.Post("/", authMiddleware.RequireAdmin(), heroHandler.CreateBanner)
	heroGroup.Put("/:id", authMiddleware.RequireAdmin(), heroHandler.UpdateBanner)
	heroGroup.Delete("/:id", authMiddleware.RequireAdmin(), heroHandler.DeleteBanner)

	// Team members (writes are admin-gated like every other entity)
	teamGroup := api.Group("/team")
	teamGroup.Get("/", teamHandler.ListMembers)
	teamGroup.Get("/:id", teamHandler.GetMember)
	teamGroup.Post("/", authMiddleware.RequireAdmin(), teamHandler.CreateMember)
	teamGroup.Put("/:id", authMiddleware.RequireAdmin(), teamHandler.UpdateMember)
	teamGroup.Delete("/:id", authMiddleware.RequireAdmin(), teamHandler.DeleteMember)

	// Site settings
	api.Get("/settings", settingsHandler.GetSettings)
	api.Put("/settings", authMiddleware.RequireAdmin(), settingsHandler.UpdateSettings)

	// Contact form; the inbox is admin-only
	api.Post("/contact", inquiryHandler.Submit)
	api.Get("/contact", authMiddleware.RequireAdmin(), inquiryHandler.List)
	api.Put("/contact/:id/status", authMiddleware.RequireAdmin(), inquiryHandler.UpdateStatus)

	// Media upload
	api.Post("/upload", authMiddleware.RequireAdmin(), uploadHandler.Upload)

	// Admin dashboard
	admin := api.Group("/admin", authMiddleware.RequireAdmin())
	admin.Get("/stats", statsHandler.GetStats)

	// Enrollments
	enrollments := api.Group("/enrollments", authMiddleware.RequireAdmin())
	enrollments.Get("/", enrollmentHandler.List)
	enrollments.Post("/", enrollmentHandler.Create)
	enrollments.Delete("/:id", enrollmentHandler.Delete)
}

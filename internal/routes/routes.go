package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/tutor-contacts/internal/audit"
	"github.com/BruksfildServices01/tutor-contacts/internal/config"
	"github.com/BruksfildServices01/tutor-contacts/internal/handlers"
	"github.com/BruksfildServices01/tutor-contacts/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/tutor-contacts/internal/infra/repository"
	"github.com/BruksfildServices01/tutor-contacts/internal/infra/storage"
	"github.com/BruksfildServices01/tutor-contacts/internal/logger"
	"github.com/BruksfildServices01/tutor-contacts/internal/middleware"
	ucContact "github.com/BruksfildServices01/tutor-contacts/internal/usecase/contact"
)

// Infra lets callers (tests, main) override the backing services. Nil
// fields are built from cfg.
type Infra struct {
	Cache   ucContact.ListingCache
	Storage ucContact.ObjectStorage
}

// RegisterRoutes wires every handler onto r and returns a shutdown func
// that drains the audit queue.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *logger.Logger,
	infra Infra,
) (shutdown func()) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	contactRepo := infraRepo.NewContactGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	listingCache := infra.Cache
	if listingCache == nil {
		listingCache = newListingCache(cfg, log)
	}

	objectStorage := infra.Storage
	if objectStorage == nil {
		objectStorage = newObjectStorage(cfg, log)
	}

	deps := ucContact.Deps{
		Repo:  contactRepo,
		Audit: auditDispatcher,
		Cache: listingCache,
		Log:   log,
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	contactHandler := handlers.NewContactHandler(
		ucContact.NewCreateContact(deps),
		ucContact.NewGetContact(contactRepo),
		ucContact.NewListContacts(contactRepo),
		ucContact.NewEditContact(deps),
		ucContact.NewDeleteContact(deps),
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucContact.NewAddAppointment(deps),
		ucContact.NewReplaceAppointment(deps),
		ucContact.NewRemoveAppointment(deps),
		ucContact.NewViewAppointments(deps),
	)

	avatarHandler := handlers.NewAvatarHandler(
		ucContact.NewUploadAvatar(deps, objectStorage, cfg.AvatarSize),
	)
	exportHandler := handlers.NewExportHandler(
		ucContact.NewExportContacts(deps, objectStorage),
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/contacts", contactHandler.List)
			secured.POST("/contacts", contactHandler.Create)
			secured.GET("/contacts/:id", contactHandler.Get)
			secured.PATCH("/contacts/:id", contactHandler.Edit)
			secured.DELETE("/contacts/:id", contactHandler.Delete)

			secured.POST("/contacts/:id/appointments", appointmentHandler.Add)
			secured.PUT("/contacts/:id/appointments", appointmentHandler.Replace)
			secured.DELETE("/contacts/:id/appointments", appointmentHandler.Remove)
			secured.GET("/appointments", appointmentHandler.View)

			secured.PUT("/contacts/:id/avatar", avatarHandler.Upload)
			secured.POST("/exports", exportHandler.Create)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return auditDispatcher.Close
}

func newListingCache(cfg *config.Config, log *logger.Logger) ucContact.ListingCache {
	if !cfg.RedisEnabled() {
		log.Info("redis not configured, listing cache disabled")
		return ucContact.NoopCache{}
	}

	client := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, listing cache disabled", "addr", cfg.RedisAddr, "error", err)
		_ = client.Close()
		return ucContact.NoopCache{}
	}

	return cache.NewListingRedis(client, cfg.ListingTTL)
}

func newObjectStorage(cfg *config.Config, log *logger.Logger) ucContact.ObjectStorage {
	if !cfg.StorageEnabled() {
		log.Warn("s3 not configured, avatars and exports are kept in memory")
		return storage.NewMemory()
	}
	return storage.NewS3Storage(storage.S3Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
}

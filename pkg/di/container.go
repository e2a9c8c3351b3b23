package di

import (
	"gorm.io/gorm"

	"geoshare/application/serviceimpl"
	"geoshare/domain/repositories"
	"geoshare/domain/services"
	"geoshare/infrastructure/exif"
	"geoshare/infrastructure/postgres"
	"geoshare/infrastructure/redis"
	"geoshare/infrastructure/storage"
	"geoshare/interfaces/api/handlers"
	"geoshare/pkg/config"
	"geoshare/pkg/logger"
	"geoshare/pkg/utils"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB           *gorm.DB
	RedisClient  *redis.Client
	BunnyStorage *storage.BunnyStorage

	// Repositories
	UserRepository      repositories.UserRepository
	PhotoRepository     repositories.PhotoRepository
	AlbumRepository     repositories.AlbumRepository
	ShareLinkRepository repositories.ShareLinkRepository

	// Services
	AuthService      services.AuthService
	PhotoService     services.PhotoService
	AlbumService     services.AlbumService
	ShareLinkService services.ShareLinkService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Startup("config_loaded", "Configuration loaded", nil)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Startup("db_connected", "Database connected", nil)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Startup("db_migrated", "Database migrations complete", nil)

	// Redis is optional: the share cache degrades to direct reads.
	if c.Config.Redis.Enabled {
		redisClient, err := redis.NewClient(c.Config.Redis)
		if err != nil {
			logger.StartupWarn("redis_unavailable", "Redis unavailable, share cache disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			c.RedisClient = redisClient
		}
	}

	c.BunnyStorage = storage.NewBunnyStorage(c.Config.Bunny)
	logger.Startup("storage_ready", "File storage client ready", map[string]interface{}{
		"zone": c.Config.Bunny.StorageZone,
	})

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.PhotoRepository = postgres.NewPhotoRepository(c.DB)
	c.AlbumRepository = postgres.NewAlbumRepository(c.DB)
	c.ShareLinkRepository = postgres.NewShareLinkRepository(c.DB)
}

func (c *Container) initServices() {
	hasher := utils.NewBcryptHasher()
	tokens := utils.NewJWTManager(c.Config.JWT.Secret)

	c.AuthService = serviceimpl.NewAuthService(c.UserRepository, hasher, tokens, nil)
	c.PhotoService = serviceimpl.NewPhotoService(c.PhotoRepository, c.AlbumRepository, c.BunnyStorage, exif.NewExtractor(), nil)
	c.AlbumService = serviceimpl.NewAlbumService(c.AlbumRepository, c.PhotoRepository, nil)
	c.ShareLinkService = serviceimpl.NewShareLinkService(
		c.ShareLinkRepository,
		c.PhotoRepository,
		c.AlbumRepository,
		hasher,
		c.ShareCache(),
		nil,
	)
}

// ShareCache returns the cache behind its interface. A typed nil pointer
// must never leak into the interface, hence the explicit check.
func (c *Container) ShareCache() services.Cache {
	if c.RedisClient == nil {
		return nil
	}
	return c.RedisClient
}

// GetHandlerServices bundles the services the HTTP handlers need.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService:      c.AuthService,
		PhotoService:     c.PhotoService,
		AlbumService:     c.AlbumService,
		ShareLinkService: c.ShareLinkService,
	}
}

// GetHandlerRepositories bundles the repositories some handlers read directly.
func (c *Container) GetHandlerRepositories() *handlers.Repositories {
	return &handlers.Repositories{
		PhotoRepository: c.PhotoRepository,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			return err
		}
	}
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

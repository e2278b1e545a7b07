package bootstrap

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"richtext-render-be/internal/config"
	"richtext-render-be/internal/controller"
	"richtext-render-be/internal/pkg/logger"
	"richtext-render-be/internal/pkg/serverutils"
	"richtext-render-be/internal/repository/contract"
	"richtext-render-be/internal/repository/memory"
	redisRepo "richtext-render-be/internal/repository/redis"
	"richtext-render-be/internal/service"
	"richtext-render-be/pkg/events"

	pktNats "richtext-render-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	RenderController controller.IRenderController
	HealthController controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	auditLogger := logger.NewIsolatedLogger(filepath.Join(filepath.Dir(cfg.App.LogFilePath), "render_events.log"))

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	c := &Container{Logger: sysLogger}
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure. Both are optional.
	var eventPublisher events.Publisher
	var natsConnected func() bool
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
			natsConnected = natsPub.IsConnected
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	// 4. Services
	ttl := time.Duration(cfg.Render.CacheTTLSeconds) * time.Second
	caches := []contract.RenderCache{memory.NewRenderCache(ttl)}
	if rdb != nil {
		caches = append(caches, redisRepo.NewRenderCache(rdb, ttl))
	}

	publisherService := service.NewPublisherService(cfg.Render.EventTopic, pubSub)
	renderService := service.NewRenderService(caches, publisherService, sysLogger, cfg.Render.MediaBaseURL)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Render.EventTopic, eventPublisher, auditLogger)

	// 5. Controllers
	c.RenderController = controller.NewRenderController(renderService, serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret))
	c.HealthController = controller.NewHealthController(rdb, natsConnected)

	return c
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

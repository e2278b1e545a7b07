package controller

import (
	"richtext-render-be/internal/dto"
	"richtext-render-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	rdb           *redis.Client
	natsConnected func() bool
}

// NewHealthController reports dependency state. Either dependency may be nil
// when it is disabled.
func NewHealthController(rdb *redis.Client, natsConnected func() bool) IHealthController {
	return &healthController{rdb: rdb, natsConnected: natsConnected}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	res := dto.HealthResponse{Status: "ok", Redis: "disabled", Nats: "disabled"}

	if c.rdb != nil {
		res.Redis = "up"
		if err := c.rdb.Ping(ctx.UserContext()).Err(); err != nil {
			res.Redis = "down"
		}
	}
	if c.natsConnected != nil {
		res.Nats = "up"
		if !c.natsConnected() {
			res.Nats = "down"
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Service healthy", res))
}

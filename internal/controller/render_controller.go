package controller

import (
	"errors"

	"richtext-render-be/internal/dto"
	"richtext-render-be/internal/pkg/serverutils"
	"richtext-render-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRenderController interface {
	RegisterRoutes(r fiber.Router)
	RenderTree(ctx *fiber.Ctx) error
	RenderHTML(ctx *fiber.Ctx) error
	RenderText(ctx *fiber.Ctx) error
}

type renderController struct {
	renderService service.IRenderService
	guard         fiber.Handler
}

// NewRenderController wires the render routes. guard runs before every
// route; pass nil for public routes.
func NewRenderController(renderService service.IRenderService, guard fiber.Handler) IRenderController {
	return &renderController{
		renderService: renderService,
		guard:         guard,
	}
}

func (c *renderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/render/v1")
	if c.guard != nil {
		h.Use(c.guard)
	}
	h.Post("", c.RenderTree)
	h.Post("html", c.RenderHTML)
	h.Post("text", c.RenderText)
}

func (c *renderController) RenderTree(ctx *fiber.Ctx) error {
	req, err := parseRenderRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.renderService.RenderTree(ctx.UserContext(), req)
	if err != nil {
		return mapRenderError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success render document", res))
}

func (c *renderController) RenderHTML(ctx *fiber.Ctx) error {
	req, err := parseRenderRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.renderService.RenderHTML(ctx.UserContext(), req)
	if err != nil {
		return mapRenderError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success render document html", res))
}

func (c *renderController) RenderText(ctx *fiber.Ctx) error {
	req, err := parseRenderRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.renderService.RenderText(ctx.UserContext(), req)
	if err != nil {
		return mapRenderError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success render document text", res))
}

func parseRenderRequest(ctx *fiber.Ctx) (*dto.RenderRequest, error) {
	var req dto.RenderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	return &req, nil
}

func mapRenderError(err error) error {
	if errors.Is(err, service.ErrInvalidDocument) {
		return serverutils.NewAppError(fiber.StatusUnprocessableEntity, "Document is not a lexical JSON object", err)
	}
	return err
}

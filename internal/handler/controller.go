package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"seogen-go/pkg/catalog"
	"seogen-go/pkg/deploy"
	"seogen-go/pkg/generator"
	"seogen-go/pkg/llm"
	"seogen-go/pkg/logger"
	"seogen-go/pkg/storage"
)

// Controller wires the generation pipeline into the HTTP surface.
type Controller struct {
	store     *storage.SiteStore
	llmClient llm.CompletionClient
	deployer  *deploy.Client
	batchSize int
	metrics   *generator.RunMetrics
	log       *logger.Logger
}

// NewController creates the HTTP controller. The completion client and
// deploy client may be nil; runs then stay on the template tier and
// skip publishing.
func NewController(store *storage.SiteStore, llmClient llm.CompletionClient, deployer *deploy.Client, batchSize int) *Controller {
	return &Controller{
		store:     store,
		llmClient: llmClient,
		deployer:  deployer,
		batchSize: batchSize,
		metrics:   generator.NewRunMetrics(),
		log:       logger.Component("http_controller"),
	}
}

// Register mounts the API routes on the fiber app.
func (c *Controller) Register(app *fiber.App) {
	app.Get("/healthz", c.handleHealth)

	api := app.Group("/api/v1")
	api.Post("/businesses", c.handleSaveBusiness)
	api.Post("/generate", c.handleGenerate)
	api.Get("/status", c.handleStatus)
}

type generateRequest struct {
	BusinessID   string   `json:"business_id"`
	ServiceIDs   []string `json:"service_ids"`
	ServiceAreas []string `json:"service_areas"`
}

func (c *Controller) handleGenerate(ctx *fiber.Ctx) error {
	var req generateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.BusinessID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "business_id is required"})
	}

	siteGen, err := generator.NewSiteGeneratorBuilder().
		WithBusinessID(req.BusinessID).
		WithServiceIDs(req.ServiceIDs).
		WithServiceAreas(req.ServiceAreas).
		WithStore(c.store).
		WithCompletionClient(c.llmClient).
		WithDeployClient(c.deployer).
		WithBatchSize(c.batchSize).
		WithMetrics(c.metrics).
		Build()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := siteGen.GenerateFullSite(ctx.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrBusinessNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		c.log.WithError(err).WithField("business_id", req.BusinessID).Error("Generation run failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(result)
}

func (c *Controller) handleSaveBusiness(ctx *fiber.Ctx) error {
	var profile catalog.BusinessProfile
	if err := ctx.BodyParser(&profile); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if profile.ID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	if err := c.store.SaveBusiness(ctx.Context(), &profile); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": profile.ID})
}

func (c *Controller) handleStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"metrics":   c.metrics.Snapshot(),
	})
}

func (c *Controller) handleHealth(ctx *fiber.Ctx) error {
	return ctx.SendString("ok")
}

package controller

import (
	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/pkg/serverutils"
	"careerbridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IApplicationController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	ListForRecruiter(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type applicationController struct {
	applicationService service.IApplicationService
}

func NewApplicationController(applicationService service.IApplicationService) IApplicationController {
	return &applicationController{
		applicationService: applicationService,
	}
}

func (c *applicationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/application/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", serverutils.RequireRole(string(entity.UserRoleJobseeker)), c.Submit)
	h.Get("mine", c.ListMine)
	h.Get("inbox", serverutils.RequireRole(string(entity.UserRoleRecruiter)), c.ListForRecruiter)
	h.Get(":id", c.Show)
	h.Patch(":id/status", serverutils.RequireRole(string(entity.UserRoleRecruiter)), c.UpdateStatus)
}

func (c *applicationController) Submit(ctx *fiber.Ctx) error {
	candidateId := currentUserId(ctx)

	var req dto.SubmitApplicationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.applicationService.Submit(ctx.Context(), candidateId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Application submitted", res))
}

func (c *applicationController) ListMine(ctx *fiber.Ctx) error {
	candidateId := currentUserId(ctx)

	res, err := c.applicationService.ListByCandidate(ctx.Context(), candidateId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("My applications", res))
}

func (c *applicationController) ListForRecruiter(ctx *fiber.Ctx) error {
	recruiterId := currentUserId(ctx)

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.applicationService.ListForRecruiter(ctx.Context(), recruiterId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Incoming applications", res))
}

func (c *applicationController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid application ID"))
	}

	res, err := c.applicationService.GetById(ctx.Context(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Application details", res))
}

func (c *applicationController) UpdateStatus(ctx *fiber.Ctx) error {
	recruiterId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid application ID"))
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.applicationService.UpdateStatus(ctx.Context(), recruiterId, id, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Application status updated", nil))
}

package controller

import (
	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/pkg/serverutils"
	"careerbridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IJobController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
}

type jobController struct {
	jobService service.IJobService
}

func NewJobController(jobService service.IJobService) IJobController {
	return &jobController{
		jobService: jobService,
	}
}

func (c *jobController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/job/v1")
	h.Get("", c.List)
	h.Get(":id", c.Show)

	protected := h.Group("")
	protected.Use(serverutils.JwtMiddleware)
	protected.Use(serverutils.RequireRole(string(entity.UserRoleRecruiter)))
	protected.Get("mine/list", c.ListMine)
	protected.Post("", c.Create)
	protected.Put(":id", c.Update)
	protected.Delete(":id", c.Delete)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *jobController) Create(ctx *fiber.Ctx) error {
	recruiterId := currentUserId(ctx)

	var req dto.CreateJobRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.jobService.Create(ctx.Context(), recruiterId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Job created", res))
}

func (c *jobController) Update(ctx *fiber.Ctx) error {
	recruiterId := currentUserId(ctx)

	jobId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid job ID"))
	}

	var req dto.UpdateJobRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.jobService.Update(ctx.Context(), recruiterId, jobId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Job updated", res))
}

func (c *jobController) Delete(ctx *fiber.Ctx) error {
	recruiterId := currentUserId(ctx)

	jobId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid job ID"))
	}

	if err := c.jobService.Delete(ctx.Context(), recruiterId, jobId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Job deleted", nil))
}

func (c *jobController) Show(ctx *fiber.Ctx) error {
	jobId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid job ID"))
	}

	res, err := c.jobService.GetById(ctx.Context(), jobId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Job details", res))
}

func (c *jobController) List(ctx *fiber.Ctx) error {
	filter := service.JobListFilter{
		Query:    ctx.Query("q"),
		Location: ctx.Query("location"),
		Type:     ctx.Query("type"),
		Limit:    ctx.QueryInt("limit", 20),
		Offset:   ctx.QueryInt("offset", 0),
	}

	res, err := c.jobService.List(ctx.Context(), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Open jobs", res))
}

func (c *jobController) ListMine(ctx *fiber.Ctx) error {
	recruiterId := currentUserId(ctx)

	res, err := c.jobService.ListByRecruiter(ctx.Context(), recruiterId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Recruiter jobs", res))
}

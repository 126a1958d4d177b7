package controller

import (
	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/pkg/serverutils"
	"careerbridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Dashboard(ctx *fiber.Ctx) error
	ListUsers(ctx *fiber.Ctx) error
	ShowUser(ctx *fiber.Ctx) error
	UpdateUserStatus(ctx *fiber.Ctx) error
	CloseJob(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole(string(entity.UserRoleAdmin)))

	h.Get("dashboard", c.Dashboard)
	h.Get("users", c.ListUsers)
	h.Get("users/:id", c.ShowUser)
	h.Patch("users/:id/status", c.UpdateUserStatus)
	h.Post("jobs/:id/close", c.CloseJob)
}

func (c *adminController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetDashboard(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", res))
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	var req dto.AdminListUsersRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.ListUsers(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Users retrieved", res))
}

func (c *adminController) ShowUser(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user ID"))
	}

	res, err := c.adminService.GetUser(ctx.Context(), userId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("User retrieved", res))
}

func (c *adminController) UpdateUserStatus(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user ID"))
	}

	var req dto.AdminUpdateUserStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.UpdateUserStatus(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("User status updated", nil))
}

func (c *adminController) CloseJob(ctx *fiber.Ctx) error {
	jobId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid job ID"))
	}

	var req dto.AdminModerateJobRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.CloseJob(ctx.Context(), jobId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Job closed", nil))
}

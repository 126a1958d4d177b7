package controller

import (
	"errors"
	"os"

	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/pkg/logger"
	"careerbridge-be/internal/pkg/serverutils"
	"careerbridge-be/internal/service"
	internalWS "careerbridge-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	Schedule(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	StartSession(ctx *fiber.Ctx) error
	AdvanceSession(ctx *fiber.Ctx) error
	EndSession(ctx *fiber.Ctx) error
	ServeStream(ctx *fiber.Ctx) error
}

type interviewController struct {
	interviewService service.IInterviewService
	hub              *internalWS.Hub
	streamHandler    *internalWS.StreamHandler
	logger           logger.ILogger
}

func NewInterviewController(
	interviewService service.IInterviewService,
	hub *internalWS.Hub,
	streamHandler *internalWS.StreamHandler,
	log logger.ILogger,
) IInterviewController {
	return &interviewController{
		interviewService: interviewService,
		hub:              hub,
		streamHandler:    streamHandler,
		logger:           log,
	}
}

func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interview/v1")

	// Websocket handshake carries its own token, the JWT middleware would
	// reject the upgrade request.
	h.Get(":id/stream", c.ServeStream)

	h.Use(serverutils.JwtMiddleware)
	h.Post("schedule", serverutils.RequireRole(string(entity.UserRoleRecruiter)), c.Schedule)
	h.Get("mine", c.ListMine)
	h.Get(":id", c.Show)
	h.Post(":id/session/start", serverutils.RequireRole(string(entity.UserRoleJobseeker)), c.StartSession)
	h.Post(":id/session/advance", serverutils.RequireRole(string(entity.UserRoleJobseeker)), c.AdvanceSession)
	h.Post(":id/session/end", serverutils.RequireRole(string(entity.UserRoleJobseeker)), c.EndSession)
}

func (c *interviewController) Schedule(ctx *fiber.Ctx) error {
	recruiterId := currentUserId(ctx)

	var req dto.ScheduleInterviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interviewService.Schedule(ctx.Context(), recruiterId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Interview scheduled", res))
}

func (c *interviewController) ListMine(ctx *fiber.Ctx) error {
	candidateId := currentUserId(ctx)

	res, err := c.interviewService.ListByCandidate(ctx.Context(), candidateId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("My interviews", res))
}

func (c *interviewController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid interview ID"))
	}

	res, err := c.interviewService.GetById(ctx.Context(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Interview details", res))
}

// sessionErrorStatus separates lookup and ownership failures from genuine
// session-state conflicts, which stay 409.
func sessionErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInterviewNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrInterviewForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusConflict
	}
}

func (c *interviewController) StartSession(ctx *fiber.Ctx) error {
	candidateId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid interview ID"))
	}

	res, err := c.interviewService.StartSession(ctx.Context(), id, candidateId)
	if err != nil {
		return fiber.NewError(sessionErrorStatus(err), err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Session started", res))
}

func (c *interviewController) AdvanceSession(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid interview ID"))
	}

	var req dto.AdvanceSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interviewService.AdvanceSession(ctx.Context(), id, &req)
	if err != nil {
		return fiber.NewError(sessionErrorStatus(err), err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Session advanced", res))
}

func (c *interviewController) EndSession(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid interview ID"))
	}

	res, err := c.interviewService.EndSession(ctx.Context(), id)
	if err != nil {
		return fiber.NewError(sessionErrorStatus(err), err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Session ended", res))
}

// ServeStream upgrades the connection for the live interview stream. The
// browser cannot set an Authorization header on a websocket handshake, so
// the token is accepted from the query string as well.
func (c *interviewController) ServeStream(ctx *fiber.Ctx) error {
	interviewID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid interview ID"})
	}

	tokenStr := ctx.Query("token")
	if tokenStr == "" {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.logger.Warn("InterviewController", "Invalid token in stream handshake", map[string]interface{}{"error": err})
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user ID format in token"})
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			c.logger.Info("InterviewController", "Stream session started", map[string]interface{}{
				"interview_id": interviewID,
				"user_id":      userID,
			})
			c.streamHandler.ServeStream(c.hub, conn, interviewID, userID)
			c.logger.Info("InterviewController", "Stream session ended", map[string]interface{}{
				"interview_id": interviewID,
			})
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}

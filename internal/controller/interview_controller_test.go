package controller

import (
	"errors"
	"fmt"
	"testing"

	"careerbridge-be/internal/service"
	"careerbridge-be/pkg/interview/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSessionErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrInterviewNotFound, fiber.StatusNotFound},
		{fmt.Errorf("start session: %w", service.ErrInterviewNotFound), fiber.StatusNotFound},
		{service.ErrInterviewForbidden, fiber.StatusForbidden},
		{session.ErrNoActiveSession, fiber.StatusConflict},
		{session.ErrAlreadyEnded, fiber.StatusConflict},
		{session.ErrSessionBusy, fiber.StatusConflict},
		{errors.New("session already started"), fiber.StatusConflict},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, sessionErrorStatus(tc.err), "error %q", tc.err)
	}
}

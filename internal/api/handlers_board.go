package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetBoard returns the full daily state for one date: the lazily created
// daily log, ordered buckets with their tasks, assignments with assignee and
// progress, the user roster and yesterday's missed task ids.
func (handler *Handler) GetBoard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	state, err := handler.boardService.GetDailyState(c.Params("date"), user.Role)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(state)
}

// AssignBucket sets or clears the assignee for one bucket on one date. An
// empty user_id unassigns.
func (handler *Handler) AssignBucket(c *fiber.Ctx) error {
	bucketID, err := parseIDParam(c, "bucketID")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	input := assigneeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	var userID *uint
	if trimmed := strings.TrimSpace(input.UserID); trimmed != "" {
		parsed, err := strconv.ParseUint(trimmed, 10, 64)
		if err != nil || parsed == 0 {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
		value := uint(parsed)
		userID = &value
	}

	if err := handler.assignmentService.AssignBucket(bucketID, userID, c.Params("date")); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ToggleTask(c *fiber.Ctx) error {
	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	taskID, err := parseIDParam(c, "taskID")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	payload := togglePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.assignmentService.ToggleTask(assignmentID, taskID, payload.Done, payload.SupporterID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/govkit/governance-service/internal/auth"
	"github.com/govkit/governance-service/internal/events"
)

// actorFrom attributes an action to the session loaded by the auth middleware.
func actorFrom(c *fiber.Ctx) events.Actor {
	sess, _ := auth.SessionFromContext(c)
	return events.Actor{UserID: sess.ID, UserName: sess.Name}
}

// newID mints a record id the way the original client did: current time in
// milliseconds. Uniqueness is by convention, not enforced.
func newID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.PassphraseRequired)

	auth := api.Group("/auth")
	auth.Post("/passphrase", handler.PassphraseLogin)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	board := api.Group("/board", handler.AuthRequired)
	board.Get("/:date", handler.GetBoard)
	board.Put("/:date/buckets/:bucketID/assignee", handler.AssignBucket)

	assignments := api.Group("/assignments", handler.AuthRequired)
	assignments.Put("/:id/tasks/:taskID", handler.ToggleTask)

	buckets := api.Group("/buckets", handler.AuthRequired)
	buckets.Patch("/:id", handler.UpdateBucket)
	buckets.Post("/:id/tasks", handler.CreateTask)

	tasks := api.Group("/tasks", handler.AuthRequired)
	tasks.Patch("/:id", handler.UpdateTask)
	tasks.Delete("/:id", handler.DeleteTask)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("", handler.ListUsers)
	users.Post("", handler.CreateUser)
	users.Patch("/:id", handler.AdminOnly, handler.UpdateUser)
	users.Delete("/:id", handler.AdminOnly, handler.DeleteUser)
}

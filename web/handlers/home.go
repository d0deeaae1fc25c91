package handlers

import "github.com/gofiber/fiber/v2"

// HomePage renders the landing page shown after login.
func HomePage(c *fiber.Ctx) error {
	return c.Render("plantilla", fiber.Map{
		"isHomePage": true,
		"user":       currentUser(c),
	})
}

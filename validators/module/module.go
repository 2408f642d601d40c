package moduleValidator

import (
	"strconv"
	"strings"

	"lmsweb/listing"
	"lmsweb/middleware"

	"github.com/gofiber/fiber/v2"
)

var difficulties = map[string]bool{
	"Beginner":     true,
	"Intermediate": true,
	"Advanced":     true,
}

// CreateModuleRequest is the validated module-creation body.
type CreateModuleRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Difficulty  string   `json:"difficulty"`
}

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateModuleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		} else if len(strings.TrimSpace(reqData.Description)) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		// Validate Price
		if reqData.Price == nil {
			errors["price"] = "Price is required!"
		} else if *reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		// Validate Difficulty
		if reqData.Difficulty == "" {
			reqData.Difficulty = "Beginner"
		} else if !difficulties[reqData.Difficulty] {
			errors["difficulty"] = "Difficulty must be Beginner, Intermediate or Advanced!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// CatalogRequest is the validated catalog list query. PrevSearch carries the
// search text the page was rendered with, so the page-reset rule can tell a
// changed filter from a page turn.
type CatalogRequest struct {
	Search     string
	Page       int
	Sort       listing.Sort
	PrevSearch *string
}

func CatalogQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &CatalogRequest{
			Search: strings.TrimSpace(c.Query("search")),
			Page:   1,
			Sort:   listing.SortAsc,
		}

		errors := make(map[string]string)

		if raw := c.Query("page"); raw != "" {
			page, err := strconv.Atoi(raw)
			if err != nil || page < 1 {
				errors["page"] = "Page must be greater than 0!"
			} else {
				reqData.Page = page
			}
		}

		if raw := c.Query("sortOrder"); raw != "" {
			if raw != string(listing.SortAsc) && raw != string(listing.SortDesc) {
				errors["sortOrder"] = "Sort order must be asc or desc!"
			} else {
				reqData.Sort = listing.Sort(raw)
			}
		}

		if c.Context().QueryArgs().Has("prevSearch") {
			prev := strings.TrimSpace(c.Query("prevSearch"))
			reqData.PrevSearch = &prev
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCatalog", reqData)
		return c.Next()
	}
}

// ModuleID validates the :id route parameter.
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID := strings.TrimSpace(c.Params("id"))
		if moduleID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID is required!", nil)
		}
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// ContentID validates the :contentId route parameter.
func ContentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentID := strings.TrimSpace(c.Params("contentId"))
		if contentID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content ID is required!", nil)
		}
		c.Locals("contentID", contentID)
		return c.Next()
	}
}

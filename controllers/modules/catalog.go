package moduleController

import (
	"lmsweb/access"
	"lmsweb/config"
	"lmsweb/gateway"
	"lmsweb/listing"
	"lmsweb/logger"
	"lmsweb/middleware"
	"lmsweb/models"
	moduleValidator "lmsweb/validators/module"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Controller serves the module views: catalog, detail, create, delete and
// the content viewer.
type Controller struct {
	gw *gateway.Client
}

func New(gw *gateway.Client) *Controller {
	return &Controller{gw: gw}
}

// CatalogItem is one catalog card. CanManage marks modules the current
// instructor owns and may delete.
type CatalogItem struct {
	models.Module
	CanManage bool `json:"canManage"`
}

// Catalog renders one page of the module catalog. The listing rules apply
// before the fetch (a changed search resets the page, a sort change keeps
// it) and the server's page count clamps it after.
func (ctrl *Controller) Catalog(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedCatalog").(*moduleValidator.CatalogRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	q := listing.New().WithSort(reqData.Sort).WithPage(reqData.Page)
	if reqData.PrevSearch != nil {
		// Seed with the search the page was rendered under, so WithSearch
		// can tell a changed filter from a page turn.
		q.Search = *reqData.PrevSearch
	} else {
		q.Search = reqData.Search
	}
	q = q.WithSearch(reqData.Search)

	limit := config.AppConfig.PageLimit
	modules, pagination, err := ctrl.gw.ListModules(c.UserContext(), session.Token, q, limit)
	if err != nil {
		logger.Log().Warn("catalog fetch failed", zap.Error(err))
		return middleware.UpstreamErrorResponse(c, err)
	}

	// The server's page count is the truth; if our page ran past it, fetch
	// the last real page instead of showing an empty one.
	if clamped := q.ClampTo(pagination.Pages); clamped.Page != q.Page {
		q = clamped
		modules, pagination, err = ctrl.gw.ListModules(c.UserContext(), session.Token, q, limit)
		if err != nil {
			logger.Log().Warn("catalog refetch failed", zap.Error(err))
			return middleware.UpstreamErrorResponse(c, err)
		}
	}

	items := make([]CatalogItem, 0, len(modules))
	for _, module := range modules {
		items = append(items, CatalogItem{
			Module:    module,
			CanManage: access.IsOwner(session.User, module),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules":    items,
		"pagination": listing.NewPager(pagination.Page, pagination.Pages),
		"query": fiber.Map{
			"search":    q.Search,
			"page":      q.Page,
			"sortOrder": q.Sort,
		},
	})
}

// MyModules lists the modules owned by the authenticated instructor.
func (ctrl *Controller) MyModules(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	modules, err := ctrl.gw.MyModules(c.UserContext(), session.Token)
	if err != nil {
		logger.Log().Warn("my-modules fetch failed", zap.Error(err))
		return middleware.UpstreamErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": modules,
	})
}

// Create forwards a validated module-creation form.
func (ctrl *Controller) Create(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedModule").(*moduleValidator.CreateModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err := ctrl.gw.CreateModule(c.UserContext(), session.Token, gateway.ModuleFields{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       *reqData.Price,
		Category:    reqData.Category,
		Difficulty:  reqData.Difficulty,
	})
	if err != nil {
		logger.Log().Warn("module creation failed", zap.Error(err))
		return middleware.UpstreamErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", nil)
}

// Delete removes a module. Ownership is enforced upstream; the instructor
// gate here only keeps students off the route.
func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	moduleID := c.Locals("moduleID").(string)

	if err := ctrl.gw.DeleteModule(c.UserContext(), session.Token, moduleID); err != nil {
		logger.Log().Warn("module deletion failed", zap.String("module_id", moduleID), zap.Error(err))
		return middleware.UpstreamErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

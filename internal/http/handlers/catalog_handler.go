package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"robomart/internal/domain"
	applog "robomart/internal/log"
	"robomart/internal/remote"
	"robomart/internal/services"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// Browse renders the storefront: the full remote catalog narrowed by the
// q/category query params. A backend failure keeps the page usable with an
// empty grid and an error banner.
func (h *CatalogHandler) Browse(c *fiber.Ctx) error {
	q := c.Query("q")
	category := c.Query("category")
	if category == "" {
		category = domain.AllProducts
	}

	errMsg := ""
	if err := h.Catalog.Refresh(c.UserContext()); err != nil {
		applog.Error(c, "catalog.list.fail", err, nil)
		errMsg = userMessage(err)
	}

	products := h.Catalog.Filtered(q, category)
	return render(c, "store", fiber.Map{
		"Q":          q,
		"Category":   category,
		"Categories": append([]string{domain.AllProducts}, domain.DefaultCategories...),
		"Products":   products,
		"Count":      len(products),
		"Err":        errMsg,
	})
}

// userMessage maps the repository error taxonomy to what the end user sees:
// the backend's own message for rejections, a generic connectivity line when
// no response was received at all.
func userMessage(err error) string {
	var rej *remote.RemoteError
	if errors.As(err, &rej) {
		if rej.Message != "" {
			return rej.Message
		}
		return "The catalog service rejected the request."
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return "Please fix these fields: " + strings.Join(verr.Fields, ", ")
	}
	return "Could not reach the catalog service. Please try again."
}

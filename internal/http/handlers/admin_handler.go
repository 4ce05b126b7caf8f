package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"robomart/internal/domain"
	applog "robomart/internal/log"
	"robomart/internal/services"
	"robomart/internal/validate"
)

type AdminHandler struct {
	Catalog *services.CatalogService
}

// Console renders the admin dashboard: stats cards plus the product table,
// both computed from a freshly listed catalog.
func (h *AdminHandler) Console(c *fiber.Ctx) error {
	errMsg := ""
	if err := h.Catalog.Refresh(c.UserContext()); err != nil {
		applog.Error(c, "admin.list.fail", err, nil)
		errMsg = userMessage(err)
	}
	return h.console(c, errMsg)
}

func (h *AdminHandler) console(c *fiber.Ctx, errMsg string) error {
	return render(c, "admin_console", fiber.Map{
		"Stats":    h.Catalog.Stats(),
		"Products": h.Catalog.Products(),
		"Err":      errMsg,
	})
}

// formCategories returns the select options for the product form. A category
// outside the defaults (the backend accepts arbitrary text) is appended so an
// untouched submit cannot rewrite it.
func formCategories(current string) []string {
	for _, c := range domain.DefaultCategories {
		if c == current {
			return domain.DefaultCategories
		}
	}
	if current == "" {
		return domain.DefaultCategories
	}
	return append(append([]string{}, domain.DefaultCategories...), current)
}

// NewForm shows an empty create form.
func (h *AdminHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "admin_product_form", fiber.Map{
		"Action":         "/admin/products",
		"Categories":     domain.DefaultCategories,
		"Draft":          domain.Draft{Category: domain.DefaultCategories[0]},
		"Features":       "",
		"Price":          "",
		"Stock":          "",
		"MaxAttachments": domain.MaxAttachments,
	})
}

// EditForm shows the form pre-filled from the cached product.
func (h *AdminHandler) EditForm(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This product is no longer available"})
	}
	p, found := h.Catalog.Get(id)
	if !found {
		// The cache may be cold (fresh process); re-list once before giving up.
		if err := h.Catalog.Refresh(c.UserContext()); err != nil {
			applog.Error(c, "admin.list.fail", err, nil)
		}
		if p, found = h.Catalog.Get(id); !found {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "This product is no longer available"})
		}
	}
	return render(c, "admin_product_form", fiber.Map{
		"Action":     "/admin/products/" + p.ID,
		"Categories": formCategories(p.Category),
		"Product":    p,
		"Draft": domain.Draft{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
			Category:    p.Category,
			Features:    p.Features,
		},
		"Features":       domain.JoinFeatures(p.Features),
		"Price":          strconv.FormatFloat(p.Price, 'f', -1, 64),
		"Stock":          strconv.Itoa(p.Stock),
		"MaxAttachments": domain.MaxAttachments,
	})
}

// Create handles the create form post. Validation and backend failures
// re-render the form with the entered data intact.
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	draft := parseDraft(c)
	if _, err := h.Catalog.Create(c.UserContext(), draft); err != nil {
		applog.Error(c, "admin.product.create.fail", err, nil)
		return h.reRenderForm(c, "/admin/products", draft, err)
	}
	applog.Audit(c, "admin.product.create", map[string]any{"name": draft.Name})
	return c.Redirect("/admin")
}

// Update handles the edit form post.
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid product id")
	}
	draft := parseDraft(c)
	if _, err := h.Catalog.Update(c.UserContext(), id, draft); err != nil {
		applog.Error(c, "admin.product.update.fail", err, map[string]any{"product_id": id})
		return h.reRenderForm(c, "/admin/products/"+id, draft, err)
	}
	applog.Audit(c, "admin.product.update", map[string]any{"product_id": id})
	return c.Redirect("/admin")
}

// ConfirmDelete shows the explicit confirmation step before a delete.
func (h *AdminHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This product is no longer available"})
	}
	p, found := h.Catalog.Get(id)
	if !found {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This product is no longer available"})
	}
	return render(c, "admin_confirm_delete", fiber.Map{"Product": p})
}

// Delete performs the confirmed delete. A failure leaves the product in the
// table and surfaces the backend's message on the console.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid product id")
	}
	if err := h.Catalog.Delete(c.UserContext(), id); err != nil {
		applog.Error(c, "admin.product.delete.fail", err, map[string]any{"product_id": id})
		return h.console(c, userMessage(err))
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product_id": id})
	return c.Redirect("/admin")
}

func (h *AdminHandler) reRenderForm(c *fiber.Ctx, action string, draft domain.Draft, err error) error {
	status := fiber.StatusBadGateway
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		status = fiber.StatusUnprocessableEntity
	}
	c.Status(status)
	return render(c, "admin_product_form", fiber.Map{
		"Action":     action,
		"Categories": formCategories(draft.Category),
		"Draft":      draft,
		"Features":   domain.JoinFeatures(draft.Features),
		// Echo the raw inputs so a rejected submit shows what was typed,
		// not the parsed sentinel.
		"Price":          c.FormValue("price"),
		"Stock":          c.FormValue("stock"),
		"MaxAttachments": domain.MaxAttachments,
		"Err":            userMessage(err),
	})
}

// parseDraft reads the multipart product form into a Draft. Malformed
// numbers are mapped to negative values so Draft.Validate flags the field
// alongside any other violations.
func parseDraft(c *fiber.Ctx) domain.Draft {
	d := domain.Draft{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Features:    domain.SplitFeatures(c.FormValue("features")),
	}
	if v, ok := validate.Price(c.FormValue("price")); ok {
		d.Price = v
	} else {
		d.Price = -1
	}
	if v, ok := validate.Stock(c.FormValue("stock")); ok {
		d.Stock = v
	} else {
		d.Stock = -1
	}

	form, err := c.MultipartForm()
	if err != nil {
		return d
	}
	for _, fh := range form.File["images"] {
		f, err := fh.Open()
		if err != nil {
			applog.Error(c, "admin.product.attachment.fail", err, map[string]any{"file": fh.Filename})
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			applog.Error(c, "admin.product.attachment.fail", err, map[string]any{"file": fh.Filename})
			continue
		}
		d.Attachments = append(d.Attachments, domain.Attachment{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return d
}

package screens

import (
	"context"
	"fmt"
	"io"

	"github.com/siherrmann/contentManager/model"
	"github.com/siherrmann/contentManager/page"
	"github.com/siherrmann/contentManager/view/components"

	"github.com/a-h/templ"
)

const (
	ContentTarget  = "#management-content"
	RefreshTrigger = "refreshContent"
)

var statusColors = map[string]string{
	string(model.USER_STATUS_ACTIVE):    "green",
	string(model.USER_STATUS_INACTIVE):  "gray",
	string(model.USER_STATUS_SUSPENDED): "red",
	string(model.POST_STATUS_PUBLISHED): "green",
	string(model.POST_STATUS_DRAFT):     "orange",
	string(model.POST_STATUS_ARCHIVED):  "gray",
}

var roleColors = map[string]string{
	string(model.ROLE_ADMIN):     "red",
	string(model.ROLE_MODERATOR): "blue",
	string(model.ROLE_USER):      "gray",
}

// ManageUrl is the view url of entityType.
func ManageUrl(entityType model.EntityType) string {
	return "/manage/" + string(entityType)
}

// Management renders the full management document.
func Management(p *page.ManagementPage, csrfToken string) templ.Component {
	return Layout("Content Manager", csrfToken, ManagementContent(p))
}

// ManagementContent renders the swappable part of the management screen.
// It reloads itself with the current view state on the refresh trigger.
func ManagementContent(p *page.ManagementPage) templ.Component {
	create, err := model.ResolveAction(p.EntityType(), model.ACTION_CREATE, nil)
	if err != nil {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return err
		})
	}
	return managementContent(p, create)
}

func refreshUrl(p *page.ManagementPage) string {
	return components.StateUrl(ManageUrl(p.EntityType()), p.Table().State())
}

func tabVariant(entityType model.EntityType, active model.EntityType) model.Variant {
	if entityType == active {
		return model.VARIANT_PRIMARY
	}
	return model.VARIANT_SECONDARY
}

func tabAttributes(entityType model.EntityType) templ.Attributes {
	return templ.Attributes{
		"hx-get":      ManageUrl(entityType),
		"hx-target":   ContentTarget,
		"hx-swap":     "outerHTML",
		"hx-push-url": "true",
	}
}

func renderCell(row model.Entity, key string, value any) templ.Component {
	switch key {
	case "status":
		status := fmt.Sprint(value)
		return components.Badge(statusLabel(row.Kind(), status), statusColors[status])
	case "role":
		role := fmt.Sprint(value)
		return components.Badge(model.LabelFor(model.UserRoles, role), roleColors[role])
	case "category":
		return components.Text(model.LabelFor(model.PostCategories, fmt.Sprint(value)))
	}
	if buttons, ok := value.([]model.ActionButton); ok {
		return ActionButtons(row, buttons)
	}
	return nil
}

func statusLabel(entityType model.EntityType, status string) string {
	if entityType == model.ENTITY_USER {
		return model.LabelFor(model.UserStatuses, status)
	}
	return model.LabelFor(model.PostStatuses, status)
}

func actionAttributes(entity model.Entity, action model.Action) templ.Attributes {
	id := entity.EntityID()
	switch action {
	case model.ACTION_EDIT:
		return templ.Attributes{"hx-get": fmt.Sprintf("%s/updatePopup?id=%d", ManageUrl(entity.Kind()), id)}
	case model.ACTION_DELETE:
		return templ.Attributes{"hx-get": fmt.Sprintf("%s/deletePopup?id=%d", ManageUrl(entity.Kind()), id)}
	default:
		return templ.Attributes{
			"hx-post": fmt.Sprintf("/api/%s/%s?id=%d", entity.Kind(), action, id),
			"hx-swap": "none",
		}
	}
}

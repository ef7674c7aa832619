package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/siherrmann/contentManager/model"
	"github.com/siherrmann/contentManager/page"
	"github.com/siherrmann/contentManager/view/components"
	"github.com/siherrmann/contentManager/view/screens"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
)

// =======View Handlers=======

// IndexView renders the management screen of the first entity tab
func (m *ManagerHandler) IndexView(c echo.Context) error {
	c.SetParamNames("entity")
	c.SetParamValues(string(model.EntityTypes[0]))
	return m.ManageView(c)
}

// ManageView renders the management screen of :entity with the table state
// taken from the query. htmx requests targeting the management content only
// get the swappable content.
func (m *ManagerHandler) ManageView(c echo.Context) error {
	p, err := m.loadPage(c)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	rc := model.GetRequestContext(c)
	if rc.HxRequest && rc.HxTarget == strings.TrimPrefix(screens.ContentTarget, "#") {
		c.Response().Header().Add("HX-Push-Url", components.StateUrl(screens.ManageUrl(p.EntityType()), p.Table().State()))
		return render(c, screens.ManagementContent(p))
	}
	return render(c, screens.Management(p, csrf.Token(c.Request())))
}

// =======Popup Handlers=======

// AddPopupView renders the create form of :entity
func (m *ManagerHandler) AddPopupView(c echo.Context) error {
	p, err := m.newPage(c)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	p.OpenCreate()
	return renderPopup(c, screens.EntityPopup(p.EntityType(), p.Modal(), csrf.Token(c.Request())))
}

// UpdatePopupView renders the edit form of the entity with the id query parameter
func (m *ManagerHandler) UpdatePopupView(c echo.Context) error {
	p, err := m.newPage(c)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	id, err := queryId(c)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	if err := p.OpenEdit(c.Request().Context(), id); err != nil {
		return renderPopupOrJson(c, statusForError(err), fmt.Sprintf("%s not found", p.EntityType().Label()))
	}
	return renderPopup(c, screens.EntityPopup(p.EntityType(), p.Modal(), csrf.Token(c.Request())))
}

// DeletePopupView renders the delete confirmation of the entity with the id query parameter
func (m *ManagerHandler) DeletePopupView(c echo.Context) error {
	p, err := m.newPage(c)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	id, err := queryId(c)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	entity, err := p.Get(c.Request().Context(), id)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), fmt.Sprintf("%s not found", p.EntityType().Label()))
	}

	button, err := model.ResolveAction(p.EntityType(), model.ACTION_DELETE, entity)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), err.Error())
	}
	if button.Disabled {
		return renderPopupOrJson(c, http.StatusConflict, fmt.Sprintf("%s %d cannot be deleted", p.EntityType().Label(), id))
	}

	return renderPopup(c, screens.DeletePopup(entity, csrf.Token(c.Request())))
}

// loadPage creates the page of :entity, loads its rows and applies the query view state.
func (m *ManagerHandler) loadPage(c echo.Context) (*page.ManagementPage, error) {
	p, err := m.newPage(c)
	if err != nil {
		return nil, err
	}

	if err := p.Load(c.Request().Context()); err != nil {
		m.logger.Error("Failed to load rows", "entity", p.EntityType(), "error", err)
		return nil, err
	}
	p.Table().Apply(viewState(c))
	return p, nil
}

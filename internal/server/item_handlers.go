package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/topbrands/internal/apierror"
	"github.com/mdouchement/topbrands/internal/database"
	"github.com/mdouchement/topbrands/internal/model"
	"github.com/mdouchement/topbrands/internal/server/serializer"
	"github.com/pkg/errors"
)

type (
	// item contains all item handlers.
	item struct {
		db database.Client
	}

	itemParams struct {
		Name string `json:"name"`
	}
)

///// List
////
//

// List renders all the items in a collection envelope.
func (h *item) List(c echo.Context) error {
	items, err := h.db.FindItems()
	if err != nil {
		return errors.Wrap(err, "could not list items")
	}

	return c.JSON(http.StatusOK, serializer.Collection(c.Request().URL.Path, serializer.Items(items)))
}

///// Show
////
//

// Show renders the item for the given id.
func (h *item) Show(c echo.Context) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Item(item))
}

///// Create
////
//

// Create stores a new item.
func (h *item) Create(c echo.Context) error {
	params, err := h.bind(c)
	if err != nil {
		return err
	}

	item := model.NewItem(params.Name)
	if err = h.db.Save(item); err != nil {
		return errors.Wrap(err, "could not create item")
	}

	return c.JSON(http.StatusCreated, serializer.Item(item))
}

///// Update
////
//

// Update renames the item for the given id.
func (h *item) Update(c echo.Context) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}

	params, err := h.bind(c)
	if err != nil {
		return err
	}

	item.Name = params.Name
	if err = h.db.Save(item); err != nil {
		return errors.Wrap(err, "could not update item")
	}

	return c.JSON(http.StatusOK, serializer.Item(item))
}

///// Delete
////
//

// Delete removes the item for the given id.
func (h *item) Delete(c echo.Context) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}

	if err = h.db.Delete(item); err != nil {
		return errors.Wrap(err, "could not delete item")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *item) find(c echo.Context) (*model.Item, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, apierror.NotFound("Item")
	}

	item, err := h.db.FindItem(id)
	if err != nil {
		if h.db.IsNotFound(err) {
			return nil, apierror.NotFound("Item")
		}
		return nil, errors.Wrap(err, "could not find item")
	}
	return item, nil
}

func (h *item) bind(c echo.Context) (itemParams, error) {
	var params itemParams
	if err := c.Bind(&params); err != nil {
		return params, apierror.InvalidParameters("Could not get item params.")
	}

	if strings.TrimSpace(params.Name) == "" {
		return params, apierror.InvalidParameters("Please provide a name.")
	}
	return params, nil
}

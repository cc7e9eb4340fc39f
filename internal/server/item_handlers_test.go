package server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/appleboy/gofight/v2"
	"github.com/mdouchement/topbrands/internal/catalog"
	"github.com/mdouchement/topbrands/internal/logger"
	"github.com/stretchr/testify/assert"
)

type envelope struct {
	Content []struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	} `json:"content"`
	Links []struct {
		Rel  string `json:"rel"`
		Href string `json:"href"`
	} `json:"links"`
}

func TestRequestItemsList(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	r.GET("/items").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"content":[],"links":[{"rel":"self","href":"/items"}]}`, r.Body.String())
	})

	_, err := catalog.Seed(ctrl.Database, logger.Discard())
	assert.NoError(t, err)

	var first string
	r.GET("/items").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		var v envelope
		err := json.Unmarshal(r.Body.Bytes(), &v)
		assert.NoError(t, err)

		if assert.Len(t, v.Content, len(catalog.Brands)) {
			for i, item := range v.Content {
				assert.Equal(t, catalog.Brands[i], item.Name)
				assert.NotZero(t, item.ID)
			}
		}
		first = r.Body.String()
	})

	// Same collection without intervening writes.
	r.GET("/items").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, first, r.Body.String())
	})
}

func TestRequestItemsShow(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	items := createItems(ctrl, "Lining", "PUMA")

	r.GET(fmt.Sprintf("/items/%d", items[1].ID)).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"name":"PUMA"}`, items[1].ID), r.Body.String())
	})

	r.GET("/items/4242").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusNotFound, r.Code)
		assert.JSONEq(t, `{"error":{"tag":"not-found","message":"Item not found."}}`, r.Body.String())
	})

	r.GET("/items/not-a-number").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusNotFound, r.Code)
	})
}

func TestRequestItemsCreate(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	r.POST("/items").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusBadRequest, r.Code)
		assert.JSONEq(t, `{"error":{"tag":"invalid-parameters","message":"Could not get item params."}}`, r.Body.String())
	})

	r.POST("/items").SetJSON(gofight.D{"name": "  "}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusBadRequest, r.Code)
		assert.JSONEq(t, `{"error":{"tag":"invalid-parameters","message":"Please provide a name."}}`, r.Body.String())
	})

	r.POST("/items").SetJSON(gofight.D{"name": "Bad Boy"}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusCreated, r.Code)

		var v struct {
			ID   uint64 `json:"id"`
			Name string `json:"name"`
		}
		err := json.Unmarshal(r.Body.Bytes(), &v)
		assert.NoError(t, err)
		assert.NotZero(t, v.ID)
		assert.Equal(t, "Bad Boy", v.Name)

		item, err := ctrl.Database.FindItem(v.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Bad Boy", item.Name)
	})
}

func TestRequestItemsUpdate(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	items := createItems(ctrl, "Air Jordan")
	path := fmt.Sprintf("/items/%d", items[0].ID)

	r.PUT(path).SetJSON(gofight.D{"name": "Jordan"}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"name":"Jordan"}`, items[0].ID), r.Body.String())
	})

	item, err := ctrl.Database.FindItem(items[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, "Jordan", item.Name)

	r.PUT("/items/4242").SetJSON(gofight.D{"name": "Jordan"}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusNotFound, r.Code)
	})

	r.PUT(path).SetJSON(gofight.D{"name": ""}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusBadRequest, r.Code)
	})
}

func TestRequestItemsDelete(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	items := createItems(ctrl, "Reebok", "PUMA")
	path := fmt.Sprintf("/items/%d", items[0].ID)

	r.DELETE(path).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusNoContent, r.Code)
	})

	r.DELETE(path).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusNotFound, r.Code)
	})

	remaining, err := ctrl.Database.FindItems()
	assert.NoError(t, err)
	if assert.Len(t, remaining, 1) {
		assert.Equal(t, "PUMA", remaining[0].Name)
	}
}

func TestRequestItemsStoreFailure(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	ctrl.Database.Close()

	r.GET("/items").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusInternalServerError, r.Code)
		assert.Contains(t, r.Body.String(), "Unexpected error (id: ")
	})
}

package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mdouchement/topbrands/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestItemJSON(t *testing.T) {
	item := model.NewItem("PUMA")
	item.ID = 2
	item.SetCreatedAt(time.Now())
	item.SetUpdatedAt(time.Now())

	payload, err := json.Marshal(item)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"name":"PUMA"}`, string(payload))
}

func TestItemTimestamps(t *testing.T) {
	item := model.NewItem("Nike")
	assert.Zero(t, item.GetID())
	assert.Nil(t, item.GetCreatedAt())

	now := time.Now()
	item.SetCreatedAt(now)
	item.SetUpdatedAt(now.Add(time.Second))
	assert.Equal(t, now, *item.GetCreatedAt())
	assert.Equal(t, now.Add(time.Second), *item.GetUpdatedAt())
}

package serializer

import "github.com/mdouchement/topbrands/internal/model"

// A Link is a hypermedia reference rendered in collection envelopes.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// Collection serializes the given renders to the collection envelope format.
func Collection(self string, renders interface{}) interface{} {
	return map[string]interface{}{
		"content": renders,
		"links":   []Link{{Rel: "self", Href: self}},
	}
}

// Item serializes the render of an item.
func Item(m *model.Item) map[string]interface{} {
	return map[string]interface{}{
		"id":   m.ID,
		"name": m.Name,
	}
}

// Items serializes the render of a list of items.
func Items(items []*model.Item) []map[string]interface{} {
	r := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		r = append(r, Item(item))
	}
	return r
}

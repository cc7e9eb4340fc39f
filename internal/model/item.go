package model

// An Item represents a brand stored in the catalog and the rendered API response.
type Item struct {
	Base `msgpack:",inline" storm:"inline"`

	Name string `json:"name" msgpack:"name" storm:"index"`
}

// NewItem returns a new unsaved Item with the given name.
func NewItem(name string) *Item {
	return &Item{Name: name}
}

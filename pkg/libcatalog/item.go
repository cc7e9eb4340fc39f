package libcatalog

// An Item is a brand as rendered by the catalog API.
type Item struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

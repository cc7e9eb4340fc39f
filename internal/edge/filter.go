package edge

import "github.com/mdouchement/topbrands/pkg/libcatalog"

// Blocklist contains the brand names never exposed by the edge.
// Names are compared case-sensitively.
var Blocklist = map[string]bool{
	"Nike":   true,
	"Adidas": true,
	"Reebok": true,
}

// IsGreat returns true when the item is not blocklisted.
func IsGreat(item libcatalog.Item) bool {
	return !Blocklist[item.Name]
}

// Filter returns the great items, preserving their order.
func Filter(items []libcatalog.Item) []libcatalog.Item {
	great := make([]libcatalog.Item, 0, len(items))
	for _, item := range items {
		if IsGreat(item) {
			great = append(great, item)
		}
	}
	return great
}

// Package catalog holds the item catalog bootstrap data.
package catalog

import (
	"github.com/mdouchement/topbrands/internal/database"
	"github.com/mdouchement/topbrands/internal/model"
	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
)

// Brands are the names stored by Seed, in insertion order.
var Brands = []string{"Lining", "PUMA", "Bad Boy", "Air Jordan", "Nike", "Adidas", "Reebok"}

// Seed inserts all the Brands as new items.
// It never checks for existing rows: every call stores a fresh copy of the Brands with new ids.
func Seed(db database.Client, log logrus.FieldLogger) ([]*model.Item, error) {
	items := make([]*model.Item, 0, len(Brands))
	for _, name := range Brands {
		item := model.NewItem(name)
		if err := db.Save(item); err != nil {
			return nil, errors.Wrapf(err, "could not seed %q", name)
		}
		items = append(items, item)
	}

	all, err := db.FindItems()
	if err != nil {
		return nil, errors.Wrap(err, "could not list seeded items")
	}
	for _, item := range all {
		log.WithField("id", item.ID).Info(item.Name)
	}
	log.Debug(litter.Sdump(all))

	return items, nil
}

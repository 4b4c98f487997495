// Package render turns letter snapshots into the pending list shown to the
// user.
package render

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/futureletter/internal/client/models"
)

const EmptyMessage = "No letters scheduled yet. Write one to your future self."

type Item struct {
	Index      int
	ID         string
	Title      string
	Recipient  string
	DeliveryAt string
	Timestamp  int64
}

type View struct {
	Empty bool
	Items []Item
}

// Project sorts a copy of letters by delivery time (ties by id) and formats
// each delivery time in loc with layout. Index is 1-based.
func Project(letters []models.Letter, loc *time.Location, layout string) View {
	if loc == nil {
		loc = time.Local
	}

	sorted := make([]models.Letter, len(letters))
	copy(sorted, letters)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DeliveryTimestamp != sorted[j].DeliveryTimestamp {
			return sorted[i].DeliveryTimestamp < sorted[j].DeliveryTimestamp
		}
		return sorted[i].ID < sorted[j].ID
	})

	v := View{Empty: len(sorted) == 0, Items: make([]Item, 0, len(sorted))}
	for i, l := range sorted {
		v.Items = append(v.Items, Item{
			Index:      i + 1,
			ID:         l.ID,
			Title:      l.Title,
			Recipient:  l.RecipientEmail,
			DeliveryAt: l.DeliveryTime(loc).Format(layout),
			Timestamp:  l.DeliveryTimestamp,
		})
	}
	return v
}

// Lookup returns the item addressed by a 1-based index or by id.
func (v View) Lookup(n int, id string) (Item, bool) {
	for _, it := range v.Items {
		if (n > 0 && it.Index == n) || (id != "" && it.ID == id) {
			return it, true
		}
	}
	return Item{}, false
}

// Package view models the customer home page's internal view
// switching: the page swaps sub-views without a full navigation, and
// the allowed states and transitions live here rather than in
// scattered string flags.
package view

import "strings"

// State is one of the customer home sub-views.
type State int

const (
	StateDashboard State = iota
	StateCollection
	StateProduct
	StateTutorials
)

func (s State) String() string {
	switch s {
	case StateCollection:
		return "collection"
	case StateProduct:
		return "product"
	case StateTutorials:
		return "tutorials"
	default:
		return "dashboard"
	}
}

// Collection categories the collection view can filter by.
const (
	CollectionAll      = "all"
	CollectionKnitwear = "knitwear"
	CollectionCrochet  = "crochet"
)

// Page is the resolved view state for one render: which sub-view, and
// the selection that sub-view needs.
type Page struct {
	State      State
	Collection string
	ProductID  string
}

// Initial is the state a fresh visit renders.
func Initial() Page {
	return Page{State: StateDashboard}
}

// Resolve maps the navigation inputs (the view name and optional
// product id) onto a Page. Unknown view names and a product view
// without a product both settle on the dashboard, mirroring how a
// stale link should behave.
func Resolve(viewName, productID string) Page {
	switch strings.ToLower(strings.TrimSpace(viewName)) {
	case "", "dashboard":
		return Initial()
	case CollectionAll, CollectionKnitwear, CollectionCrochet:
		return Page{State: StateCollection, Collection: strings.ToLower(strings.TrimSpace(viewName))}
	case "tutorials":
		return Page{State: StateTutorials}
	case "product":
		if productID == "" {
			return Initial()
		}
		return Page{State: StateProduct, ProductID: productID}
	default:
		return Initial()
	}
}

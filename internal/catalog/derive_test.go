package catalog

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/ytraddan/storefront/internal/fakestore"
)

func tenProducts() []fakestore.Product {
	items := make([]fakestore.Product, 10)
	for i := range items {
		category := "clothing"
		if i%2 == 1 {
			category = "electronics"
		}
		items[i] = fakestore.Product{
			ID:       i + 1,
			Title:    fmt.Sprintf("Item %d", i+1),
			Price:    float64(10 * (i + 1)),
			Category: category,
		}
	}
	return items
}

func snapshotOf(products []fakestore.Product, favorites ...int) Snapshot {
	favs := make(map[int]bool, len(favorites))
	for _, id := range favorites {
		favs[id] = true
	}
	return Snapshot{Products: products, Favorites: favs, Phase: PhaseLoaded}
}

func TestDerive_Pagination(t *testing.T) {
	snap := snapshotOf(tenProducts())
	filters := DefaultFilters()

	view := Derive(snap, filters, 4)
	if view.TotalPages != 3 || view.Total != 10 {
		t.Fatalf("totalPages=%d total=%d, want 3/10", view.TotalPages, view.Total)
	}
	if len(view.Page) != 4 || view.Page[0].ID != 1 || view.Page[3].ID != 4 {
		t.Fatalf("page 1 = %v, want products 1..4", ids(view.Page))
	}

	view = Derive(snap, filters.WithPage(3), 4)
	if len(view.Page) != 2 || view.Page[0].ID != 9 || view.Page[1].ID != 10 {
		t.Fatalf("page 3 = %v, want products 9..10", ids(view.Page))
	}

	// |F| > 0 implies totalPages*perPage >= |F| > (totalPages-1)*perPage.
	if view.TotalPages*4 < view.Total || view.Total <= (view.TotalPages-1)*4 {
		t.Fatalf("page-count bounds violated: total=%d totalPages=%d", view.Total, view.TotalPages)
	}
}

func TestDerive_EmptyResultIsPageOneOfOne(t *testing.T) {
	view := Derive(snapshotOf(nil), DefaultFilters(), 4)
	if view.TotalPages != 1 || view.CurrentPage != 1 || len(view.Page) != 0 {
		t.Fatalf("empty derive = %+v, want page 1 of 1 with no items", view)
	}
}

func TestDerive_ClampsPageWhenSetShrinks(t *testing.T) {
	snap := snapshotOf(tenProducts())

	view := Derive(snap, DefaultFilters().WithPage(9), 4)
	if view.CurrentPage != 3 {
		t.Fatalf("CurrentPage = %d, want clamp to 3", view.CurrentPage)
	}
}

func TestDerive_SearchIsCaseInsensitive(t *testing.T) {
	snap := snapshotOf([]fakestore.Product{
		{ID: 1, Title: "Red Shoe"},
		{ID: 2, Title: "blue SHOE"},
		{ID: 3, Title: "Hat"},
	})

	view := Derive(snap, DefaultFilters().WithSearchTerm("shoe"), 10)
	if got := ids(view.Page); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("search result = %v, want [1 2]", got)
	}
}

func TestDerive_MinPriceAndFavorites(t *testing.T) {
	snap := snapshotOf(tenProducts(), 2, 4, 999)

	view := Derive(snap, DefaultFilters().WithFavoritesOnly(true), 10)
	// The stale favorite 999 has no product and is filtered out of the join.
	if got := ids(view.Page); !reflect.DeepEqual(got, []int{2, 4}) {
		t.Fatalf("favorites result = %v, want [2 4]", got)
	}

	view = Derive(snap, DefaultFilters().WithMinPrice(70), 10)
	if got := ids(view.Page); !reflect.DeepEqual(got, []int{7, 8, 9, 10}) {
		t.Fatalf("min-price result = %v, want [7 8 9 10]", got)
	}
}

func TestDerive_CategoryCountsIgnoreCategoryFilter(t *testing.T) {
	snap := snapshotOf(tenProducts())

	// Counts are taken before the category stage, under the other filters.
	filters := DefaultFilters().WithMinPrice(60).WithCategory("clothing")
	view := Derive(snap, filters, 10)

	// Products 6..10 survive the price stage: categories e,c,e,c,e -> 2/3.
	if view.CategoryCounts["clothing"] != 2 || view.CategoryCounts["electronics"] != 3 {
		t.Fatalf("counts = %v, want clothing=2 electronics=3", view.CategoryCounts)
	}
	if view.CategoryCounts[CategoryAll] != 5 {
		t.Fatalf("counts[all] = %d, want size of pre-category set", view.CategoryCounts[CategoryAll])
	}

	// Categories partition the collection, so they must sum to counts[all].
	sum := 0
	for _, c := range view.Categories {
		sum += view.CategoryCounts[c]
	}
	if sum != view.CategoryCounts[CategoryAll] {
		t.Fatalf("sum of counts = %d, want %d", sum, view.CategoryCounts[CategoryAll])
	}

	// The final page then narrows to the selected category.
	if got := ids(view.Page); !reflect.DeepEqual(got, []int{7, 9}) {
		t.Fatalf("category result = %v, want [7 9]", got)
	}
}

func TestDerive_IsPure(t *testing.T) {
	snap := snapshotOf(tenProducts(), 3)
	filters := DefaultFilters().WithSearchTerm("item").WithMinPrice(20)

	first := Derive(snap, filters, 4)
	second := Derive(snap, filters, 4)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Derive is not pure:\n%+v\n%+v", first, second)
	}

	// The snapshot must not be modified.
	if snap.Products[0].ID != 1 || len(snap.Products) != 10 {
		t.Fatal("Derive mutated its input snapshot")
	}
}

func TestDerive_PreservesStoreOrder(t *testing.T) {
	products := tenProducts()
	// Simulate a local create: newest sits at the front.
	products = append([]fakestore.Product{{ID: 99, Title: "Fresh", Category: "clothing"}}, products...)

	view := Derive(snapshotOf(products), DefaultFilters(), 20)
	if view.Page[0].ID != 99 {
		t.Fatalf("Page[0].ID = %d, want locally created item first", view.Page[0].ID)
	}
}

func ids(products []fakestore.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

package ui

import (
	"reflect"
	"testing"

	"github.com/tinyplayerss/hyteserve/internal/catalog"
	"github.com/tinyplayerss/hyteserve/internal/source"
	"github.com/tinyplayerss/hyteserve/internal/state"
)

func TestArticleGroupsKeepFirstSeenOrder(t *testing.T) {
	items := []catalog.Item{
		{Title: "Patch Notes", Group: "Releases"},
		{Title: "Modding 101", Group: "Guides"},
		{Title: "Hotfix", Group: "Releases"},
		{Title: "Untitled Note"},
	}
	page := []int{0, 1, 2, 3}

	order, grouped := articleGroups(items, page, "Recent Updates")

	wantOrder := []string{"Releases", "Guides", "Recent Updates"}
	if !reflect.DeepEqual(order, wantOrder) {
		t.Errorf("order = %v, want %v", order, wantOrder)
	}
	if !reflect.DeepEqual(grouped["Releases"], []int{0, 2}) {
		t.Errorf("Releases rows = %v, want [0 2]", grouped["Releases"])
	}
	if !reflect.DeepEqual(grouped["Recent Updates"], []int{3}) {
		t.Errorf("fallback rows = %v, want [3]", grouped["Recent Updates"])
	}
}

func TestSearchThenTagFilterCombine(t *testing.T) {
	items := []catalog.Item{
		{Title: "Iron Golems", Author: "ada", Tags: []string{"mobs"}},
		{Title: "Iron Tools", Author: "bo", Tags: []string{"items"}},
		{Title: "Skylands", Author: "ada", Tags: []string{"mobs"}},
	}
	m := newListModel(t, items)

	m.setQuery("iron")
	if got := len(m.filtered); got != 2 {
		t.Fatalf("after search: %d items, want 2", got)
	}

	// Activate the "items" tag through the panel.
	for i, tc := range m.tagCounts {
		if tc.Tag == "items" {
			m.tagCursor = i
		}
	}
	m.toggleTag()

	if got := len(m.filtered); got != 1 {
		t.Fatalf("after search+tag: %d items, want 1", got)
	}
	if item := m.snapshot.Items[m.filtered[0]]; item.Title != "Iron Tools" {
		t.Errorf("remaining item = %q, want Iron Tools", item.Title)
	}
}

func TestFilterResetsToFirstPage(t *testing.T) {
	var items []catalog.Item
	for i := 0; i < 23; i++ {
		items = append(items, catalog.Item{Title: "Mod", Author: "ada"})
	}
	m := newListModel(t, items)

	if m.pager.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", m.pager.TotalPages)
	}
	m.pager.Page = 2

	m.setQuery("ada")
	if m.pager.Page != 0 {
		t.Errorf("Page = %d, want 0 after filter change", m.pager.Page)
	}
}

func TestPageWalkAcrossPages(t *testing.T) {
	var items []catalog.Item
	for i := 0; i < 23; i++ {
		items = append(items, catalog.Item{Title: "Mod"})
	}
	m := newListModel(t, items)

	if m.pager.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", m.pager.TotalPages)
	}

	first := m.pageItems()
	if len(first) != 10 {
		t.Fatalf("first page shows %d items, want 10", len(first))
	}
	if first[0] != 0 {
		t.Errorf("first page starts at index %d, want 0", first[0])
	}

	m.pager.Page = 1
	if got := m.pageItems(); len(got) != 10 || got[0] != 10 {
		t.Errorf("second page = %d items starting at %d, want 10 starting at 10", len(got), got[0])
	}

	m.pager.Page = 2
	last := m.pageItems()
	if len(last) != 3 {
		t.Errorf("last page shows %d items, want 3", len(last))
	}
	if len(last) > 0 && last[len(last)-1] != 22 {
		t.Errorf("last page ends at index %d, want 22", last[len(last)-1])
	}

	m.pager.Page = 3
	if got := m.pageItems(); len(got) != 0 {
		t.Errorf("out-of-range page shows %d items, want 0", len(got))
	}
}

func TestSourceSwitchResetsPage(t *testing.T) {
	var items []catalog.Item
	for i := 0; i < 23; i++ {
		items = append(items, catalog.Item{Title: "Mod"})
	}
	m := newListModel(t, items)
	m.pager.Page = 2

	maps, _ := source.ByName("maps")
	m.applySnapshot(state.Snapshot{Source: maps, HasCatalog: true, Items: items})

	if m.pager.Page != 0 {
		t.Errorf("after source switch pager.Page = %d, want 0", m.pager.Page)
	}
}

func TestSourceSwitchResetsFilter(t *testing.T) {
	m := newListModel(t, testItems())
	m.setQuery("iron")

	maps, _ := source.ByName("maps")
	m.applySnapshot(state.Snapshot{Source: maps, HasCatalog: true, Items: []catalog.Item{
		{Title: "Skylands", Author: "cy"},
	}})

	if !m.filter.Empty() {
		t.Errorf("filter = %+v, want empty after source switch", m.filter)
	}
	if got := len(m.filtered); got != 1 {
		t.Errorf("filtered = %d items, want 1", got)
	}
}

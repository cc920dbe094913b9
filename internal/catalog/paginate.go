package catalog

// PageCount returns the number of pages needed for itemCount items. Zero
// items means zero pages; the caller hides pagination controls at one page
// or fewer.
func PageCount(itemCount, pageSize int) int {
	if itemCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (itemCount + pageSize - 1) / pageSize
}

// Page returns the 1-indexed page slice [(page-1)*size, page*size), clamped
// to the collection bounds. Out-of-range pages are empty.
func Page(items []Item, page, pageSize int) []Item {
	start, end := pageBounds(len(items), page, pageSize)
	return items[start:end]
}

// PageIndexes is Page over a slice of positional indexes.
func PageIndexes(indexes []int, page, pageSize int) []int {
	start, end := pageBounds(len(indexes), page, pageSize)
	return indexes[start:end]
}

func pageBounds(n, page, pageSize int) (int, int) {
	if page < 1 || pageSize <= 0 {
		return 0, 0
	}
	start := (page - 1) * pageSize
	if start >= n {
		return 0, 0
	}
	end := start + pageSize
	if end > n {
		end = n
	}
	return start, end
}

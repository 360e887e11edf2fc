// Package pagination implements offset pagination over a counted result set.
package pagination

// Page describes a resolved page window. Offsets are zero-based and safe to
// hand to a LIMIT/OFFSET query directly.
type Page struct {
	Number int
	Size   int
	Offset int
	Total  int
	Pages  int
}

// Resolve clamps the requested page and computes the window. A request past
// the last page resolves to an offset past the end, which the store answers
// with an empty list and correct total/pages rather than an error. The
// offset stays bounded no matter how large the requested page number is.
func Resolve(total, number, size int) Page {
	if size < 1 {
		size = 1
	}
	pages := (total + size - 1) / size

	if number < 1 {
		number = 1
	}
	if pages > 0 && number > pages {
		number = pages + 1
	}

	return Page{
		Number: number,
		Size:   size,
		Offset: (number - 1) * size,
		Total:  total,
		Pages:  pages,
	}
}

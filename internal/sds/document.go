package sds

// Row is one table row. A nil cell was absent in the source grid, which is
// distinct from a cell that was extracted as an empty string.
type Row []*string

// Table is one extracted table grid: ordered rows of optional cells.
type Table struct {
	Rows []Row
}

// Page carries the two views of one document page the extractor consumes:
// the page's plain text and the table grids found on it.
type Page struct {
	Text   string
	Tables []Table
}

// DocumentReader supplies the pages of one document. Implementations read the
// underlying file once and serve both the text and table views from the same
// pass, so Pages may be called repeatedly without side effects.
type DocumentReader interface {
	Pages() ([]Page, error)
}

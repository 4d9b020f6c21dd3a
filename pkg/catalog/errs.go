package catalog

import "errors"

var (
	// ErrEmptyCatalog indicates that a component collection had no records.
	ErrEmptyCatalog = errors.New("catalog: empty catalog")

	// ErrMissingSheet indicates that a workbook had no usable data sheet.
	ErrMissingSheet = errors.New("catalog: missing sheet")

	// ErrBadCell indicates that a spreadsheet cell was missing or not numeric.
	ErrBadCell = errors.New("catalog: bad cell")

	// ErrShortRow indicates that a component row had fewer columns than expected.
	ErrShortRow = errors.New("catalog: short row")
)

package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet column layout, one header row then one row per part.
// Electrical columns use datasheet-native units and are scaled to SI at load:
//
//	MOSFET: Name, Price, Vds_max (V), Id_max (A), Rds_on (mΩ), Vsd (V),
//	        Vgs_max (V), tr (ns), tf (ns), Qg (nC), Qrr (nC)
//	Diode:  Name, Price, Vr_max (V), If_avg (A), If_rms (A), Vf (V), Cd (pF)
const (
	mosfetCols = 11
	diodeCols  = 7

	milli = 1e-3
	nano  = 1e-9
	pico  = 1e-12
)

// Load reads both component workbooks and assembles a catalog.
func Load(mosfetPath, diodePath string) (*Catalog, error) {
	mosfets, err := LoadMOSFETs(mosfetPath)
	if err != nil {
		return nil, err
	}
	diodes, err := LoadDiodes(diodePath)
	if err != nil {
		return nil, err
	}
	return New(mosfets, diodes)
}

// LoadMOSFETs reads MOSFET records from an xlsx workbook on disk.
func LoadMOSFETs(path string) ([]MOSFET, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	return readMOSFETRows(f)
}

// ReadMOSFETs reads MOSFET records from xlsx workbook content.
func ReadMOSFETs(r io.Reader) ([]MOSFET, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read workbook: %w", err)
	}
	defer f.Close()
	return readMOSFETRows(f)
}

// LoadDiodes reads diode records from an xlsx workbook on disk.
func LoadDiodes(path string) ([]Diode, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	return readDiodeRows(f)
}

// ReadDiodes reads diode records from xlsx workbook content.
func ReadDiodes(r io.Reader) ([]Diode, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read workbook: %w", err)
	}
	defer f.Close()
	return readDiodeRows(f)
}

func readMOSFETRows(f *excelize.File) ([]MOSFET, error) {
	rows, err := dataRows(f)
	if err != nil {
		return nil, err
	}

	mosfets := make([]MOSFET, 0, len(rows))
	for i, row := range rows {
		rowN := i + 2 // 1-based, after the header
		if len(row) < mosfetCols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShortRow, rowN, len(row), mosfetCols)
		}
		c := cellReader{row: row, rowN: rowN}
		m := MOSFET{
			Name:   strings.TrimSpace(row[0]),
			Price:  c.float(1, "price", 1),
			VdsMax: c.float(2, "vds_max", 1),
			IdMax:  c.float(3, "id_max", 1),
			RdsOn:  c.float(4, "rds_on", milli),
			Vsd:    c.float(5, "vsd", 1),
			VgsMax: c.float(6, "vgs_max", 1),
			Tr:     c.float(7, "tr", nano),
			Tf:     c.float(8, "tf", nano),
			Qg:     c.float(9, "qg", nano),
			Qrr:    c.float(10, "qrr", nano),
		}
		if c.err != nil {
			return nil, c.err
		}
		mosfets = append(mosfets, m)
	}
	return mosfets, nil
}

func readDiodeRows(f *excelize.File) ([]Diode, error) {
	rows, err := dataRows(f)
	if err != nil {
		return nil, err
	}

	diodes := make([]Diode, 0, len(rows))
	for i, row := range rows {
		rowN := i + 2
		if len(row) < diodeCols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShortRow, rowN, len(row), diodeCols)
		}
		c := cellReader{row: row, rowN: rowN}
		d := Diode{
			Name:  strings.TrimSpace(row[0]),
			Price: c.float(1, "price", 1),
			VrMax: c.float(2, "vr_max", 1),
			IfAvg: c.float(3, "if_avg", 1),
			IfRMS: c.float(4, "if_rms", 1),
			Vf:    c.float(5, "vf", 1),
			Cd:    c.float(6, "cd", pico),
		}
		if c.err != nil {
			return nil, c.err
		}
		diodes = append(diodes, d)
	}
	return diodes, nil
}

// dataRows returns the first sheet's rows minus the header row.
func dataRows(f *excelize.File) ([][]string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrMissingSheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("catalog: sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: sheet %s has no data rows", ErrEmptyCatalog, sheets[0])
	}
	return rows[1:], nil
}

// cellReader parses numeric cells and remembers the first failure.
type cellReader struct {
	row  []string
	rowN int
	err  error
}

func (c *cellReader) float(col int, name string, scale float64) float64 {
	if c.err != nil {
		return 0
	}
	s := strings.TrimSpace(c.row[col])
	if s == "" {
		c.err = fmt.Errorf("%w: row %d column %s is empty", ErrBadCell, c.rowN, name)
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.err = fmt.Errorf("%w: row %d column %s: %q", ErrBadCell, c.rowN, name, s)
		return 0
	}
	return v * scale
}

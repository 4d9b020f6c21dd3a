package wpt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// SwarmSettings are the search-control values that travel with the parameter
// file: swarm size, iteration cap and the convergence step threshold.
type SwarmSettings struct {
	Size          int     `yaml:"size"`
	MaxIterations int     `yaml:"max_iterations"`
	MinStep       float64 `yaml:"min_step"`
}

// LoadParams reads system parameters and swarm settings from path, picking
// the decoder from the file extension (.xlsx or .yaml/.yml).
func LoadParams(path string) (Params, SwarmSettings, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadParamsXLSX(path)
	case ".yaml", ".yml":
		return LoadParamsYAML(path)
	default:
		return Params{}, SwarmSettings{}, fmt.Errorf("%w: unsupported parameter file %s", ErrInvalidParams, path)
	}
}

// Parameter workbook layout: one header row, then one named value per row in
// column B. Row order follows the original input sheet.
const paramRows = 26

// LoadParamsXLSX reads the parameter workbook from disk.
func LoadParamsXLSX(path string) (Params, SwarmSettings, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Params{}, SwarmSettings{}, fmt.Errorf("wpt: open %s: %w", path, err)
	}
	defer f.Close()
	return readParamRows(f)
}

// ReadParamsXLSX reads the parameter workbook from workbook content.
func ReadParamsXLSX(r io.Reader) (Params, SwarmSettings, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Params{}, SwarmSettings{}, fmt.Errorf("wpt: read workbook: %w", err)
	}
	defer f.Close()
	return readParamRows(f)
}

func readParamRows(f *excelize.File) (Params, SwarmSettings, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Params{}, SwarmSettings{}, fmt.Errorf("%w: no sheets", ErrInvalidParams)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Params{}, SwarmSettings{}, fmt.Errorf("wpt: sheet %s: %w", sheets[0], err)
	}
	if len(rows) < paramRows+1 {
		return Params{}, SwarmSettings{}, fmt.Errorf("%w: sheet %s has %d rows, want %d",
			ErrInvalidParams, sheets[0], len(rows), paramRows+1)
	}

	vals := make([]float64, paramRows)
	for i := 0; i < paramRows; i++ {
		row := rows[i+1] // skip header
		if len(row) < 2 || strings.TrimSpace(row[1]) == "" {
			return Params{}, SwarmSettings{}, fmt.Errorf("%w: row %d has no value", ErrInvalidParams, i+2)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return Params{}, SwarmSettings{}, fmt.Errorf("%w: row %d: %q", ErrInvalidParams, i+2, row[1])
		}
		vals[i] = v
	}

	p := Params{
		Coupling: vals[0],
		TX: Coil{
			Turns:         int(vals[1]),
			WireDiameter:  vals[2],
			WireSpacing:   vals[3],
			OuterDiameter: vals[4],
		},
		RX: Coil{
			Turns:         int(vals[5]),
			WireDiameter:  vals[6],
			WireSpacing:   vals[7],
			OuterDiameter: vals[8],
		},
		LoadResistance: vals[9],
		MOSFETCount:    int(vals[10]),
		DiodeCount:     int(vals[11]),
		IdRMS:          vals[12],
		Vds:            vals[13],
		Ids:            vals[14],
		ICoil:          vals[15],
		IdEff:          vals[16],
		IdMean:         vals[17],
		Vd:             vals[18],
		R1Unit:         vals[19],
		R2Unit:         vals[20],
		FMin:           vals[21],
		FMax:           vals[22],
	}
	s := SwarmSettings{
		Size:          int(vals[23]),
		MaxIterations: int(vals[24]),
		MinStep:       vals[25],
	}
	return p, s, nil
}

type paramsFile struct {
	Params Params        `yaml:"params"`
	Swarm  SwarmSettings `yaml:"swarm"`
}

// LoadParamsYAML reads system parameters and swarm settings from a YAML file.
func LoadParamsYAML(path string) (Params, SwarmSettings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Params{}, SwarmSettings{}, fmt.Errorf("wpt: read %s: %w", path, err)
	}
	return ParseParamsYAML(b)
}

// ParseParamsYAML decodes YAML parameter content.
func ParseParamsYAML(b []byte) (Params, SwarmSettings, error) {
	var pf paramsFile
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return Params{}, SwarmSettings{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return pf.Params, pf.Swarm, nil
}

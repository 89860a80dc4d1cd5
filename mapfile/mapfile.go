package mapfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathgrid/costmodel"
	"github.com/katalvlaran/pathgrid/gridmap"
	"github.com/katalvlaran/pathgrid/pathsearch"
	"github.com/katalvlaran/pathgrid/registry"
)

// Sentinel errors for document decoding.
var (
	// ErrDecode wraps YAML syntax and field errors.
	ErrDecode = errors.New("mapfile: cannot decode document")
	// ErrBadRow indicates a row token that is not a terrain code in [0,255].
	ErrBadRow = errors.New("mapfile: bad terrain row")
)

// Document is one map file.
type Document struct {
	Name      string   `yaml:"name,omitempty" json:"name,omitempty" jsonschema:"title=Map key,description=Key for the named collection; empty loads the default slot"`
	Algorithm string   `yaml:"algorithm,omitempty" json:"algorithm,omitempty" jsonschema:"title=Algorithm,enum=direct,enum=chunked,description=Search variant bound at load time"`
	ChunkSize int      `yaml:"chunk_size,omitempty" json:"chunk_size,omitempty" jsonschema:"title=Chunk size,minimum=1,description=Chunk side length for the chunked variant"`
	Weights   *Weights `yaml:"weights,omitempty" json:"weights,omitempty" jsonschema:"title=Weights,description=Class costs for the chunked variant"`
	Rows      []string `yaml:"rows" json:"rows" jsonschema:"title=Terrain rows,minItems=1,description=One string per row top to bottom; codes separated by spaces or commas or one digit per cell"`
	Queries   []Query  `yaml:"queries,omitempty" json:"queries,omitempty" jsonschema:"title=Queries,description=Named start and goal pairs"`
}

// Weights overrides costmodel.DefaultWeighted.
type Weights struct {
	Open      int64 `yaml:"open" json:"open" jsonschema:"minimum=1,description=Cost of entering a code 0 cell"`
	Expensive int64 `yaml:"expensive" json:"expensive" jsonschema:"minimum=1,description=Cost of entering a code 1 or code 3+ cell"`
}

// Query is a named start/goal pair; coordinates are [x, y].
type Query struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	From []int  `yaml:"from" json:"from" jsonschema:"minItems=2,maxItems=2,description=Start cell as [x, y]"`
	To   []int  `yaml:"to" json:"to" jsonschema:"minItems=2,maxItems=2,description=Goal cell as [x, y]"`
}

// Start returns the query start cell.
func (q Query) Start() gridmap.Cell { return gridmap.Cell{X: q.From[0], Y: q.From[1]} }

// Goal returns the query goal cell.
func (q Query) Goal() gridmap.Cell { return gridmap.Cell{X: q.To[0], Y: q.To[1]} }

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document. Unknown fields are rejected, and every
// query must give exactly two coordinates per cell.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	for i, q := range doc.Queries {
		if len(q.From) != 2 || len(q.To) != 2 {
			return nil, fmt.Errorf("%w: query %d: from and to need [x, y]", ErrDecode, i)
		}
	}

	return &doc, nil
}

// Grid converts Rows into terrain codes. A row holding a single token longer
// than one character is read one digit per cell. Rows of different lengths
// are not rejected here; gridmap.New reports them as ErrInvalidGrid.
func (d *Document) Grid() ([][]uint8, error) {
	grid := make([][]uint8, len(d.Rows))
	for y, row := range d.Rows {
		codes, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadRow, y, err)
		}
		grid[y] = codes
	}

	return grid, nil
}

func parseRow(row string) ([]uint8, error) {
	fields := strings.FieldsFunc(row, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
	if len(fields) == 1 && len(fields[0]) > 1 {
		// compact form: one digit per cell
		out := make([]uint8, 0, len(fields[0]))
		for _, r := range fields[0] {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("%q is not a digit", r)
			}
			out = append(out, uint8(r-'0'))
		}

		return out, nil
	}
	out := make([]uint8, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, err
		}
		out[i] = uint8(v)
	}

	return out, nil
}

// SearchOptions translates the algorithm settings into pathsearch options.
// Validation of the values themselves happens in pathsearch.New.
func (d *Document) SearchOptions() ([]pathsearch.Option, error) {
	alg, err := pathsearch.ParseAlgorithm(d.Algorithm)
	if err != nil {
		return nil, err
	}
	opts := []pathsearch.Option{pathsearch.WithAlgorithm(alg)}
	if d.ChunkSize != 0 {
		opts = append(opts, pathsearch.WithChunkSize(d.ChunkSize))
	}
	if d.Weights != nil {
		opts = append(opts, pathsearch.WithWeights(costmodel.Weighted{
			OpenCost:      d.Weights.Open,
			ExpensiveCost: d.Weights.Expensive,
		}))
	}

	return opts, nil
}

// LoadInto loads the document into r: the default slot when Name is empty,
// the named collection otherwise.
func (d *Document) LoadInto(r *registry.Registry) error {
	grid, err := d.Grid()
	if err != nil {
		return err
	}
	opts, err := d.SearchOptions()
	if err != nil {
		return err
	}
	if d.Name == "" {
		return r.LoadDefault(grid, opts...)
	}

	return r.LoadNamed(d.Name, grid, opts...)
}

// RegistryQueries returns the document queries as a registry batch.
func (d *Document) RegistryQueries() []registry.Query {
	out := make([]registry.Query, len(d.Queries))
	for i, q := range d.Queries {
		out[i] = registry.Query{Start: q.Start(), Goal: q.Goal()}
	}

	return out
}

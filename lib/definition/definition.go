// Package definition loads table definitions from YAML.
//
// A definition describes a complete table: display options, column groups,
// columns bound to row fields, and the rows themselves as maps. It is what
// the slottable CLI renders and serves.
//
//	caption: Employee Directory
//	striped: true
//	rowKey: id
//	groups:
//	  - label: Personal Info
//	    colspan: 2
//	columns:
//	  - field: name
//	    header: Name
//	    sticky: left
//	  - field: age
//	    header: Age
//	    align: right
//	rows:
//	  - {id: 1, name: Alice, age: 28}
//	  - {id: 2, name: Bob, age: 34}
package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/a-h/templ"
	"gopkg.in/yaml.v3"

	"github.com/pthm/slottable"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("definition: invalid")

// Row is a single table row keyed by field name.
type Row = map[string]any

// Definition is a table described in YAML.
type Definition struct {
	Caption      string `yaml:"caption"`
	Striped      bool   `yaml:"striped"`
	Hoverable    bool   `yaml:"hoverable"`
	Bordered     bool   `yaml:"bordered"`
	StickyHeader bool   `yaml:"stickyHeader"`
	Loading      bool   `yaml:"loading"`
	TableClass   string `yaml:"tableClass"`

	// RowKey names the field written to each row's data-key attribute.
	RowKey string `yaml:"rowKey"`

	// RowClass is a class string applied to every body row.
	RowClass string `yaml:"rowClass"`

	// Empty and LoadingText fill the placeholder row.
	Empty       string `yaml:"empty"`
	LoadingText string `yaml:"loadingText"`

	Groups  []Group  `yaml:"groups"`
	Columns []Column `yaml:"columns"`
	Rows    []Row    `yaml:"rows"`
}

// Group is a column group spanning header cells.
type Group struct {
	Label   string `yaml:"label"`
	Sticky  string `yaml:"sticky"`
	Colspan int    `yaml:"colspan"`
}

// Column binds a table column to a row field.
type Column struct {
	Field    string `yaml:"field"`
	Header   string `yaml:"header"`
	Footer   string `yaml:"footer"`
	Sticky   string `yaml:"sticky"`
	Align    string `yaml:"align"`
	Width    string `yaml:"width"`
	MinWidth string `yaml:"minWidth"`

	// Visible defaults to true when omitted.
	Visible *bool `yaml:"visible"`

	// TdClass and ThClass accept a string, a list of strings, or a map of
	// class names to booleans.
	TdClass any `yaml:"tdClass"`
	ThClass any `yaml:"thClass"`
}

// Parse decodes and validates a YAML definition. Unknown keys are rejected.
func Parse(data []byte) (*Definition, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a YAML definition from r.
func Decode(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("definition: decode yaml: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Load reads and parses the definition file at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definition: read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Validate checks enumerated values and class specs.
func (d *Definition) Validate() error {
	for i, g := range d.Groups {
		if _, err := parseSticky(g.Sticky); err != nil {
			return fmt.Errorf("%w: group %d: %v", ErrInvalid, i, err)
		}
	}
	for i, c := range d.Columns {
		if _, err := parseSticky(c.Sticky); err != nil {
			return fmt.Errorf("%w: column %d: %v", ErrInvalid, i, err)
		}
		if _, err := parseAlign(c.Align); err != nil {
			return fmt.Errorf("%w: column %d: %v", ErrInvalid, i, err)
		}
		if _, err := classSpec(c.TdClass); err != nil {
			return fmt.Errorf("%w: column %d: tdClass: %v", ErrInvalid, i, err)
		}
		if _, err := classSpec(c.ThClass); err != nil {
			return fmt.Errorf("%w: column %d: thClass: %v", ErrInvalid, i, err)
		}
	}
	return nil
}

// Children returns the declared groups and columns, groups first.
func (d *Definition) Children() []any {
	children := make([]any, 0, len(d.Groups)+len(d.Columns))
	for _, g := range d.Groups {
		sticky, _ := parseSticky(g.Sticky)
		children = append(children, slottable.NewColumnGroupText(g.Label).
			Sticky(sticky).
			Colspan(g.Colspan))
	}
	for _, c := range d.Columns {
		children = append(children, c.column())
	}
	return children
}

// Model builds the column model of the definition.
func (d *Definition) Model() slottable.Model[Row] {
	return slottable.BuildModel[Row](d.Children()...)
}

// Options returns the table options of the definition.
func (d *Definition) Options() slottable.Options[Row] {
	opts := slottable.Options[Row]{
		TableClass:   d.TableClass,
		RowClass:     d.RowClass,
		Striped:      d.Striped,
		Hoverable:    d.Hoverable,
		Bordered:     d.Bordered,
		StickyHeader: d.StickyHeader,
		Loading:      d.Loading,
		Caption:      d.Caption,
	}
	if d.RowKey != "" {
		opts.RowKey = slottable.KeyField[Row](d.RowKey)
	}
	if d.Empty != "" {
		opts.EmptyContent = slottable.Text(d.Empty)
	}
	if d.LoadingText != "" {
		opts.LoadingContent = slottable.Text(d.LoadingText)
	}
	return opts
}

// Props returns everything a slottable.Table needs to render the definition.
func (d *Definition) Props() slottable.Props[Row] {
	return slottable.Props[Row]{
		Rows:    d.Rows,
		Columns: d.Children(),
		Options: d.Options(),
	}
}

func (c Column) column() *slottable.Column[Row] {
	sticky, _ := parseSticky(c.Sticky)
	align, _ := parseAlign(c.Align)
	td, _ := classSpec(c.TdClass)
	th, _ := classSpec(c.ThClass)

	col := slottable.NewColumn[Row]().
		Sticky(sticky).
		Align(align).
		Width(c.Width).
		MinWidth(c.MinWidth).
		TdClass(td).
		ThClass(th)
	if c.Visible != nil {
		col.Visible(*c.Visible)
	}
	if c.Header != "" {
		col.HeaderText(c.Header)
	}
	if c.Footer != "" {
		col.FooterText(c.Footer)
	}
	if c.Field != "" {
		field := c.Field
		col.Cell(func(s slottable.CellScope[Row]) templ.Component {
			v, ok := s.Row[field]
			if !ok || v == nil {
				return nil
			}
			return slottable.Text(v)
		})
	}
	return col
}

package lumcat

// NotFound is the description given to a sub-code that has no row in the reference matrix
const NotFound = "⚠️ Not Found"

// description field names, in display order
const (
	FieldRange    = "Range"
	FieldOption   = "Option Description"
	FieldDiffuser = "Diffuser Description"
	FieldWiring   = "Wiring Description"
	FieldDriver   = "Driver Description"
	FieldLumens   = "Lumens (Display Only)"
	FieldCRI      = "CRI Description"
	FieldCCT      = "CCT Description"
)

// Description is a decoded catalog code
type Description struct {
	Range    string
	Option   string
	Diffuser string
	Wiring   string
	Driver   string
	Lumens   string
	CRI      string
	CCT      string
}

// Field is a single named entry of a Description
type Field struct {
	Name  string
	Value string
}

// Fields returns the description entries in display order
func (d Description) Fields() []Field {
	return []Field{
		{FieldRange, d.Range},
		{FieldOption, d.Option},
		{FieldDiffuser, d.Diffuser},
		{FieldWiring, d.Wiring},
		{FieldDriver, d.Driver},
		{FieldLumens, d.Lumens},
		{FieldCRI, d.CRI},
		{FieldCCT, d.CCT},
	}
}

// Map returns the description entries keyed by field name
func (d Description) Map() map[string]string {
	fields := d.Fields()
	result := make(map[string]string, len(fields))
	for _, f := range fields {
		result[f.Name] = f.Value
	}
	return result
}

// Missing returns the names of fields whose sub-code was not found
func (d Description) Missing() []string {
	var result []string
	for _, f := range d.Fields() {
		if f.Value == NotFound {
			result = append(result, f.Name)
		}
	}
	return result
}

// Describe resolves each sub-code of the code against the matrix using the default column layout
//
// returns false if the matrix is empty
func (m *Matrix) Describe(code Code) (Description, bool) {
	return m.DescribeWith(code, nil)
}

// DescribeWith is Describe using the supplied column layout (nil means DefaultColumns)
func (m *Matrix) DescribeWith(code Code, cols *Columns) (Description, bool) {
	if m.Len() == 0 {
		return Description{}, false
	}
	if cols == nil {
		cols = DefaultColumns()
	}
	return Description{
		Range:    code.Range,
		Option:   m.resolve(cols.Option, code.Option),
		Diffuser: m.resolve(cols.Diffuser, code.Diffuser),
		Wiring:   m.resolve(cols.Wiring, code.Wiring),
		Driver:   m.resolve(cols.Driver, code.Driver),
		Lumens:   code.LumensText(),
		CRI:      m.resolve(cols.CRI, code.CRI),
		CCT:      m.resolve(cols.CCT, code.CCT),
	}, true
}

func (m *Matrix) resolve(pair ColumnPair, code string) string {
	if desc, ok := m.Lookup(pair.Code, pair.Description, code); ok {
		return desc
	}
	return NotFound
}

// Decode parses a catalog code and describes it against the matrix
//
// returns false (and no error) when the matrix is empty
func Decode(catalog string, m *Matrix) (Description, bool, error) {
	code, err := Parse(catalog)
	if err != nil {
		return Description{}, false, err
	}
	desc, ok := m.Describe(code)
	return desc, ok, nil
}

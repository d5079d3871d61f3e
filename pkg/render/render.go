// Package render turns a note catalog into Go source.
//
// The artifact has four blocks separated by a blank line: a header with the
// package clause and imports, the type definition with its parse table, the
// frequency conversion and the display conversion. The three catalog blocks
// walk the catalog in the same order and reference the same identifiers, so
// they always compile together.
package render

import (
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/notegen/pkg/core"
)

const (
	DefaultPackage   = "notes"
	DefaultTypeName  = "Note"
	DefaultGenerator = "notegen"
)

// Renderer renders catalogs as Go source. It implements core.Renderer.
type Renderer struct {
	pkg       string
	typeName  string
	generator string
	source    string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPackage sets the package clause of the generated file.
func WithPackage(name string) Option {
	return func(r *Renderer) {
		r.pkg = name
	}
}

// WithTypeName sets the name of the generated enumerated type.
func WithTypeName(name string) Option {
	return func(r *Renderer) {
		r.typeName = name
	}
}

// WithGenerator sets the tool name written in the "Code generated" line.
func WithGenerator(name string) Option {
	return func(r *Renderer) {
		r.generator = name
	}
}

// WithSource records where the table came from in the header.
func WithSource(uri string) Option {
	return func(r *Renderer) {
		r.source = uri
	}
}

// New creates a Renderer with the default package and type names.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		pkg:       DefaultPackage,
		typeName:  DefaultTypeName,
		generator: DefaultGenerator,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// shadowed are the predeclared and local names the generated code relies on.
var shadowed = []string{
	"fmt", "init",
	"int", "string", "float64", "byte", "error", "make", "len", "nil", "iota", "true", "false",
	"n", "s", "ok", "forms", "form", "parsed", "err", "text",
}

// Reserved implements core.Renderer.
func (r *Renderer) Reserved() []string {
	names := []string{
		r.typeName,
		"Parse" + r.typeName,
		r.formsVar(),
		r.lookupVar(),
	}
	return append(names, shadowed...)
}

// Render implements core.Renderer.
func (r *Renderer) Render(c *core.Catalog) ([]byte, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	if c == nil || c.Len() == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", core.ErrInconsistent)
	}

	blocks := []string{
		r.Header(),
		r.TypeDefinition(c),
		r.FrequencyConversion(c),
		r.Display(c),
	}
	src := []byte(strings.Join(blocks, "\n"))

	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}
	return out, nil
}

func (r *Renderer) validate() error {
	for _, name := range []string{r.pkg, r.typeName} {
		if !token.IsIdentifier(name) || name == "_" {
			return fmt.Errorf("%w: %q", core.ErrInvalidIdentifier, name)
		}
	}

	// The type and the names derived from it live next to the import and the
	// predeclared identifiers the generated methods use.
	for _, name := range []string{r.typeName, "Parse" + r.typeName, r.formsVar(), r.lookupVar()} {
		for _, taken := range shadowed {
			if name == taken {
				return fmt.Errorf("%w: type name %q declares %q, which the generated code needs",
					core.ErrInvalidIdentifier, r.typeName, name)
			}
		}
	}
	return nil
}

// Header returns the generated-code marker, package clause and imports.
func (r *Renderer) Header() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "// Code generated by %s; DO NOT EDIT.\n", r.generator)
	if r.source != "" {
		fmt.Fprintf(&sb, "// Source: %s\n", r.source)
	}
	fmt.Fprintf(&sb, "\npackage %s\n\nimport \"fmt\"\n", r.pkg)
	return sb.String()
}

// TypeDefinition returns the type, one constant per alias, the accepted
// spellings of each constant and the parse functions built on them.
func (r *Renderer) TypeDefinition(c *core.Catalog) string {
	t := r.typeName
	var sb strings.Builder

	fmt.Fprintf(&sb, "// %s is a pitch name from the reference frequency table.\n", t)
	fmt.Fprintf(&sb, "type %s int\n\n", t)

	sb.WriteString("const (\n")
	for i, e := range c.Entries() {
		if i == 0 {
			fmt.Fprintf(&sb, "\t%s %s = iota\n", e.Identifier, t)
			continue
		}
		fmt.Fprintf(&sb, "\t%s\n", e.Identifier)
	}
	sb.WriteString(")\n\n")

	fmt.Fprintf(&sb, "// %s lists the spellings each %s accepts when parsed.\n", r.formsVar(), t)
	fmt.Fprintf(&sb, "var %s = map[%s][]string{\n", r.formsVar(), t)
	for _, e := range c.Entries() {
		forms := e.SerializedForms()
		quoted := make([]string, len(forms))
		for i, f := range forms {
			quoted[i] = strconv.Quote(f)
		}
		fmt.Fprintf(&sb, "\t%s: {%s},\n", e.Identifier, strings.Join(quoted, ", "))
	}
	sb.WriteString("}\n\n")

	fmt.Fprintf(&sb, "var %s map[string]%s\n\n", r.lookupVar(), t)
	sb.WriteString("func init() {\n")
	fmt.Fprintf(&sb, "\t%s = make(map[string]%s, 2*len(%s))\n", r.lookupVar(), t, r.formsVar())
	fmt.Fprintf(&sb, "\tfor n, forms := range %s {\n", r.formsVar())
	sb.WriteString("\t\tfor _, form := range forms {\n")
	fmt.Fprintf(&sb, "\t\t\t%s[form] = n\n", r.lookupVar())
	sb.WriteString("\t\t}\n\t}\n}\n\n")

	fmt.Fprintf(&sb, "// Parse%s returns the %s spelled s.\n", t, t)
	fmt.Fprintf(&sb, "func Parse%s(s string) (%s, error) {\n", t, t)
	fmt.Fprintf(&sb, "\tn, ok := %s[s]\n", r.lookupVar())
	sb.WriteString("\tif !ok {\n")
	fmt.Fprintf(&sb, "\t\treturn 0, fmt.Errorf(\"unknown %s %%q\", s)\n", strings.ToLower(t))
	sb.WriteString("\t}\n\treturn n, nil\n}\n\n")

	sb.WriteString("// MarshalText implements encoding.TextMarshaler.\n")
	fmt.Fprintf(&sb, "func (n %s) MarshalText() ([]byte, error) {\n", t)
	fmt.Fprintf(&sb, "\tif _, ok := %s[n]; !ok {\n", r.formsVar())
	fmt.Fprintf(&sb, "\t\treturn nil, fmt.Errorf(\"invalid %s %%d\", int(n))\n", strings.ToLower(t))
	sb.WriteString("\t}\n\treturn []byte(n.String()), nil\n}\n\n")

	sb.WriteString("// UnmarshalText implements encoding.TextUnmarshaler.\n")
	fmt.Fprintf(&sb, "func (n *%s) UnmarshalText(text []byte) error {\n", t)
	fmt.Fprintf(&sb, "\tparsed, err := Parse%s(string(text))\n", t)
	sb.WriteString("\tif err != nil {\n\t\treturn err\n\t}\n\t*n = parsed\n\treturn nil\n}\n")

	return sb.String()
}

// FrequencyConversion returns the method mapping every constant to its frequency in Hz.
func (r *Renderer) FrequencyConversion(c *core.Catalog) string {
	var sb strings.Builder
	sb.WriteString("// Frequency returns the pitch of n in Hz.\n")
	fmt.Fprintf(&sb, "func (n %s) Frequency() float64 {\n", r.typeName)
	sb.WriteString("\tswitch n {\n")
	for _, e := range c.Entries() {
		fmt.Fprintf(&sb, "\tcase %s:\n\t\treturn %s\n", e.Identifier, e.Literal)
	}
	sb.WriteString("\tdefault:\n\t\treturn 0\n\t}\n}\n")
	return sb.String()
}

// Display returns the String method mapping every constant back to its published name.
func (r *Renderer) Display(c *core.Catalog) string {
	var sb strings.Builder
	sb.WriteString("// String returns the note name as published.\n")
	fmt.Fprintf(&sb, "func (n %s) String() string {\n", r.typeName)
	sb.WriteString("\tswitch n {\n")
	for _, e := range c.Entries() {
		fmt.Fprintf(&sb, "\tcase %s:\n\t\treturn %s\n", e.Identifier, strconv.Quote(e.RawName))
	}
	sb.WriteString("\tdefault:\n")
	fmt.Fprintf(&sb, "\t\treturn fmt.Sprintf(\"%s(%%d)\", int(n))\n", r.typeName)
	sb.WriteString("\t}\n}\n")
	return sb.String()
}

func (r *Renderer) formsVar() string {
	return lowerFirst(r.typeName) + "Forms"
}

func (r *Renderer) lookupVar() string {
	return lowerFirst(r.typeName) + "ByForm"
}

func lowerFirst(s string) string {
	ch, size := utf8.DecodeRuneInString(s)
	if ch == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(ch)) + s[size:]
}

var _ core.Renderer = (*Renderer)(nil)

// Package inspect renders a source-like synopsis of a Go type at runtime:
// its kind, fields, and method set, plus a zero value constructed through
// reflection. Types are looked up by name in a registry populated from
// sample values, since Go cannot materialize an arbitrary type from a
// string the way a dynamic runtime can.
package inspect

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"text/tabwriter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrUnknownType is returned by Synopsis for a name that was never
// registered.
var ErrUnknownType = errors.New("unknown type")

// Registry maps display names to types, preserving registration order for
// listings.
type Registry struct {
	types *orderedmap.OrderedMap[string, reflect.Type]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: orderedmap.New[string, reflect.Type]()}
}

// Register records sample's dynamic type under name. Pointer samples are
// unwrapped so that Register("T", &T{}) and Register("T", T{}) agree.
// Re-registering a name replaces the previous entry without changing its
// position.
func (r *Registry) Register(name string, sample any) {
	t := reflect.TypeOf(sample)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	r.types.Set(name, t)
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, 0, r.types.Len())
	for pair := r.types.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Synopsis renders the named type. Returns ErrUnknownType if the name was
// never registered.
func (r *Registry) Synopsis(name string) (string, error) {
	t, ok := r.types.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return Describe(t), nil
}

// Describe renders a synopsis of t: declaration header, fields for structs,
// the full method set (value and pointer receivers), and the zero value.
func Describe(t reflect.Type) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// %s\n", pkgPathOf(t))
	fmt.Fprintf(&b, "type %s %s {\n", t.Name(), t.Kind())
	if t.Kind() == reflect.Struct {
		writeFields(&b, t)
	}
	b.WriteString("}\n")

	writeMethods(&b, t)

	fmt.Fprintf(&b, "\nzero value: %v\n", reflect.New(t).Elem().Interface())
	return b.String()
}

func pkgPathOf(t reflect.Type) string {
	if p := t.PkgPath(); p != "" {
		return p
	}
	return "(unnamed)"
}

// writeFields lists the struct's fields, aligned, with unexported fields
// marked: they are part of the layout but invisible outside the package.
func writeFields(b *strings.Builder, t reflect.Type) {
	w := tabwriter.NewWriter(b, 0, 0, 1, ' ', 0)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		note := ""
		if !f.IsExported() {
			note = "\t// unexported"
		}
		fmt.Fprintf(w, "\t%s\t%s%s\n", f.Name, f.Type, note)
	}
	w.Flush()
}

// writeMethods lists the pointer method set, which subsumes the value
// method set, rendered as declarations with the receiver elided.
func writeMethods(b *strings.Builder, t reflect.Type) {
	pt := reflect.PointerTo(t)
	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		fmt.Fprintf(b, "func (%s) %s%s\n", t.Name(), m.Name, signature(m.Type))
	}
}

// signature renders a method's type as "(in...) out" with the receiver
// (the first input of a reflect method type) dropped.
func signature(ft reflect.Type) string {
	in := make([]string, 0, ft.NumIn()-1)
	for i := 1; i < ft.NumIn(); i++ {
		in = append(in, ft.In(i).String())
	}
	out := make([]string, 0, ft.NumOut())
	for i := 0; i < ft.NumOut(); i++ {
		out = append(out, ft.Out(i).String())
	}

	s := "(" + strings.Join(in, ", ") + ")"
	switch len(out) {
	case 0:
		return s
	case 1:
		return s + " " + out[0]
	default:
		return s + " (" + strings.Join(out, ", ") + ")"
	}
}

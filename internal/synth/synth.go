// Package synth reconstructs source-level declaration text from catalog
// records. Both renderings are pure functions of the record and the
// catalog; the catalog is consulted only to resolve struct aliases.
package synth

import (
	"fmt"
	"strings"

	"github.com/Yeint-herp/ntdoc/internal/catalog"
)

// Raw synthesizes a terse, copyable declaration for the record.
func Raw(r catalog.Record, cat catalog.Catalog) string {
	switch d := r.Decl.(type) {
	case catalog.Function:
		return functionSignature(d)
	case catalog.Define:
		return fmt.Sprintf("#define %s %s", d.Name, d.Value)
	case catalog.Typedef:
		return fmt.Sprintf("typedef %s %s;", strings.Join(d.Tokens, " "), d.Name)
	case catalog.Struct:
		return structDefinition(d, cat)
	case catalog.Union:
		return unionDefinition(d)
	case catalog.Enum:
		return enumDefinition(d)
	default:
		panic(fmt.Sprintf("synth: unhandled declaration %T", r.Decl))
	}
}

// Pretty produces the multi-line human-facing rendering: category header,
// kind-labeled title, then a kind-specific body.
func Pretty(r catalog.Record, cat catalog.Catalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Category: %s\n\n", r.Category)

	switch d := r.Decl.(type) {
	case catalog.Function:
		fmt.Fprintf(&b, "Function `%s`\n", d.Name)
		fmt.Fprintf(&b, "Signature: %s\n\n", functionSignature(d))
		fmt.Fprintf(&b, "Description:\n%s\n", d.Description)
	case catalog.Define:
		fmt.Fprintf(&b, "Define `%s`\n\n", d.Name)
		b.WriteString(Raw(r, cat))
		b.WriteByte('\n')
	case catalog.Typedef:
		fmt.Fprintf(&b, "Typedef `%s`\n\n", d.Name)
		b.WriteString(Raw(r, cat))
		b.WriteByte('\n')
	case catalog.Struct:
		fmt.Fprintf(&b, "Struct `%s`\n\n", d.Name)
		b.WriteString(Raw(r, cat))
		b.WriteByte('\n')
	case catalog.Union:
		fmt.Fprintf(&b, "Union `%s`\n\n", d.Name)
		b.WriteString(Raw(r, cat))
		b.WriteByte('\n')
	case catalog.Enum:
		b.WriteString("Enum\n\n")
		b.WriteString(Raw(r, cat))
		b.WriteByte('\n')
	default:
		panic(fmt.Sprintf("synth: unhandled declaration %T", r.Decl))
	}
	return b.String()
}

func functionSignature(d catalog.Function) string {
	return fmt.Sprintf("%s %s(%s);", d.ReturnType, d.Name, strings.Join(d.Parameters, ", "))
}

// structDefinition renders the typedef-wrapped struct form. The alias is
// taken from the first Typedef in catalog order whose token sequence
// names the struct (exact token, or a token ending with the struct name);
// with no such typedef, the struct's own name loses at most one leading
// underscore.
func structDefinition(d catalog.Struct, cat catalog.Catalog) string {
	alias := structAlias(d.Name, cat)

	var b strings.Builder
	fmt.Fprintf(&b, "typedef struct _%s {\n", d.Name)
	for _, f := range d.Fields {
		fmt.Fprintf(&b, "    %s %s;\n", f.Type, f.Name)
	}
	fmt.Fprintf(&b, "} %s, *P%s;", alias, alias)
	return b.String()
}

func structAlias(name string, cat catalog.Catalog) string {
	for _, rec := range cat {
		td, ok := rec.Decl.(catalog.Typedef)
		if !ok {
			continue
		}
		for _, token := range td.Tokens {
			if token == name || strings.HasSuffix(token, name) {
				return td.Name
			}
		}
	}
	return strings.TrimPrefix(name, "_")
}

func unionDefinition(d catalog.Union) string {
	var b strings.Builder
	fmt.Fprintf(&b, "union %s {\n", d.Name)
	for _, f := range d.Fields {
		fmt.Fprintf(&b, "    %s %s;\n", f.Type, f.Name)
	}
	b.WriteString("};")
	return b.String()
}

// enumDefinition renders an anonymous enum; the record name identifies
// the entry for search but is not part of the declaration.
func enumDefinition(d catalog.Enum) string {
	var b strings.Builder
	b.WriteString("enum {\n")
	for _, m := range d.Members {
		if m.Init != nil {
			fmt.Fprintf(&b, "    %s = %d,\n", m.Name, *m.Init)
		} else {
			fmt.Fprintf(&b, "    %s,\n", m.Name)
		}
	}
	b.WriteString("};")
	return b.String()
}

// Package catalog defines the record model for the API reference catalog
// and loads it from its JSON representation.
package catalog

import (
	"errors"
	"fmt"
)

// Catalog errors.
var (
	// ErrUnknownCategory indicates a category string with no known alias.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownKind indicates a record with an unrecognized type tag.
	ErrUnknownKind = errors.New("unknown declaration kind")

	// ErrMissingName indicates a record without a name.
	ErrMissingName = errors.New("record has no name")

	// ErrNotArray indicates catalog data that is not a JSON array.
	ErrNotArray = errors.New("catalog data is not a JSON array")
)

// Category identifies which API family a record belongs to.
type Category int

const (
	// CategoryNt is the NT native API.
	CategoryNt Category = iota
	// CategoryWin32 is the Win32 API.
	CategoryWin32
)

// String returns the canonical category name.
func (c Category) String() string {
	switch c {
	case CategoryNt:
		return "Nt"
	case CategoryWin32:
		return "Win32"
	default:
		return "Unknown"
	}
}

// ParseCategory resolves a category string, tolerating the spelling
// aliases found in catalog files.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "Nt", "NT", "NT Native API":
		return CategoryNt, nil
	case "Win32", "Win32 API":
		return CategoryWin32, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// Decl is the declaration payload of a record. The set of implementations
// is closed: exactly the six types below. The unexported method keeps
// outside packages from adding variants, and a new variant cannot compile
// without providing DeclName.
type Decl interface {
	// DeclName returns the identifying name of the declaration.
	DeclName() string

	sealedDecl()
}

// Field is a named, typed member of a struct or union.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// EnumMember is a single enumerator, with an optional explicit initializer.
type EnumMember struct {
	Name string  `json:"name"`
	Init *uint64 `json:"init,omitempty"`
}

// Function is a callable API entry point.
type Function struct {
	Name        string
	ReturnType  string
	Parameters  []string
	Description string
}

// Typedef aliases a type expression, stored as its ordered tokens.
type Typedef struct {
	Name   string
	Tokens []string
}

// Define is a preprocessor constant.
type Define struct {
	Name  string
	Value string
}

// Struct is a record type with ordered fields.
type Struct struct {
	Name   string
	Fields []Field
}

// Union is an overlapped record type with ordered fields.
type Union struct {
	Name   string
	Fields []Field
}

// Enum is an enumeration. The name identifies the record for search;
// the rendered declaration is anonymous.
type Enum struct {
	Name    string
	Members []EnumMember
}

// DeclName implements Decl.
func (f Function) DeclName() string { return f.Name }

// DeclName implements Decl.
func (t Typedef) DeclName() string { return t.Name }

// DeclName implements Decl.
func (d Define) DeclName() string { return d.Name }

// DeclName implements Decl.
func (s Struct) DeclName() string { return s.Name }

// DeclName implements Decl.
func (u Union) DeclName() string { return u.Name }

// DeclName implements Decl.
func (e Enum) DeclName() string { return e.Name }

func (Function) sealedDecl() {}
func (Typedef) sealedDecl()  {}
func (Define) sealedDecl()   {}
func (Struct) sealedDecl()   {}
func (Union) sealedDecl()    {}
func (Enum) sealedDecl()     {}

// Record is one catalog entry: a declaration tagged with its category.
type Record struct {
	Category Category
	Decl     Decl
}

// Name returns the record's identifying name regardless of variant.
func (r Record) Name() string { return r.Decl.DeclName() }

// Catalog is the ordered, immutable sequence of records. It is built once
// at startup and shared read-only; declaration order is meaningful and
// must be preserved.
type Catalog []Record

package catalog

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Load parses catalog JSON into a Catalog. The format is an array of
// objects carrying a "category" string, a "type" tag naming the variant,
// and the variant's fields flattened alongside.
//
// Malformed records (missing name, unknown category or type tag) fail the
// whole load; a broken catalog file is a build/data error, not something
// to paper over at query time.
func Load(data []byte) (Catalog, error) {
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, ErrNotArray
	}

	var (
		cat     Catalog
		loadErr error
	)
	index := 0
	root.ForEach(func(_, entry gjson.Result) bool {
		rec, err := parseRecord(entry)
		if err != nil {
			loadErr = fmt.Errorf("entry %d: %w", index, err)
			return false
		}
		cat = append(cat, rec)
		index++
		return true
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return cat, nil
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return cat, nil
}

func parseRecord(entry gjson.Result) (Record, error) {
	category, err := ParseCategory(entry.Get("category").String())
	if err != nil {
		return Record{}, err
	}

	name := entry.Get("name").String()
	if name == "" {
		return Record{}, ErrMissingName
	}

	var decl Decl
	switch kind := entry.Get("type").String(); kind {
	case "Function":
		decl = Function{
			Name:        name,
			ReturnType:  entry.Get("return_type").String(),
			Parameters:  stringSlice(entry.Get("parameters")),
			Description: entry.Get("description").String(),
		}
	case "Typedef":
		decl = Typedef{
			Name:   name,
			Tokens: stringSlice(entry.Get("typedef")),
		}
	case "Define":
		decl = Define{
			Name:  name,
			Value: entry.Get("value").String(),
		}
	case "Struct":
		decl = Struct{
			Name:   name,
			Fields: fieldSlice(entry.Get("fields")),
		}
	case "Union":
		decl = Union{
			Name:   name,
			Fields: fieldSlice(entry.Get("fields")),
		}
	case "Enum":
		decl = Enum{
			Name:    name,
			Members: memberSlice(entry.Get("fields")),
		}
	default:
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return Record{Category: category, Decl: decl}, nil
}

func stringSlice(arr gjson.Result) []string {
	var out []string
	arr.ForEach(func(_, v gjson.Result) bool {
		out = append(out, v.String())
		return true
	})
	return out
}

func fieldSlice(arr gjson.Result) []Field {
	var out []Field
	arr.ForEach(func(_, v gjson.Result) bool {
		out = append(out, Field{
			Name: v.Get("name").String(),
			Type: v.Get("type").String(),
		})
		return true
	})
	return out
}

func memberSlice(arr gjson.Result) []EnumMember {
	var out []EnumMember
	arr.ForEach(func(_, v gjson.Result) bool {
		member := EnumMember{Name: v.Get("name").String()}
		if init := v.Get("init"); init.Exists() && init.Type != gjson.Null {
			value := init.Uint()
			member.Init = &value
		}
		out = append(out, member)
		return true
	})
	return out
}

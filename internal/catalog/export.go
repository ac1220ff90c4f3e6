package catalog

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// ExportJSON renders a single record in the same JSON shape the loader
// accepts, for machine-readable CLI output.
func ExportJSON(r Record) (string, error) {
	out, err := sjson.Set("{}", "category", r.Category.String())
	if err != nil {
		return "", fmt.Errorf("export record: %w", err)
	}

	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.Set(out, path, value)
	}

	switch d := r.Decl.(type) {
	case Function:
		set("type", "Function")
		set("name", d.Name)
		set("return_type", d.ReturnType)
		set("parameters", d.Parameters)
		set("description", d.Description)
	case Typedef:
		set("type", "Typedef")
		set("name", d.Name)
		set("typedef", d.Tokens)
	case Define:
		set("type", "Define")
		set("name", d.Name)
		set("value", d.Value)
	case Struct:
		set("type", "Struct")
		set("name", d.Name)
		set("fields", d.Fields)
	case Union:
		set("type", "Union")
		set("name", d.Name)
		set("fields", d.Fields)
	case Enum:
		set("type", "Enum")
		set("name", d.Name)
		set("fields", d.Members)
	}
	if err != nil {
		return "", fmt.Errorf("export record: %w", err)
	}
	return out, nil
}

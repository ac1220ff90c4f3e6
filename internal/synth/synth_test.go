package synth

import (
	"strings"
	"testing"

	"github.com/Yeint-herp/ntdoc/internal/catalog"
)

func TestRawFunction(t *testing.T) {
	rec := catalog.Record{
		Category: catalog.CategoryNt,
		Decl: catalog.Function{
			Name:       "NtClose",
			ReturnType: "NTSTATUS",
			Parameters: []string{"HANDLE Handle"},
		},
	}
	want := "NTSTATUS NtClose(HANDLE Handle);"
	if got := Raw(rec, nil); got != want {
		t.Errorf("Raw = %q, want %q", got, want)
	}
}

func TestRawFunctionNoParameters(t *testing.T) {
	rec := catalog.Record{
		Decl: catalog.Function{Name: "NtYieldExecution", ReturnType: "NTSTATUS"},
	}
	want := "NTSTATUS NtYieldExecution();"
	if got := Raw(rec, nil); got != want {
		t.Errorf("Raw = %q, want %q", got, want)
	}
}

func TestRawDefine(t *testing.T) {
	rec := catalog.Record{
		Category: catalog.CategoryWin32,
		Decl:     catalog.Define{Name: "MAX_PATH", Value: "260"},
	}
	want := "#define MAX_PATH 260"
	if got := Raw(rec, nil); got != want {
		t.Errorf("Raw = %q, want %q", got, want)
	}
}

func TestRawTypedef(t *testing.T) {
	rec := catalog.Record{
		Decl: catalog.Typedef{Name: "PUNICODE_STRING", Tokens: []string{"struct", "_UNICODE_STRING", "*"}},
	}
	want := "typedef struct _UNICODE_STRING * PUNICODE_STRING;"
	if got := Raw(rec, nil); got != want {
		t.Errorf("Raw = %q, want %q", got, want)
	}
}

func TestRawStructAliasFromTypedef(t *testing.T) {
	structRec := catalog.Record{
		Decl: catalog.Struct{
			Name: "_FOO",
			Fields: []catalog.Field{
				{Name: "Value", Type: "ULONG"},
			},
		},
	}
	cat := catalog.Catalog{
		{Decl: catalog.Typedef{Name: "FOO", Tokens: []string{"struct", "_FOO"}}},
		{Decl: catalog.Typedef{Name: "PFOO", Tokens: []string{"struct", "_FOO", "*"}}},
		structRec,
	}

	want := "typedef struct __FOO {\n" +
		"    ULONG Value;\n" +
		"} FOO, *PFOO;"
	if got := Raw(structRec, cat); got != want {
		t.Errorf("Raw =\n%s\nwant\n%s", got, want)
	}
}

// The first typedef in catalog order naming the struct wins.
func TestRawStructAliasFirstTypedefWins(t *testing.T) {
	structRec := catalog.Record{
		Decl: catalog.Struct{Name: "_BAR", Fields: nil},
	}
	cat := catalog.Catalog{
		{Decl: catalog.Typedef{Name: "PBAR", Tokens: []string{"_BAR", "*"}}},
		{Decl: catalog.Typedef{Name: "BAR", Tokens: []string{"_BAR"}}},
		structRec,
	}

	got := Raw(structRec, cat)
	if !strings.HasSuffix(got, "} PBAR, *PPBAR;") {
		t.Errorf("expected first typedef's name as alias, got %q", got)
	}
}

func TestRawStructAliasFallbackStripsOneUnderscore(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"_FOO", "} FOO, *PFOO;"},
		{"__FOO", "} _FOO, *P_FOO;"}, // at most one underscore removed
		{"FOO", "} FOO, *PFOO;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := catalog.Record{Decl: catalog.Struct{Name: tt.name}}
			got := Raw(rec, nil)
			if !strings.HasSuffix(got, tt.want) {
				t.Errorf("Raw = %q, want suffix %q", got, tt.want)
			}
		})
	}
}

func TestRawUnion(t *testing.T) {
	rec := catalog.Record{
		Decl: catalog.Union{
			Name: "LARGE_INTEGER",
			Fields: []catalog.Field{
				{Name: "LowPart", Type: "ULONG"},
				{Name: "QuadPart", Type: "LONGLONG"},
			},
		},
	}
	want := "union LARGE_INTEGER {\n" +
		"    ULONG LowPart;\n" +
		"    LONGLONG QuadPart;\n" +
		"};"
	if got := Raw(rec, nil); got != want {
		t.Errorf("Raw =\n%s\nwant\n%s", got, want)
	}
}

func TestRawEnum(t *testing.T) {
	zero := uint64(0)
	rec := catalog.Record{
		Decl: catalog.Enum{
			Name: "IGNORED",
			Members: []catalog.EnumMember{
				{Name: "A", Init: &zero},
				{Name: "B"},
			},
		},
	}
	want := "enum {\n" +
		"    A = 0,\n" +
		"    B,\n" +
		"};"
	if got := Raw(rec, nil); got != want {
		t.Errorf("Raw =\n%s\nwant\n%s", got, want)
	}
}

func TestRawDeterministic(t *testing.T) {
	cat, err := catalog.Embedded()
	if err != nil {
		t.Fatalf("Embedded returned error: %v", err)
	}
	for _, rec := range cat {
		first := Raw(rec, cat)
		second := Raw(rec, cat)
		if first != second {
			t.Errorf("Raw(%s) not deterministic", rec.Name())
		}
	}
}

func TestPrettyFunction(t *testing.T) {
	rec := catalog.Record{
		Category: catalog.CategoryNt,
		Decl: catalog.Function{
			Name:        "NtClose",
			ReturnType:  "NTSTATUS",
			Parameters:  []string{"HANDLE Handle"},
			Description: "Closes an object handle.",
		},
	}

	got := Pretty(rec, nil)
	want := "Category: Nt\n\n" +
		"Function `NtClose`\n" +
		"Signature: NTSTATUS NtClose(HANDLE Handle);\n\n" +
		"Description:\nCloses an object handle.\n"
	if got != want {
		t.Errorf("Pretty =\n%q\nwant\n%q", got, want)
	}
}

func TestPrettyDefine(t *testing.T) {
	rec := catalog.Record{
		Category: catalog.CategoryWin32,
		Decl:     catalog.Define{Name: "MAX_PATH", Value: "260"},
	}

	got := Pretty(rec, nil)
	want := "Category: Win32\n\n" +
		"Define `MAX_PATH`\n\n" +
		"#define MAX_PATH 260\n"
	if got != want {
		t.Errorf("Pretty =\n%q\nwant\n%q", got, want)
	}
}

func TestPrettyEnumAnonymous(t *testing.T) {
	rec := catalog.Record{
		Category: catalog.CategoryNt,
		Decl:     catalog.Enum{Name: "EVENT_TYPE", Members: []catalog.EnumMember{{Name: "NotificationEvent"}}},
	}

	got := Pretty(rec, nil)
	if !strings.HasPrefix(got, "Category: Nt\n\nEnum\n\n") {
		t.Errorf("enum title should be a bare Enum label, got %q", got)
	}
	if strings.Contains(got, "`EVENT_TYPE`") {
		t.Errorf("enum rendering must not name the type, got %q", got)
	}
}

func TestPrettyStructEmbedsRaw(t *testing.T) {
	cat, err := catalog.Embedded()
	if err != nil {
		t.Fatalf("Embedded returned error: %v", err)
	}

	for _, rec := range cat {
		switch rec.Decl.(type) {
		case catalog.Struct, catalog.Union, catalog.Enum:
			pretty := Pretty(rec, cat)
			if !strings.Contains(pretty, Raw(rec, cat)) {
				t.Errorf("Pretty(%s) should embed the raw definition", rec.Name())
			}
		}
	}
}

package catalog

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"Nt", CategoryNt},
		{"NT", CategoryNt},
		{"NT Native API", CategoryNt},
		{"Win32", CategoryWin32},
		{"Win32 API", CategoryWin32},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if err != nil {
				t.Fatalf("ParseCategory(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCategoryUnknown(t *testing.T) {
	if _, err := ParseCategory("Posix"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestCategoryString(t *testing.T) {
	if got := CategoryNt.String(); got != "Nt" {
		t.Errorf("CategoryNt.String() = %q, want %q", got, "Nt")
	}
	if got := CategoryWin32.String(); got != "Win32" {
		t.Errorf("CategoryWin32.String() = %q, want %q", got, "Win32")
	}
}

func TestRecordName(t *testing.T) {
	tests := []struct {
		kind string
		rec  Record
		want string
	}{
		{"function", Record{Decl: Function{Name: "NtOpenFile"}}, "NtOpenFile"},
		{"typedef", Record{Decl: Typedef{Name: "HANDLE"}}, "HANDLE"},
		{"define", Record{Decl: Define{Name: "MAX_PATH"}}, "MAX_PATH"},
		{"struct", Record{Decl: Struct{Name: "_IO_STATUS_BLOCK"}}, "_IO_STATUS_BLOCK"},
		{"union", Record{Decl: Union{Name: "LARGE_INTEGER"}}, "LARGE_INTEGER"},
		{"enum", Record{Decl: Enum{Name: "KWAIT_REASON"}}, "KWAIT_REASON"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			if got := tt.rec.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

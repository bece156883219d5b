package parser

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestElementKindKey(t *testing.T) {
	tests := []struct {
		elem *Element
		want string
	}{
		{&Element{Kind: ElementDefinition, Category: "part"}, "part_def"},
		{&Element{Kind: ElementUsage, Category: "part"}, "part"},
		{&Element{Kind: ElementDefinition, Category: "use_case"}, "use_case_def"},
		{&Element{Kind: ElementPackage, Category: "package"}, "package"},
		{&Element{Kind: ElementImport, Category: "import"}, "import"},
	}
	for _, tt := range tests {
		if got := tt.elem.KindKey(); got != tt.want {
			t.Errorf("KindKey() = %q, want %q", got, tt.want)
		}
	}
}

func TestElementHasDoc(t *testing.T) {
	if (&Element{Doc: "   "}).HasDoc() {
		t.Error("whitespace-only doc should not count")
	}
	if !(&Element{Doc: "The vehicle."}).HasDoc() {
		t.Error("non-empty doc should count")
	}
}

func TestFileWalkOrder(t *testing.T) {
	file := Parse([]byte("package P { part def A { part b; } part def C; }"), "test.sysml")

	var names []string
	file.Walk(func(e, parent *Element) {
		names = append(names, e.Name)
	})
	want := []string{"P", "A", "b", "C"}
	if len(names) != len(want) {
		t.Fatalf("visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("visited %v, want %v", names, want)
		}
	}
}

func TestElementStringDump(t *testing.T) {
	file := Parse([]byte("part def Vehicle { part engine : Engine; }"), "test.sysml")
	dump := file.Elements[0].String()

	if !strings.Contains(dump, "Definition(part) Vehicle") {
		t.Errorf("dump missing definition line:\n%s", dump)
	}
	if !strings.Contains(dump, "Usage(part) engine : Engine") {
		t.Errorf("dump missing usage line:\n%s", dump)
	}
}

func TestFileMarshalJSON(t *testing.T) {
	file := Parse([]byte("part def vehicle_model {"), "test.sysml")
	data, err := json.Marshal(file)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded struct {
		Path     string `json:"path"`
		Elements []struct {
			Kind     string `json:"kind"`
			Category string `json:"category"`
			Name     string `json:"name"`
			HasBody  bool   `json:"hasBody"`
		} `json:"elements"`
		Diagnostics []struct {
			Code     string `json:"code"`
			Severity string `json:"severity"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Path != "test.sysml" {
		t.Errorf("path = %q", decoded.Path)
	}
	if len(decoded.Elements) != 1 || decoded.Elements[0].Kind != "Definition" ||
		decoded.Elements[0].Name != "vehicle_model" || !decoded.Elements[0].HasBody {
		t.Errorf("elements = %+v", decoded.Elements)
	}
	if len(decoded.Diagnostics) != 1 || decoded.Diagnostics[0].Code != "syntax" ||
		decoded.Diagnostics[0].Severity != "error" {
		t.Errorf("diagnostics = %+v", decoded.Diagnostics)
	}
}

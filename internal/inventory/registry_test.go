package inventory

import "testing"

func TestDefaultRegistryNames(t *testing.T) {
	reg := DefaultRegistry()
	d, ok := reg.LookupByName("apple")
	if !ok || d.Type != Apple {
		t.Fatalf("expected apple lookup to resolve, got %+v ok=%v", d, ok)
	}
	if reg.Name(Bread) != "Bread" {
		t.Fatalf("unexpected name %q", reg.Name(Bread))
	}
	if reg.Name(ItemType(42)) != "Item(42)" {
		t.Fatalf("unexpected fallback name %q", reg.Name(ItemType(42)))
	}
	var nilReg *Registry
	if nilReg.Name(Apple) != "Apple" {
		t.Fatalf("nil registry should fall back to String")
	}
}

func TestRegistryAssignsIDs(t *testing.T) {
	reg := DefaultRegistry()
	if err := reg.RegisterDetails(ItemDetails{Name: "Fish", Category: "food"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	fish, ok := reg.LookupByName("FISH")
	if !ok {
		t.Fatalf("fish not found")
	}
	if fish.Type != Bread+1 {
		t.Fatalf("expected fish to get type %d, got %d", Bread+1, fish.Type)
	}
	// Re-registering by name keeps the assigned type.
	if err := reg.RegisterDetails(ItemDetails{Name: "fish", Description: "fresh"}); err != nil {
		t.Fatalf("re-register: %v", err)
	}
	again, _ := reg.LookupByName("fish")
	if again.Type != fish.Type || again.Description != "fresh" {
		t.Fatalf("unexpected details after update: %+v", again)
	}
	if got := len(reg.Export()); got != 3 {
		t.Fatalf("expected 3 exported items, got %d", got)
	}
}

func TestRegistryRejectsConflicts(t *testing.T) {
	reg := DefaultRegistry()
	if err := reg.RegisterDetails(ItemDetails{Type: Apple, Name: "Pear"}); err == nil {
		t.Fatalf("expected type collision error")
	}
	if err := reg.RegisterDetails(ItemDetails{Type: 9, Name: "apple"}); err == nil {
		t.Fatalf("expected name collision error")
	}
	if err := reg.RegisterDetails(ItemDetails{Name: "  "}); err == nil {
		t.Fatalf("expected missing name error")
	}
	if err := reg.RegisterDetails(ItemDetails{Type: -1, Name: "neg"}); err == nil {
		t.Fatalf("expected negative type error")
	}
}

func TestRegistrySkipsExplicitIDs(t *testing.T) {
	reg := NewRegistry(ItemDetails{Type: 5, Name: "Gem"})
	if err := reg.RegisterDetails(ItemDetails{Name: "Ore"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	ore, _ := reg.LookupByName("ore")
	if ore.Type != 6 {
		t.Fatalf("expected ore to follow explicit id, got %d", ore.Type)
	}
	exported := reg.Export()
	if exported[0].Name != "Gem" || exported[1].Name != "Ore" {
		t.Fatalf("export not sorted by type: %+v", exported)
	}
}

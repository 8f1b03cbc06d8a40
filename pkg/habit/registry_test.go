package habit

import (
	"reflect"
	"testing"
)

func TestRegistryAppendRename(t *testing.T) {
	var r Registry
	if _, ok := r.Append("   "); ok {
		t.Fatalf("blank name appended")
	}
	i, ok := r.Append("  Read  ")
	if !ok || i != 0 {
		t.Fatalf("Append = %d, %v", i, ok)
	}
	last, _ := r.Append("Run")
	if last != 1 {
		t.Fatalf("second index = %d", last)
	}

	if !r.Rename(last, "X") {
		t.Fatalf("Rename(last) failed")
	}
	if r.Len() != 2 {
		t.Fatalf("Len = %d after rename", r.Len())
	}
	if name, _ := r.Name(last); name != "X" {
		t.Fatalf("last = %q", name)
	}

	if r.Rename(last, "\t") {
		t.Fatalf("blank rename accepted")
	}
	if r.Rename(5, "Y") || r.Rename(-1, "Y") {
		t.Fatalf("out of range rename accepted")
	}
	if want := []string{"Read", "X"}; !reflect.DeepEqual(r.Names(), want) {
		t.Fatalf("Names = %v, want %v", r.Names(), want)
	}
}

func TestRegistryDelete(t *testing.T) {
	var r Registry
	for _, n := range []string{"a", "b", "c"} {
		r.Append(n)
	}
	if r.Delete(3) || r.Delete(-1) {
		t.Fatalf("out of range delete accepted")
	}
	if !r.Delete(1) {
		t.Fatalf("Delete(1) failed")
	}
	if want := []string{"a", "c"}; !reflect.DeepEqual(r.Names(), want) {
		t.Fatalf("Names = %v, want %v", r.Names(), want)
	}
}

func TestRegistryNamesIsCopy(t *testing.T) {
	var r Registry
	r.Append("a")
	names := r.Names()
	names[0] = "mutated"
	if n, _ := r.Name(0); n != "a" {
		t.Fatalf("registry mutated through Names: %q", n)
	}
}

package catalog

import (
	"errors"
	"strings"
	"testing"
)

var errMissing = errors.New("test: missing")

func TestCatalogOrder(t *testing.T) {
	c := New[int]("number", errMissing)
	c.Register("three", 3)
	c.Register("one", 1)
	c.Register("two", 2)

	want := []string{"three", "one", "two"}
	for round := 0; round < 3; round++ {
		got := c.Names()
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Fatalf("round %d: names = %v, want %v", round, got, want)
		}
	}
}

func TestCatalogRedefinitionKeepsPosition(t *testing.T) {
	c := New[int]("number", errMissing)
	c.Register("a", 1)
	c.Register("b", 2)
	c.Register("a", 10)

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	v, err := c.Lookup("a")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if v != 10 {
		t.Errorf("expected overwritten value 10, got %d", v)
	}
	if names := c.Names(); names[0] != "a" {
		t.Errorf("expected a to stay first, got %v", names)
	}
}

func TestCatalogNamesIsCopy(t *testing.T) {
	c := New[string]("word", errMissing)
	c.Register("x", "x")
	names := c.Names()
	names[0] = "mutated"
	if c.Names()[0] != "x" {
		t.Error("Names must not expose internal storage")
	}
}

func TestCatalogLookupUnknown(t *testing.T) {
	c := New[int]("number", errMissing)
	c.Register("one", 1)
	c.Register("two", 2)

	_, err := c.Lookup("three")
	if err == nil {
		t.Fatal("expected error for unknown name")
	}
	if !errors.Is(err, errMissing) {
		t.Errorf("expected error to unwrap to sentinel, got %v", err)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if nf.Name != "three" || nf.Kind != "number" {
		t.Errorf("unexpected error fields: %+v", nf)
	}
	if len(nf.Available) != 2 {
		t.Errorf("expected available names in error, got %v", nf.Available)
	}
	if !strings.Contains(err.Error(), "one, two") {
		t.Errorf("error message should list names: %s", err.Error())
	}
}

func TestCatalogHas(t *testing.T) {
	c := New[int]("number", errMissing)
	c.Register("one", 1)
	if !c.Has("one") || c.Has("two") {
		t.Error("Has returned wrong result")
	}
}

package registry

import (
	"context"
	"testing"
)

func TestRegistry_Register_Resolve(t *testing.T) {
	defer Unregister("testSlugHint")

	Register("testSlugHint", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{"slug": args["slug"]}, nil
	})

	got, err := Resolve(context.Background(), "testSlugHint", map[string]interface{}{"slug": "rug-blue"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	m, ok := got.(map[string]interface{})
	if !ok || m["slug"] != "rug-blue" {
		t.Errorf("got %v, want map[slug:rug-blue]", got)
	}
}

func TestRegistry_Resolve_Unknown(t *testing.T) {
	_, err := Resolve(context.Background(), "nonexistent", nil)
	if err == nil {
		t.Fatal("want error for unknown extension")
	}
}

func TestRegistry_Names_Sorted(t *testing.T) {
	defer Unregister("zeta")
	defer Unregister("alpha")
	Register("zeta", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })
	Register("alpha", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })

	var got []string
	for _, n := range Names() {
		if n == "alpha" || n == "zeta" {
			got = append(got, n)
		}
	}
	if len(got) != 2 || got[0] != "alpha" || got[1] != "zeta" {
		t.Errorf("Names() = %v, want alpha before zeta", got)
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	defer Unregister("dup")
	Register("dup", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register: want panic")
		}
	}()
	Register("dup", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })
}

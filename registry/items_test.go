package registry

import "testing"

func TestDamageLookup(t *testing.T) {
	t.Parallel()

	r := Default()

	cases := []struct {
		item string
		want int
	}{
		{"tomato", 10},
		{"watermelon", 25},
		{"cake", 30},
		{"mystery-meat", DefaultDamage},
		{"", DefaultDamage},
	}

	for _, tc := range cases {
		if got := r.Damage(tc.item); got != tc.want {
			t.Fatalf("Damage(%q) = %d, want %d", tc.item, got, tc.want)
		}
	}
}

func TestLoadYAMLReplacesTable(t *testing.T) {
	t.Parallel()

	r := Default()

	doc := []byte(`
items:
  - name: durian
    damage: 40
    model: models/durian.glb
    scale: 1.5
  - name: grape
    damage: 2
    consumable: true
    heal: 5
`)
	if err := r.LoadYAML(doc); err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}

	if got := r.Damage("durian"); got != 40 {
		t.Fatalf("durian damage = %d, want 40", got)
	}
	// Built-ins are gone after a full replace.
	if _, ok := r.Lookup("tomato"); ok {
		t.Fatalf("tomato should not survive a table replace")
	}
	// Unspecified scale defaults to 1.
	grape, ok := r.Lookup("grape")
	if !ok {
		t.Fatalf("grape missing after load")
	}
	if grape.Scale != 1.0 {
		t.Fatalf("grape scale = %v, want 1.0", grape.Scale)
	}
}

func TestLoadYAMLKeepsLastGoodTableOnError(t *testing.T) {
	t.Parallel()

	r := Default()
	before := r.Len()

	bad := [][]byte{
		[]byte(`items: [`),                              // malformed YAML
		[]byte(`items: []`),                             // empty table
		[]byte("items:\n  - damage: 5\n"),               // missing name
		[]byte("items:\n  - name: rock\n    damage: -1"), // negative damage
	}

	for i, doc := range bad {
		if err := r.LoadYAML(doc); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}

	if r.Len() != before {
		t.Fatalf("table changed after failed loads: %d -> %d", before, r.Len())
	}
	if got := r.Damage("tomato"); got != 10 {
		t.Fatalf("tomato damage after failed loads = %d, want 10", got)
	}
}

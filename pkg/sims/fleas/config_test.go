package fleas

import "testing"

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"size":      "12",
		"steps":     "0",
		"trials":    "7",
		"seed":      "-5",
		"visualize": "true",
	})
	want := Config{Size: 12, Steps: 0, Trials: 7, Seed: -5, Visualize: true}
	if c != want {
		t.Fatalf("FromMap = %+v, want %+v", c, want)
	}
}

func TestFromMapKeepsDefaultsOnBadValues(t *testing.T) {
	c := FromMap(map[string]string{"size": "-1", "steps": "x", "trials": "0"})
	if c != DefaultConfig() {
		t.Fatalf("FromMap = %+v, want defaults", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map must yield defaults")
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Size != 30 || c.Steps != 50 || c.Trials != 200 || c.Seed != 42 || c.Visualize {
		t.Fatalf("DefaultConfig = %+v", c)
	}
	if c.Cells() != 900 {
		t.Fatalf("Cells = %d", c.Cells())
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
}

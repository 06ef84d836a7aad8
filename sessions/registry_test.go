package sessions

import (
	"testing"

	"riglogger/dataformats"
)

func Test_RegistryOverwrite(t *testing.T) {
	registry := NewRegistry()
	registry.Put(0.3, []dataformats.Measurement{{Force: 1}, {Force: 2}})
	registry.Put(0.3, []dataformats.Measurement{{Force: 9}})
	if registry.Sessions() != 1 {
		t.Fatal("Wrong session count after re-lock")
	}
	points := registry.Records(0.3)
	if len(points) != 1 || points[0].Force != 9 {
		t.Fatal("Wrong record content after re-lock")
	}
}

func Test_RegistryEmptySkipped(t *testing.T) {
	registry := NewRegistry()
	if registry.Put(0.3, nil) {
		t.Fatal("Wrong registration of an empty record")
	}
	if !registry.Empty() {
		t.Fatal("Wrong registry state after skipped record")
	}
	registry.Put(0.3, []dataformats.Measurement{{Force: 1}})
	registry.Put(0.3, nil)
	if len(registry.Records(0.3)) != 1 {
		t.Fatal("Wrong overwrite by an empty record")
	}
}

func Test_RegistryOrder(t *testing.T) {
	registry := NewRegistry()
	registry.Put(0.5, []dataformats.Measurement{{Force: 1}})
	registry.Put(0.1, []dataformats.Measurement{{Force: 2}})
	registry.Put(0.3, []dataformats.Measurement{{Force: 3}})
	keys := registry.Pressures()
	if len(keys) != 3 || keys[0] != 0.1 || keys[1] != 0.3 || keys[2] != 0.5 {
		t.Fatal("Wrong pressure ordering")
	}
}

func Test_RegistryCounts(t *testing.T) {
	registry := NewRegistry()
	registry.Put(0.1, []dataformats.Measurement{{Force: 1}, {Force: 2}})
	registry.Put(0.2, []dataformats.Measurement{{Force: 3}})
	if registry.Sessions() != 2 || registry.Samples() != 3 {
		t.Fatal("Wrong registry totals")
	}
}

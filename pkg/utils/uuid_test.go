package utils

import (
	"strings"
	"testing"
)

func TestGenerateOrderID(t *testing.T) {
	id := GenerateOrderID()

	if !strings.HasPrefix(id, "OBJ-") {
		t.Errorf("order id must start with OBJ-, got %q", id)
	}
	if id != strings.ToUpper(id) {
		t.Errorf("order id must be uppercase, got %q", id)
	}
	if len(id) != len("OBJ-")+36 {
		t.Errorf("order id must carry a full UUID, got %q", id)
	}

	if GenerateOrderID() == id {
		t.Error("consecutive order ids must differ")
	}
}

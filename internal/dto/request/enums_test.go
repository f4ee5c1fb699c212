package request

import "testing"

func TestValidState(t *testing.T) {
	if !ValidState("CA") {
		t.Error("ValidState(CA) = false, want true")
	}
	if ValidState("ZZ") {
		t.Error("ValidState(ZZ) = true, want false")
	}
	if ValidState("ca") {
		t.Error("ValidState(ca) = true: codes are uppercase only")
	}
}

func TestValidGenre(t *testing.T) {
	for _, g := range []string{"Jazz", "Hip-Hop", "Rock n Roll", "Other"} {
		if !ValidGenre(g) {
			t.Errorf("ValidGenre(%s) = false, want true", g)
		}
	}
	if ValidGenre("Polka") {
		t.Error("ValidGenre(Polka) = true, want false")
	}
}

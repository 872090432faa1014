package states

import "testing"

func TestValid(t *testing.T) {
	for _, c := range []string{"CA", "TX", "FL", "NY"} {
		if !Valid(c) {
			t.Errorf("Valid(%s) = false", c)
		}
	}
	for _, c := range []string{"ca", "WA", "XX", ""} {
		if Valid(c) {
			t.Errorf("Valid(%q) = true", c)
		}
	}
}

func TestList(t *testing.T) {
	list := List()
	if len(list) != 4 {
		t.Fatalf("len = %d, want 4", len(list))
	}
	if list[0].Code != "CA" || list[0].Name != "California" {
		t.Errorf("first state = %+v", list[0])
	}
}

func TestReferenceDataComplete(t *testing.T) {
	for _, c := range Codes {
		req, ok := ByCode(c)
		if !ok {
			t.Fatalf("no requirements for %s", c)
		}
		if req.Name == "" || req.MinAge == 0 || len(req.RequiredDocuments) == 0 {
			t.Errorf("%s requirements incomplete: %+v", c, req)
		}
		locs, ok := LocationsByCode(c)
		if !ok || len(locs) == 0 {
			t.Fatalf("no locations for %s", c)
		}
		for _, l := range locs {
			if l.Name == "" || l.Address == "" || l.City == "" || l.ZipCode == "" {
				t.Errorf("%s location incomplete: %+v", c, l)
			}
		}
	}
}

func TestByCodeUnknown(t *testing.T) {
	if _, ok := ByCode("WA"); ok {
		t.Error("unknown state returned requirements")
	}
	if _, ok := LocationsByCode("WA"); ok {
		t.Error("unknown state returned locations")
	}
}

package request

import (
	"net/url"
	"testing"

	"fyyur/pkg/utils"
)

func validVenueValues() url.Values {
	return url.Values{
		"name":                {"The Musical Hop"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"address":             {"1015 Folsom Street"},
		"phone":               {"123-123-1234"},
		"image_link":          {"https://example.com/hop.jpg"},
		"facebook_link":       {"https://www.facebook.com/TheMusicalHop"},
		"website_link":        {"https://themusicalhop.com"},
		"genres":              {"Jazz", "Folk"},
		"seeking_talent":      {"y"},
		"seeking_description": {"We are on the lookout for a local artist."},
	}
}

func TestVenueFormFromValues(t *testing.T) {
	form := VenueFormFromValues(validVenueValues())

	if form.Name != "The Musical Hop" {
		t.Errorf("Name = %q", form.Name)
	}
	if len(form.Genres) != 2 || form.Genres[0] != "Jazz" {
		t.Errorf("Genres = %v, want [Jazz Folk]", form.Genres)
	}
	if !form.SeekingTalent {
		t.Error("SeekingTalent = false, want true: checkbox was present")
	}
}

func TestVenueForm_CheckboxAbsentMeansFalse(t *testing.T) {
	values := validVenueValues()
	values.Del("seeking_talent")

	form := VenueFormFromValues(values)
	if form.SeekingTalent {
		t.Error("SeekingTalent = true, want false when checkbox absent")
	}
}

func TestVenueForm_ValidPasses(t *testing.T) {
	form := VenueFormFromValues(validVenueValues())
	if errs := utils.ValidateStruct(form); len(errs) > 0 {
		t.Errorf("ValidateStruct = %v, want no errors", errs)
	}
}

func TestVenueForm_Validation(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(url.Values)
		wantField string
	}{
		{"missing name", func(v url.Values) { v.Set("name", "") }, "Name"},
		{"missing city", func(v url.Values) { v.Set("city", "") }, "City"},
		{"missing address", func(v url.Values) { v.Set("address", "") }, "Address"},
		{"unknown state", func(v url.Values) { v.Set("state", "XX") }, "State"},
		{"lowercase state", func(v url.Values) { v.Set("state", "ca") }, "State"},
		{"bad phone", func(v url.Values) { v.Set("phone", "not-a-phone") }, "Phone"},
		{"bad image url", func(v url.Values) { v.Set("image_link", "notaurl") }, "ImageLink"},
		{"bad website url", func(v url.Values) { v.Set("website_link", "notaurl") }, "WebsiteLink"},
		{"non-facebook link", func(v url.Values) { v.Set("facebook_link", "https://example.com/x") }, "FacebookLink"},
		{"no genres", func(v url.Values) { v.Del("genres") }, "Genres"},
		{"unknown genre", func(v url.Values) { v.Set("genres", "Polka") }, "Genres[0]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values := validVenueValues()
			tc.mutate(values)

			form := VenueFormFromValues(values)
			errs := utils.ValidateStruct(form)
			if len(errs) == 0 {
				t.Fatal("ValidateStruct returned no errors, want at least one")
			}
			if _, ok := errs[tc.wantField]; !ok {
				t.Errorf("errors = %v, want entry for %s", errs, tc.wantField)
			}
		})
	}
}

func TestVenueForm_OptionalFieldsMayBeEmpty(t *testing.T) {
	values := validVenueValues()
	values.Set("phone", "")
	values.Set("image_link", "")
	values.Set("facebook_link", "")
	values.Set("website_link", "")
	values.Set("seeking_description", "")

	form := VenueFormFromValues(values)
	if errs := utils.ValidateStruct(form); len(errs) > 0 {
		t.Errorf("ValidateStruct = %v, want no errors for empty optionals", errs)
	}
}

func TestPhonePatternSeparators(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"123-456-7890", true},
		{"123.456.7890", true},
		{"123 456 7890", true},
		{"1234567890", true},
		{"123-45-7890", false},
		{"phone", false},
		{"123-456-78901", false},
	}

	for _, tc := range cases {
		values := validVenueValues()
		values.Set("phone", tc.phone)
		errs := utils.ValidateStruct(VenueFormFromValues(values))
		_, hasErr := errs["Phone"]
		if hasErr == tc.ok {
			t.Errorf("phone %q: valid = %v, want %v", tc.phone, !hasErr, tc.ok)
		}
	}
}

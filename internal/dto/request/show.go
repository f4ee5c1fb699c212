package request

import (
	"net/url"
	"time"

	"fyyur/pkg/utils"
)

// Accepted start-time layouts: the datetime-local input format and the
// ISO-ish strings the original data set carries.
var startTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ShowForm carries the fields of the new-show form.
type ShowForm struct {
	ArtistID  string `validate:"required,uuid"`
	VenueID   string `validate:"required,uuid"`
	StartTime string `validate:"required"`
}

// ShowFormFromValues maps submitted form values onto a typed form.
func ShowFormFromValues(values url.Values) *ShowForm {
	return &ShowForm{
		ArtistID:  values.Get("artist_id"),
		VenueID:   values.Get("venue_id"),
		StartTime: values.Get("start_time"),
	}
}

// Validate runs the struct tags plus the start-time parse check, which
// tags cannot express across multiple layouts.
func (f *ShowForm) Validate() map[string]string {
	errs := utils.ValidateStruct(f)
	if f.StartTime != "" {
		if _, err := f.ParsedStartTime(); err != nil {
			if errs == nil {
				errs = make(map[string]string)
			}
			errs["StartTime"] = "Must be a valid date and time"
		}
	}
	return errs
}

// ParsedStartTime parses the submitted start time, trying each accepted
// layout in order.
func (f *ShowForm) ParsedStartTime() (time.Time, error) {
	var lastErr error
	for _, layout := range startTimeLayouts {
		t, err := time.Parse(layout, f.StartTime)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

package request

import "net/url"

// VenueForm carries the fields of the new-venue and edit-venue forms.
// Checkbox fields map to booleans via presence, matching HTML form
// submission semantics.
type VenueForm struct {
	Name               string   `validate:"required,max=120"`
	City               string   `validate:"required,max=120"`
	State              string   `validate:"required,usstate"`
	Address            string   `validate:"required,max=120"`
	Phone              string   `validate:"omitempty,phone"`
	ImageLink          string   `validate:"omitempty,url,max=500"`
	FacebookLink       string   `validate:"omitempty,url,facebookurl,max=120"`
	WebsiteLink        string   `validate:"omitempty,url,max=120"`
	Genres             []string `validate:"required,min=1,dive,genre"`
	SeekingTalent      bool
	SeekingDescription string
}

// VenueFormFromValues maps submitted form values onto a typed form.
func VenueFormFromValues(values url.Values) *VenueForm {
	return &VenueForm{
		Name:               values.Get("name"),
		City:               values.Get("city"),
		State:              values.Get("state"),
		Address:            values.Get("address"),
		Phone:              values.Get("phone"),
		ImageLink:          values.Get("image_link"),
		FacebookLink:       values.Get("facebook_link"),
		WebsiteLink:        values.Get("website_link"),
		Genres:             values["genres"],
		SeekingTalent:      values.Get("seeking_talent") != "",
		SeekingDescription: values.Get("seeking_description"),
	}
}

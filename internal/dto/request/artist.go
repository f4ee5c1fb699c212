package request

import "net/url"

// ArtistForm carries the fields of the new-artist and edit-artist forms.
type ArtistForm struct {
	Name               string   `validate:"required,max=120"`
	City               string   `validate:"required,max=120"`
	State              string   `validate:"required,usstate"`
	Phone              string   `validate:"omitempty,phone"`
	ImageLink          string   `validate:"omitempty,url,max=500"`
	FacebookLink       string   `validate:"omitempty,url,facebookurl,max=120"`
	WebsiteLink        string   `validate:"omitempty,url,max=120"`
	Genres             []string `validate:"required,min=1,dive,genre"`
	SeekingVenue       bool
	SeekingDescription string
}

// ArtistFormFromValues maps submitted form values onto a typed form.
func ArtistFormFromValues(values url.Values) *ArtistForm {
	return &ArtistForm{
		Name:               values.Get("name"),
		City:               values.Get("city"),
		State:              values.Get("state"),
		Phone:              values.Get("phone"),
		ImageLink:          values.Get("image_link"),
		FacebookLink:       values.Get("facebook_link"),
		WebsiteLink:        values.Get("website_link"),
		Genres:             values["genres"],
		SeekingVenue:       values.Get("seeking_venue") != "",
		SeekingDescription: values.Get("seeking_description"),
	}
}

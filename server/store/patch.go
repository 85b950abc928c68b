package store

import (
	"github.com/topi314/event-graph/internal/omit"
)

type EventPatch struct {
	Title      omit.Omit[string]
	Desc       omit.Omit[string]
	Date       omit.Omit[string]
	From       omit.Omit[string]
	To         omit.Omit[string]
	LocationID omit.Omit[ID]
	UserID     omit.Omit[ID]
}

// Apply merges every present field over event. Absent fields are kept.
func (p EventPatch) Apply(event Event) Event {
	event.Title = p.Title.Or(event.Title)
	event.Desc = p.Desc.Or(event.Desc)
	event.Date = p.Date.Or(event.Date)
	event.From = p.From.Or(event.From)
	event.To = p.To.Or(event.To)
	event.LocationID = p.LocationID.Or(event.LocationID)
	event.UserID = p.UserID.Or(event.UserID)
	return event
}

type LocationPatch struct {
	Name omit.Omit[string]
	Desc omit.Omit[string]
	Lat  omit.Omit[string]
	Lng  omit.Omit[string]
}

func (p LocationPatch) Apply(location Location) Location {
	location.Name = p.Name.Or(location.Name)
	location.Desc = p.Desc.Or(location.Desc)
	location.Lat = p.Lat.Or(location.Lat)
	location.Lng = p.Lng.Or(location.Lng)
	return location
}

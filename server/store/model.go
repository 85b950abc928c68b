package store

type Event struct {
	ID         ID     `json:"id" yaml:"id" db:"id"`
	Title      string `json:"title" yaml:"title" db:"title"`
	Desc       string `json:"desc" yaml:"desc" db:"description"`
	Date       string `json:"date" yaml:"date" db:"date"`
	From       string `json:"from" yaml:"from" db:"time_from"`
	To         string `json:"to" yaml:"to" db:"time_to"`
	LocationID ID     `json:"location_id" yaml:"location_id" db:"location_id"`
	UserID     ID     `json:"user_id" yaml:"user_id" db:"user_id"`
}

func (e Event) Key() ID { return e.ID }

type Location struct {
	ID   ID     `json:"id" yaml:"id" db:"id"`
	Name string `json:"name" yaml:"name" db:"name"`
	Desc string `json:"desc" yaml:"desc" db:"description"`
	Lat  string `json:"lat" yaml:"lat" db:"lat"`
	Lng  string `json:"lng" yaml:"lng" db:"lng"`
}

func (l Location) Key() ID { return l.ID }

type User struct {
	ID       ID     `json:"id" yaml:"id" db:"id"`
	Username string `json:"username" yaml:"username" db:"username"`
	Email    string `json:"email" yaml:"email" db:"email"`
	EventID  ID     `json:"event_id" yaml:"event_id" db:"event_id"`
}

func (u User) Key() ID { return u.ID }

type Participant struct {
	ID      ID `json:"id" yaml:"id" db:"id"`
	UserID  ID `json:"user_id" yaml:"user_id" db:"user_id"`
	EventID ID `json:"event_id" yaml:"event_id" db:"event_id"`
}

func (p Participant) Key() ID { return p.ID }

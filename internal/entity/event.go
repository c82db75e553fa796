package entity

type Event struct {
	ID        string `mapstructure:"-"`
	Name      string `mapstructure:"name"`
	Date      string `mapstructure:"date"`
	StartTime string `mapstructure:"startTime"`
	EndTime   string `mapstructure:"endTime"`
	Address   string `mapstructure:"address"`
	City      string `mapstructure:"city"`
	State     string `mapstructure:"state"`
	Zip       string `mapstructure:"zip"`
	Archived  bool   `mapstructure:"archived"`
	Hidden    bool   `mapstructure:"hidden"`

	// RawLocation and RawClient keep the stored shape; use Location and
	// ClientRef for the normalized values.
	RawLocation any `mapstructure:"location"`
	RawClient   any `mapstructure:"client"`
}

func (e *Event) Location() (Location, bool) {
	return DecodeLocation(e.RawLocation)
}

func (e *Event) ClientRef() ClientRef {
	return DecodeClientRef(e.RawClient)
}

package entity

// Review is a check-in document written by the mobile app when a user visits
// an event. The core only reads them for statistics.
type Review struct {
	ID           string `mapstructure:"-"`
	EventID      string `mapstructure:"event"`
	UserID       string `mapstructure:"user"`
	PointsEarned int64  `mapstructure:"pointsEarned"`
}

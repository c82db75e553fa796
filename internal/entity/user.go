package entity

type UserProfile struct {
	ID        string `mapstructure:"-"`
	AccountID string `mapstructure:"accountId"`
	Name      string `mapstructure:"name"`
	Points    int64  `mapstructure:"points"`
	Blocked   bool   `mapstructure:"blocked"`
	Role      string `mapstructure:"role"`

	RawFavorites any `mapstructure:"favorites"`
}

func (u *UserProfile) Favorites() []string {
	return DecodeStringList(u.RawFavorites)
}

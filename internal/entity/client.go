package entity

type Client struct {
	ID   string `mapstructure:"-"`
	Name string `mapstructure:"name"`
	Logo string `mapstructure:"logo"`
}

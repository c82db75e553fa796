package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	ApiServer ServerConfigs   `toml:"api_server"`
	DocStore  DocStoreConfigs `toml:"docstore"`
	Identity  IdentityConfigs `toml:"identity"`
	Redis     RedisConfigs    `toml:"redis"`
	Mobile    MobileConfigs   `toml:"mobile"`
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
	Cert string `toml:"cert"`
	Key  string `toml:"key"`
}

type DocStoreConfigs struct {
	Endpoint   string `toml:"endpoint"`
	ProjectID  string `toml:"project_id"`
	APIKey     string `toml:"api_key"`
	DatabaseID string `toml:"database_id"`

	Collections CollectionConfigs `toml:"collections"`
}

type CollectionConfigs struct {
	Events          string `toml:"events"`
	Clients         string `toml:"clients"`
	Trivia          string `toml:"trivia"`
	TriviaResponses string `toml:"trivia_responses"`
	Reviews         string `toml:"reviews"`
	Users           string `toml:"users"`
}

type IdentityConfigs struct {
	Endpoint  string `toml:"endpoint"`
	ProjectID string `toml:"project_id"`
	APIKey    string `toml:"api_key"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

type MobileConfigs struct {
	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`

	// Fetch caps keep a single request boundable. They are not correctness
	// guarantees, only a bound on total work per invocation.
	MaxEventFetch    int `toml:"max_event_fetch"`
	MaxTriviaFetch   int `toml:"max_trivia_fetch"`
	MaxResponseFetch int `toml:"max_response_fetch"`

	// Maximum number of values allowed in a single store filter.
	MaxQueryValues int `toml:"max_query_values"`

	// Page size used when walking the whole user collection.
	ProfilePageSize int `toml:"profile_page_size"`

	StatsCacheTTL time.Duration `toml:"stats_cache_ttl"`
}

// Load reads the TOML file at path, then applies environment overrides for
// secrets so they never have to live in the file.
func Load(path string) (*Configs, error) {
	configs := defaultConfigs()
	if path != "" {
		if _, err := toml.DecodeFile(path, configs); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		configs.ApiServer.Port = v
	}

	if v := os.Getenv("DOCSTORE_ENDPOINT"); v != "" {
		configs.DocStore.Endpoint = v
	}

	if v := os.Getenv("DOCSTORE_API_KEY"); v != "" {
		configs.DocStore.APIKey = v
	}

	if v := os.Getenv("IDENTITY_ENDPOINT"); v != "" {
		configs.Identity.Endpoint = v
	}

	if v := os.Getenv("IDENTITY_API_KEY"); v != "" {
		configs.Identity.APIKey = v
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		configs.Redis.Addr = v
	}

	return configs, nil
}

func defaultConfigs() *Configs {
	return &Configs{
		Env: "dev",
		ApiServer: ServerConfigs{
			Port: "8080",
		},
		DocStore: DocStoreConfigs{
			DatabaseID: "default",
			Collections: CollectionConfigs{
				Events:          "events",
				Clients:         "clients",
				Trivia:          "trivia",
				TriviaResponses: "trivia_responses",
				Reviews:         "reviews",
				Users:           "users",
			},
		},
		Mobile: MobileConfigs{
			DefaultPageSize:  10,
			MaxPageSize:      100,
			MaxEventFetch:    100,
			MaxTriviaFetch:   25,
			MaxResponseFetch: 100,
			MaxQueryValues:   25,
			ProfilePageSize:  100,
			StatsCacheTTL:    5 * time.Minute,
		},
	}
}

package config

// Storage backends selectable through ELO_STORAGE.
const (
	StorageCSV    = "csv"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Config holds all configuration for the application.
type Config struct {
	Storage       string  `env:"ELO_STORAGE" envDefault:"csv"`
	DataFile      string  `env:"ELO_DATA_FILE" envDefault:"data/players.csv"`
	KFactor       float64 `env:"ELO_K_FACTOR" envDefault:"32"`
	InitialRating float64 `env:"ELO_INITIAL_RATING" envDefault:"1200"`
	Seed          uint64  `env:"ELO_SEED" envDefault:"0"`
	DBName        string  `env:"DB_NAME" envDefault:"ladder.db"`
	Port          string  `env:"PORT" envDefault:"8080"`
	DryRun        bool    `env:"DRY_RUN"`
	Turso         TursoConfig
	Redis         RedisConfig
	Slack         SlackConfig
	PubSub        PubSubConfig
	Log           LogConfig
}

type TursoConfig struct {
	PrimaryURL string `env:"TURSO_PRIMARY_URL"`
	AuthToken  string `env:"TURSO_AUTH_TOKEN"`
}

type RedisConfig struct {
	URL string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	Key string `env:"REDIS_KEY" envDefault:"elo:players"`
}

type SlackConfig struct {
	Token     string `env:"SLACK_BOT_TOKEN"`
	ChannelID string `env:"SLACK_CHANNEL_ID"`
}

// Enabled reports whether notifications should go to Slack.
func (s SlackConfig) Enabled() bool {
	return s.Token != "" && s.ChannelID != ""
}

type PubSubConfig struct {
	ProjectID string `env:"GCP_PROJECT"`
	Topic     string `env:"ELO_EVENTS_TOPIC" envDefault:"ladder-events"`
}

// Enabled reports whether events should be published.
func (p PubSubConfig) Enabled() bool {
	return p.ProjectID != ""
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

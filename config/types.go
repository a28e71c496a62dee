package config

type config struct {
	Server    server    `yaml:"server" mapstructure:"server"`
	Mysql     mysql     `yaml:"mysql" mapstructure:"mysql"`
	Redis     redis     `yaml:"redis" mapstructure:"redis"`
	Snowflake snowflake `yaml:"snowflake" mapstructure:"snowflake"`
	Policy    policy    `yaml:"policy" mapstructure:"policy"`
}

type server struct {
	Addr string `yaml:"addr"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

type snowflake struct {
	WorkerID int64 `yaml:"worker_id" mapstructure:"worker_id"`
}

// policy holds the behavior knobs that are deliberate configuration
// decisions rather than hard-coded rules.
type policy struct {
	// AllowSelfSubscription permits a channel owner to subscribe to
	// themselves. Off by default.
	AllowSelfSubscription bool `yaml:"allow_self_subscription" mapstructure:"allow_self_subscription"`
	// RecordRepeatWatchHistory appends to watch history on every view
	// instead of only the first counted one.
	RecordRepeatWatchHistory bool `yaml:"record_repeat_watch_history" mapstructure:"record_repeat_watch_history"`
}

package container

// Options holds the runtime configuration, populated by humacli from flags
// and environment variables.
type Options struct {
	Port            int    `default:"8888"              help:"Port to listen on"                                        short:"p"`
	DataFile        string `default:"data/stats.json"   help:"Path of the JSON event log"`
	AdminEmail      string `default:"admin@example.com" help:"Admin login email"`
	AdminPassword   string `default:"change-me"         help:"Admin login password (change in production)"`
	EventsTransport string `default:"channel"           enum:"channel,redis"                                            help:"Page-view event transport"`
	ConsumeEvents   bool   `default:"true"              help:"Run the store-appending event consumer in this process"`
	RedisAddr       string `default:"localhost:6379"    help:"Redis server address (redis transport only)"`
	PostgresURL     string `default:""                  help:"Postgres connection string; replaces the file store when set"`
	GeoDBPath       string `default:""                  help:"Path of a GeoLite2 country database; geo lookups are disabled when empty"`
	LogFormat       string `default:"console"           enum:"console,json"                                             help:"Log output format"`
}

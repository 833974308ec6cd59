package container

// Options configures the server and consumer processes. humacli binds each
// field to a flag and an environment variable.
type Options struct {
	Port        int    `default:"8888"           help:"Port to listen on"    short:"p"`
	RedisAddr   string `default:"localhost:6379" help:"Redis server address" short:"r"`
	AuthToken   string `help:"Bearer token required on /_api routes"`
	PostgresURL string `help:"Postgres URL for the analytics event store; events are logged only when empty"`
	LogFormat   string `default:"console"        enum:"console,json"         help:"Log output format"`
}

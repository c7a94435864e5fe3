package report

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to YAML config file (overrides CONFIG_FILE)"`
	Verbose bool   `long:"verbose" description:"Enable debug logging"`
}

// DashboardCommand prints the dashboard analytics of one owner.
type DashboardCommand struct {
	Owner  string `long:"owner" description:"Owner user id (required)"`
	Period string `long:"period" description:"Period: 1h | 24h | 7d | 30d | 90d | 6m | 1y" default:"30d"`
	Limit  int    `long:"limit" description:"Top-N size of ranked lists, 1..100 (0 = configured default)" default:"0"`
	Format string `long:"format" description:"Output format: json | csv" default:"json"`

	env *env
}

// URLCommand prints the analytics of a single link.
type URLCommand struct {
	ID     string `long:"id" description:"Link id (required)"`
	Owner  string `long:"owner" description:"Owner user id (required)"`
	Period string `long:"period" description:"Period: 1h | 24h | 7d | 30d | 90d | 6m | 1y" default:"30d"`
	Limit  int    `long:"limit" description:"Top-N size of ranked lists, 1..100 (0 = configured default)" default:"0"`
	Format string `long:"format" description:"Output format: json | csv" default:"json"`

	env *env
}

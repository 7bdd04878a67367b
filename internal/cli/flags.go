package cli

// Flag names shared between the root command and its subcommands. Viper keys
// use the same names; environment variables use the EMOJIMENU_ prefix with
// dashes replaced by underscores.
const (
	ConfigFlag    = "config"
	DatasetFlag   = "dataset"
	LogFileFlag   = "log-file"
	LogLevelFlag  = "log-level"
	GestureFlag   = "gesture"
	DebounceFlag  = "debounce"
	ClipboardFlag = "clipboard"
	AnnounceFlag  = "announce"
	OpenFlag      = "open"
	OnceFlag      = "once"
	CategoryFlag  = "category"

	envPrefix = "EMOJIMENU"
)

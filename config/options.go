package config

const (
	defaultLogFile           = "tomelist.log"
	defaultLogLevel          = "info"
	defaultLogFileMaxSize    = 20
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAge     = 28
	defaultLogCompress       = false
	defaultLibraryFile       = "my_library.csv"
	defaultDateFormat        = "2006/01/02"

	// defaultData is empty on purpose: the data directory resolves to
	// ~/.tomelist when the user supplies nothing.
	defaultData = ""
)

// Options uses mapstructure tags instead of json because viper unmarshals
// through mapstructure.
type Options struct {
	// LogFile is the file to write logs to, relative to the data directory
	// unless absolute
	LogFile string `mapstructure:"log_file"`
	// LogLevel is the level of logging to show
	LogLevel string `mapstructure:"log_level"`
	// LogFileMaxSize is the maximum size of the log file before it is rotated
	LogFileMaxSize int `mapstructure:"log_file_max_size"`
	// LogFileMaxBackups is the maximum number of log files to keep
	LogFileMaxBackups int `mapstructure:"log_file_max_backups"`
	// LogFileMaxAge is the maximum number of days to keep a log file
	LogFileMaxAge int `mapstructure:"log_file_max_age"`
	// LogCompress is whether or not to compress the log files
	LogCompress bool `mapstructure:"log_compress"`
	// Data is the directory holding the library file and logs
	Data string `mapstructure:"data"`
	// LibraryFile is the name of the persisted library file
	LibraryFile string `mapstructure:"library_file"`
	// DateFormat is the Go layout used to stamp date_added on new books
	DateFormat string `mapstructure:"date_format"`
}

func GetDefaultOptions() *Options {
	Opts = &Options{
		LogFile:           defaultLogFile,
		LogLevel:          defaultLogLevel,
		LogFileMaxSize:    defaultLogFileMaxSize,
		LogFileMaxBackups: defaultLogFileMaxBackups,
		LogFileMaxAge:     defaultLogFileMaxAge,
		LogCompress:       defaultLogCompress,
		Data:              defaultData,
		LibraryFile:       defaultLibraryFile,
		DateFormat:        defaultDateFormat,
	}
	return Opts
}

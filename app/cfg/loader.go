package cfg

import (
	"cmp"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Server configuration
	Port    string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	BaseUrl string `long:"base-url" env:"BASE_URL" description:"Public base URL for the service (e.g., https://intel.example.com)"`

	// Dataset configuration
	DataFile string `long:"data-file" env:"DATA_FILE" description:"YAML dataset replacing the embedded sample data"`
	FeedFile string `long:"feed-file" env:"FEED_FILE" description:"RSS or Atom file imported as additional search results"`

	// Dashboard configuration
	SearchDelay int    `long:"search-delay" env:"SEARCH_DELAY" default:"1000" description:"Simulated search latency in milliseconds"`
	SessionTTL  int    `long:"session-ttl" env:"SESSION_TTL" default:"1800" description:"Idle session lifetime in seconds"`
	Theme       string `long:"theme" env:"THEME" default:"light" choice:"light" choice:"dark" description:"Initial dashboard theme"`
	UserName    string `long:"user-name" env:"USER_NAME" default:"Alex Johnson" description:"Name shown in the user menu"`
	UserTitle   string `long:"user-title" env:"USER_TITLE" default:"Market Analyst" description:"Title shown in the user menu"`

	// Background tasks
	WorkerCount       int `long:"worker-count" env:"WORKER_COUNT" default:"2" description:"Number of background workers"`
	SchedulerInterval int `long:"scheduler-interval" env:"SCHEDULER_INTERVAL" default:"60" description:"Scheduler interval in seconds"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validate(&raw); err != nil {
		return nil, err
	}

	cfg := &Cfg{
		Port:              raw.Port,
		BaseUrl:           raw.BaseUrl,
		DataFile:          raw.DataFile,
		FeedFile:          raw.FeedFile,
		SearchDelay:       raw.SearchDelay,
		SessionTTL:        raw.SessionTTL,
		Theme:             raw.Theme,
		UserName:          raw.UserName,
		UserTitle:         raw.UserTitle,
		WorkerCount:       raw.WorkerCount,
		SchedulerInterval: raw.SchedulerInterval,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func validate(raw *rawCfg) error {
	switch {
	case raw.SearchDelay < 0:
		return fmt.Errorf("search delay must not be negative, got %d", raw.SearchDelay)
	case raw.SessionTTL <= 0:
		return fmt.Errorf("session ttl must be positive, got %d", raw.SessionTTL)
	case raw.WorkerCount <= 0:
		return fmt.Errorf("worker count must be positive, got %d", raw.WorkerCount)
	case raw.SchedulerInterval <= 0:
		return fmt.Errorf("scheduler interval must be positive, got %d", raw.SchedulerInterval)
	}
	return nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}

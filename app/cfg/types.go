package cfg

type Cfg struct {
	// Server configuration
	Port    string
	BaseUrl string

	// Dataset configuration
	DataFile string
	FeedFile string

	// Dashboard configuration
	SearchDelay int
	SessionTTL  int
	Theme       string
	UserName    string
	UserTitle   string

	// Background tasks
	WorkerCount       int
	SchedulerInterval int

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}

package domain

import "time"

// Config represents the patterns configuration loaded from patterns.yaml.
type Config struct {
	Reports ReportsConfig
	Threads ThreadsConfig
	Proxy   ProxyConfig
	Store   StoreConfig
	Server  ServerConfig
}

type ReportsConfig struct {
	Enabled bool
	Dir     string
}

// ThreadsConfig sizes the phases of the threads explainer.
type ThreadsConfig struct {
	Platform    int
	Lightweight int
	Executor    int
	Sleep       time.Duration
}

// ProxyConfig tunes the token bucket behind the throttling proxy demo.
type ProxyConfig struct {
	RPS   float64
	Burst int
}

type StoreDriver string

const (
	StoreMemory StoreDriver = "memory"
	StoreRedis  StoreDriver = "redis"
)

type StoreConfig struct {
	Driver      StoreDriver
	RedisAddr   string
	RedisPrefix string
}

type ServerConfig struct {
	Addr string
}

// DefaultConfig provides sane defaults if patterns.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Reports: ReportsConfig{Enabled: true, Dir: "reports"},
		Threads: ThreadsConfig{
			Platform:    50,
			Lightweight: 5000,
			Executor:    5000,
			Sleep:       20 * time.Millisecond,
		},
		Proxy: ProxyConfig{RPS: 1, Burst: 2},
		Store: StoreConfig{
			Driver:      StoreMemory,
			RedisAddr:   "localhost:6379",
			RedisPrefix: "patterns:accounts",
		},
		Server: ServerConfig{Addr: ":3000"},
	}
}

package config

// yamlConfig mirrors patterns.yaml. Pointers and empty strings mean "keep the default".
type yamlConfig struct {
	Patterns struct {
		Reports yamlReports `yaml:"reports"`
		Threads yamlThreads `yaml:"threads"`
		Proxy   yamlProxy   `yaml:"proxy"`
		Store   yamlStore   `yaml:"store"`
		Server  yamlServer  `yaml:"server"`
	} `yaml:"patterns"`
}

type yamlReports struct {
	Enabled *bool  `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

type yamlThreads struct {
	Platform    *int   `yaml:"platform"`
	Lightweight *int   `yaml:"lightweight"`
	Executor    *int   `yaml:"executor"`
	Sleep       string `yaml:"sleep"`
}

type yamlProxy struct {
	RPS   *float64 `yaml:"rps"`
	Burst *int     `yaml:"burst"`
}

type yamlStore struct {
	Driver      string `yaml:"driver"`
	RedisAddr   string `yaml:"redis_addr"`
	RedisPrefix string `yaml:"redis_prefix"`
}

type yamlServer struct {
	Addr string `yaml:"addr"`
}

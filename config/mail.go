package config

// Mail SMTP配置信息
type Mail struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
	// MaxRetries 发送失败后的重试次数
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
	// RetryDelaySeconds 每次重试前的固定等待秒数
	RetryDelaySeconds int `json:"retry_delay_seconds" yaml:"retry_delay_seconds"`
}

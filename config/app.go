package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// SiteURL 拼接确认邮件里的链接
	SiteURL string `json:"site_url" yaml:"site_url"`
}

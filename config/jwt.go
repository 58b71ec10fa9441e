package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// AccessExpire 登录态有效期，单位秒
	AccessExpire int `json:"access_expire" yaml:"access_expire"`
	// ConfirmExpire 注册确认链接有效期，单位秒，默认 24 小时
	ConfirmExpire int `json:"confirm_expire" yaml:"confirm_expire"`
}

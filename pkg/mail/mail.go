package mail

import (
	"time"

	"zhihuer/config"
	"zhihuer/pkg/async"
	"zhihuer/pkg/log"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Dialer 抽出接口方便测试替换
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Sender struct {
	conf   *config.Mail
	dialer Dialer
	// sleep 重试间隔，测试里换成空实现
	sleep func(d time.Duration)
}

func NewSender(conf *config.Config) *Sender {
	mc := conf.Mail
	return &Sender{
		conf:   mc,
		dialer: gomail.NewDialer(mc.Host, mc.Port, mc.Username, mc.Password),
		sleep:  time.Sleep,
	}
}

// NewSenderWithDialer 测试用
func NewSenderWithDialer(conf *config.Mail, d Dialer) *Sender {
	return &Sender{conf: conf, dialer: d, sleep: func(time.Duration) {}}
}

func (s *Sender) build(to, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.conf.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return m
}

// SendAsync 异步发送，请求路径不等 SMTP。
// 投递失败只记日志，发送失败在协程里按固定间隔有限重试，重试用尽后放弃。
func (s *Sender) SendAsync(to, subject, body string) {
	err := async.Submit(func() {
		s.sendWithRetry(to, subject, body)
	})
	if err != nil {
		log.L.Error("submit mail task failed", zap.String("to", to), zap.Error(err))
	}
}

func (s *Sender) sendWithRetry(to, subject, body string) {
	maxRetries := s.conf.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	delay := time.Duration(s.conf.RetryDelaySeconds) * time.Second
	if delay <= 0 {
		delay = 10 * time.Second
	}

	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			s.sleep(delay)
		}
		if err = s.dialer.DialAndSend(s.build(to, subject, body)); err == nil {
			return
		}
		log.L.Warn("send mail failed",
			zap.String("to", to),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}
	// 重试用尽，放弃，不上抛给用户
	log.L.Error("send mail abandoned", zap.String("to", to), zap.Error(err))
}

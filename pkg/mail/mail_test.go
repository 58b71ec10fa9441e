package mail

import (
	"errors"
	"testing"

	"zhihuer/config"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	calls     int
	failFirst int
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.calls++
	if f.calls <= f.failFirst {
		return errors.New("smtp unreachable")
	}
	return nil
}

func TestSendWithRetry_SucceedsAfterRetry(t *testing.T) {
	d := &fakeDialer{failFirst: 2}
	s := NewSenderWithDialer(&config.Mail{MaxRetries: 3, From: "noreply@zhihuer.dev"}, d)

	s.sendWithRetry("someone@example.com", "confirm", "<p>hi</p>")

	// 失败两次后第三次成功，不再继续
	assert.Equal(t, 3, d.calls)
}

func TestSendWithRetry_AbandonsAfterMaxRetries(t *testing.T) {
	d := &fakeDialer{failFirst: 100}
	s := NewSenderWithDialer(&config.Mail{MaxRetries: 3, From: "noreply@zhihuer.dev"}, d)

	s.sendWithRetry("someone@example.com", "confirm", "<p>hi</p>")

	// 首发 + 3 次重试后放弃
	assert.Equal(t, 4, d.calls)
}

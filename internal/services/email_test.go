package services

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"sync"
	"testing"

	"gamestore/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	jobs []EmailJob
	err  error
}

func (s *recordingSender) Send(to []string, subject, body string) error {
	return s.record(EmailJob{To: to, Subject: subject, Body: body})
}

func (s *recordingSender) SendHTML(to []string, subject, body string) error {
	return s.record(EmailJob{To: to, Subject: subject, Body: body, IsHTML: true})
}

func (s *recordingSender) record(job EmailJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
	return s.err
}

func TestEmailQueue_DeliversOnClose(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	q := NewEmailQueue(sender, 10, "https://shop.example.com/", 3600)
	q.Start(2)

	require.NoError(t, q.SendPasswordReset(context.Background(), "alice@example.com", "tok.en.sig"))
	require.NoError(t, q.Enqueue(EmailJob{To: []string{"bob@example.com"}, Subject: "hi", Body: "plain"}))
	q.Close()

	require.Len(t, sender.jobs, 2)
	var reset EmailJob
	for _, j := range sender.jobs {
		if j.IsHTML {
			reset = j
		}
	}
	assert.Equal(t, []string{"alice@example.com"}, reset.To)
	assert.Contains(t, reset.Body, "https://shop.example.com/reset-password?token=tok.en.sig")
	assert.Contains(t, reset.Body, "60 мин")
}

func TestEmailQueue_Full(t *testing.T) {
	q := NewEmailQueue(&recordingSender{}, 1, "", 3600)
	require.NoError(t, q.Enqueue(EmailJob{}))
	assert.ErrorIs(t, q.Enqueue(EmailJob{}), ErrQueueFull)
}

func TestEmailQueue_EnqueueAfterClose(t *testing.T) {
	q := NewEmailQueue(&recordingSender{}, 4, "", 3600)
	q.Start(1)
	q.Close()
	q.Close()

	require.NotPanics(t, func() {
		assert.ErrorIs(t, q.Enqueue(EmailJob{}), ErrQueueClosed)
		assert.ErrorIs(t, q.SendPasswordReset(context.Background(), "alice@example.com", "t"), ErrQueueClosed)
	})
}

func TestEmailQueue_ConcurrentClose(t *testing.T) {
	q := NewEmailQueue(&recordingSender{}, 1000, "", 3600)
	q.Start(2)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				err := q.Enqueue(EmailJob{})
				if err != nil && !errors.Is(err, ErrQueueClosed) && !errors.Is(err, ErrQueueFull) {
					t.Errorf("unexpected error: %v", err)
				}
			}
		}()
	}
	q.Close()
	wg.Wait()
}

func TestEmailService_Message(t *testing.T) {
	svc := NewEmailService(&config.Config{SMTPHost: "smtp.example.com", SMTPPort: "587", SMTPUser: "shop@example.com"})
	require.True(t, svc.Enabled())

	var (
		gotAddr string
		gotMsg  string
	)
	svc.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotMsg = addr, string(msg)
		assert.Equal(t, "shop@example.com", from)
		return nil
	}

	require.NoError(t, svc.SendHTML([]string{"a@example.com"}, "Тема", "<p>x</p>"))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.True(t, strings.HasPrefix(gotMsg, "From: shop@example.com\r\n"))
	assert.Contains(t, gotMsg, "Content-Type: text/html")
	assert.True(t, strings.HasSuffix(gotMsg, "<p>x</p>"))

	assert.False(t, NewEmailService(&config.Config{}).Enabled())
}

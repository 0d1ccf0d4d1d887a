package services

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
	"sync"

	"gamestore/internal/config"
	"gamestore/internal/logger"
	"gamestore/internal/utils/helpers"

	"go.uber.org/zap"
)

type EmailService struct {
	auth smtp.Auth
	from string
	host string
	port string
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewEmailService(cfg *config.Config) *EmailService {
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	return &EmailService{
		auth: auth,
		from: cfg.SMTPUser,
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		send: smtp.SendMail,
	}
}

func (s *EmailService) Enabled() bool {
	return s.host != ""
}

func (s *EmailService) Send(to []string, subject, body string) error {
	return s.deliver(to, subject, "text/plain", body)
}

func (s *EmailService) SendHTML(to []string, subject, body string) error {
	return s.deliver(to, subject, "text/html", body)
}

func (s *EmailService) deliver(to []string, subject, contentType, body string) error {
	msg := []byte("From: " + s.from + "\r\n" +
		"To: " + strings.Join(to, ", ") + "\r\n" +
		"Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: " + contentType + "; charset=\"utf-8\"\r\n\r\n" +
		body)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return s.send(addr, s.auth, s.from, to, msg)
}

type EmailJob struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

type emailSender interface {
	Send(to []string, subject, body string) error
	SendHTML(to []string, subject, body string) error
}

var (
	ErrQueueFull   = errors.New("email queue is full")
	ErrQueueClosed = errors.New("email queue is closed")
)

// EmailQueue - буферизованная очередь писем с фиксированным пулом воркеров.
type EmailQueue struct {
	jobs      chan EmailJob
	sender    emailSender
	appURL    string
	expiresIn int
	wg        sync.WaitGroup
	mu        sync.RWMutex
	closed    bool
}

func NewEmailQueue(sender emailSender, size int, appURL string, resetExpiresIn int) *EmailQueue {
	if size <= 0 {
		size = 100
	}
	return &EmailQueue{
		jobs:      make(chan EmailJob, size),
		sender:    sender,
		appURL:    strings.TrimRight(appURL, "/"),
		expiresIn: resetExpiresIn,
	}
}

func (q *EmailQueue) Start(workers int) {
	if workers <= 0 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			for job := range q.jobs {
				var err error
				if job.IsHTML {
					err = q.sender.SendHTML(job.To, job.Subject, job.Body)
				} else {
					err = q.sender.Send(job.To, job.Subject, job.Body)
				}
				if err != nil {
					logger.Log.Error("Не удалось отправить письмо", zap.Strings("to", maskAll(job.To)), zap.Error(err))
				}
			}
		}()
	}
}

// Enqueue не блокируется: при переполненной очереди письмо отбрасывается.
// После Close возвращает ErrQueueClosed.
func (q *EmailQueue) Enqueue(job EmailJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close закрывает очередь и ждёт, пока воркеры разошлют остаток.
func (q *EmailQueue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()
	q.wg.Wait()
}

// SendPasswordReset ставит письмо со ссылкой сброса в очередь.
func (q *EmailQueue) SendPasswordReset(_ context.Context, to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", q.appURL, token)
	return q.Enqueue(EmailJob{
		To:      []string{to},
		Subject: "Восстановление пароля",
		Body:    helpers.BuildResetPasswordHTML(link, q.expiresIn),
		IsHTML:  true,
	})
}

func maskAll(emails []string) []string {
	out := make([]string, len(emails))
	for i, e := range emails {
		out[i] = helpers.MaskEmail(e)
	}
	return out
}

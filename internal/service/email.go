package service

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendOverdueReminder(ctx context.Context, email, name, bookTitle string, dueDate time.Time, lateFeeCents int32) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Overdue: %s", bookTitle))

	body := fmt.Sprintf(
		"Hello %s,\n\nYour loan of \"%s\" was due on %s. A late fee of $%.2f has accrued so far and grows by $0.50 each day.\n\nPlease return or renew the book at your earliest convenience.\n\nOpenShelf Library",
		name, bookTitle, dueDate.Format("January 2, 2006"), float64(lateFeeCents)/100,
	)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	return d.DialAndSend(m)
}

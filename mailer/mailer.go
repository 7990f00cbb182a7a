package mailer

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"

	"rajas/config"
	"rajas/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const (
	smtpHost = "smtp.gmail.com"
	smtpPort = 587
)

type job struct {
	subject string
	body    string
}

// Mailer sends best-effort admin notifications. Jobs go through a bounded
// queue drained by a small worker pool; a full queue drops the job with a
// log line, and delivery errors never reach the caller.
type Mailer struct {
	user string
	pass string
	jobs chan job
	wg   sync.WaitGroup
}

func New(cfg config.Config) *Mailer {
	m := &Mailer{
		user: cfg.EmailUser,
		pass: cfg.EmailPass,
		jobs: make(chan job, 64),
	}
	for i := 0; i < 2; i++ {
		m.wg.Add(1)
		go m.worker()
	}
	return m
}

func (m *Mailer) worker() {
	defer m.wg.Done()
	for j := range m.jobs {
		m.send(j)
	}
}

func (m *Mailer) send(j job) {
	if m.user == "" || m.pass == "" {
		logger.Error().Msg("Email credentials not configured (EMAIL_USER, EMAIL_PASS)")
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	// admin self-notification
	msg.SetHeader("To", m.user)
	msg.SetHeader("Subject", j.subject)
	msg.SetBody("text/plain", j.body)

	d := gomail.NewDialer(smtpHost, smtpPort, m.user, m.pass)
	if err := d.DialAndSend(msg); err != nil {
		logger.Error().Err(err).Str("subject", j.subject).Msg("Failed to send email")
		return
	}
	logger.Info().Str("subject", j.subject).Msg("Email sent")
}

func (m *Mailer) enqueue(j job) {
	if m == nil {
		return
	}
	select {
	case m.jobs <- j:
	default:
		logger.Warn().Str("subject", j.subject).Msg("Mail queue full, dropping notification")
	}
}

// EnqueueOrder schedules the new-order notification. It never blocks.
func (m *Mailer) EnqueueOrder(o models.Order) {
	m.enqueue(job{
		subject: fmt.Sprintf("New Order Received - Order #%d", o.ID),
		body:    renderOrder(o),
	})
}

// EnqueueContact schedules the contact-form notification. It never blocks.
func (m *Mailer) EnqueueContact(c models.ContactMessage) {
	m.enqueue(job{
		subject: fmt.Sprintf("New Contact Message - %s", c.Name),
		body:    renderContact(c),
	})
}

// Close stops accepting jobs and waits for in-flight deliveries.
func (m *Mailer) Close() {
	if m == nil {
		return
	}
	close(m.jobs)
	m.wg.Wait()
}

func renderOrder(o models.Order) string {
	return fmt.Sprintf(`New Order Notification
-----------------------

Order ID: %d
Status: %s

Customer Details:
-----------------
Name: %s
Phone: %s
Email: %s
Address: %s

Product Details:
----------------
Product ID: %d
Product Name: %s
Quantity: %d
Total Price: %.2f
Payment Method: %s

Please log in to the admin panel to view full details.
`,
		o.ID, o.Status,
		o.CustomerName, o.Phone, o.Email, o.Address,
		o.ProductID, o.ProductName, o.Quantity, o.TotalPrice, o.PaymentMethod)
}

func renderContact(c models.ContactMessage) string {
	return fmt.Sprintf(`New Contact Message Received
----------------------------

Name: %s
Email: %s

Message:
--------
%s
`,
		c.Name, c.Email, c.Message)
}

package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
)

// Mailer sends the transactional mails that accompany registration and
// newsletter subscription. Delivery is best-effort: a failure is logged
// and never fails the originating request.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

var Mail *Mailer

// InitMailer builds the process-wide mailer from SMTP_* environment
// variables. With no SMTP_HOST set the mailer stays nil and every send
// becomes a logged no-op.
func InitMailer() {
	host := os.Getenv("SMTP_HOST")

	if host == "" {
		log.Println("SMTP_HOST not set, outgoing mail disabled")
		return
	}

	port := os.Getenv("SMTP_PORT")

	if port == "" {
		port = "587"
	}

	Mail = &Mailer{
		host:     host,
		port:     port,
		username: os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
	}
}

func (m *Mailer) send(to, subject, body string) error {
	if m == nil {
		log.Printf("Mail to %s skipped, mailer disabled", to)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, []byte(msg))
}

// SendDoctorWelcome asks newly registered doctors to complete the
// credential verification form.
func (m *Mailer) SendDoctorWelcome(name, email string) {
	subject := "Welcome to SerenitySpace, Dr. " + name + "!"

	body := fmt.Sprintf(`Dear Dr. %s,

Thank you for joining SerenitySpace! As a trusted healthcare
professional, we kindly ask you to complete our credential verification
form so we can confirm your speciality and keep the platform safe for
everyone:

https://forms.gle/rgJm12W45EsYcN6M6

Our team will review your submission promptly and reach out with the
next steps.

Best regards,
The SerenitySpace Team`, name)

	if err := m.send(email, subject, body); err != nil {
		log.Printf("Failed to send doctor welcome mail to %s: %v", email, err)
	}
}

// SendIndividualWelcome greets newly registered individual members.
func (m *Mailer) SendIndividualWelcome(name, email string) {
	subject := "Welcome to SerenitySpace, " + name + "!"

	body := fmt.Sprintf(`Dear %s,

Thank you for joining SerenitySpace! Log in to complete your profile
and start exploring the posts, videos and community resources our
members share.

If you have any questions, our team is here to help.

Best regards,
The SerenitySpace Team`, name)

	if err := m.send(email, subject, body); err != nil {
		log.Printf("Failed to send welcome mail to %s: %v", email, err)
	}
}

// SendSubscriptionThanks confirms a newsletter subscription.
func (m *Mailer) SendSubscriptionThanks(email string) {
	subject := "Thank You for Subscribing SerenitySpace Community!"

	body := `Welcome to our community! Thank you for subscribing to our
newsletter.

You will receive news and periodic updates about the latest posts,
expert articles and educational videos shared on SerenitySpace.

Best regards,
The SerenitySpace Team`

	if err := m.send(email, subject, body); err != nil {
		log.Printf("Failed to send subscription mail to %s: %v", email, err)
	}
}

// Package mailer sends booking confirmation emails over SMTP.  When no
// SMTP host is configured the mailer falls back to a simulated send that
// just logs the message after a short delay, which keeps local setups
// working without a mail server.
package mailer

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	mail "github.com/go-mail/mail/v2"

	"github.com/ticketverse/booking/internal/queue"
)

// Mailer delivers booking confirmations.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	latency  time.Duration
}

// NewFromEnv reads SMTP_* variables.  An empty SMTP_HOST selects the
// simulated mode with the given artificial latency.
func NewFromEnv(latency time.Duration) *Mailer {
	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "no-reply@ticketverse.example"
	}
	return &Mailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     port,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     from,
		latency:  latency,
	}
}

// SendBookingConfirmation emails the ticket summary for a confirmed
// booking.  Errors are returned for the caller to log; a failed email
// never undoes the booking.
func (m *Mailer) SendBookingConfirmation(ev queue.BookingConfirmedEvent) error {
	subject := fmt.Sprintf("Booking %s confirmed", ev.Reference)
	body := confirmationBody(ev)

	if m.host == "" {
		// Simulated send.
		if m.latency > 0 {
			time.Sleep(m.latency)
		}
		log.Printf("mailer: simulated send to=%s subject=%q", ev.UserEmail, subject)
		return nil
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", ev.UserEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := mail.NewDialer(m.host, m.port, m.username, m.password)
	d.Timeout = 10 * time.Second
	return d.DialAndSend(msg)
}

func confirmationBody(ev queue.BookingConfirmedEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", ev.UserName)
	fmt.Fprintf(&b, "Your booking %s is confirmed.\n\n", ev.Reference)
	fmt.Fprintf(&b, "Movie:    %s\n", ev.MovieTitle)
	fmt.Fprintf(&b, "Theater:  %s (%s)\n", ev.TheaterName, ev.City)
	fmt.Fprintf(&b, "Show:     %s %s\n", ev.ShowDate, ev.ShowTime)
	fmt.Fprintf(&b, "Seats:    %s\n", strings.Join(ev.SeatIDs, ", "))
	fmt.Fprintf(&b, "Total:    $%.2f\n\n", float64(ev.TotalCents)/100)
	b.WriteString("Enjoy the show!\n")
	return b.String()
}

package services

import (
	"fmt"
	"html"
	"log"
	"mime"
	"net/smtp"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/models"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Mailer struct {
	config Config
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{
		config: cfg,
	}
}

func (m *Mailer) SendHTMLEmail(to, subject, htmlBody string) error {
	msg := buildMessage(m.config.From, to, subject, htmlBody)

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)

	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	err := smtp.SendMail(addr, auth, m.config.From, []string{headerValue(to)}, msg)
	if err != nil {
		log.Printf("Mailer.SendHTMLEmail: failed to send to %s: %v", to, err)
		return fmt.Errorf("failed to send html email: %w", err)
	}

	return nil
}

var headerBreaks = strings.NewReplacer("\r", " ", "\n", " ")

// headerValue keeps a value on one header line.
func headerValue(v string) string {
	return strings.TrimSpace(headerBreaks.Replace(v))
}

// buildMessage writes the headers and body. The subject is RFC 2047 encoded when it is not ASCII.
func buildMessage(from, to, subject, htmlBody string) []byte {
	headers := [][2]string{
		{"From", headerValue(from)},
		{"To", headerValue(to)},
		{"Subject", mime.BEncoding.Encode("UTF-8", headerValue(subject))},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=\"UTF-8\""},
	}

	var msg strings.Builder
	for _, h := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", h[0], h[1]))
	}
	msg.WriteString("\r\n" + htmlBody)
	return []byte(msg.String())
}

func BuildContactEmailBody(msg models.ContactMessage) string {
	row := func(label, value string) string {
		if value == "" {
			return ""
		}
		return fmt.Sprintf("<tr><th>%s</th><td>%s</td></tr>", label, html.EscapeString(value))
	}

	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html dir="rtl" lang="ar">
        <head>
            <meta charset="utf-8">
            <title>رسالة تواصل جديدة</title>
            <style>
                body { font-family: Tahoma, Arial, sans-serif; line-height: 1.6; color: #333; }
                .container { max-width: 600px; margin: 20px auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px; }
                th { text-align: right; padding-left: 12px; color: #8a5a2b; }
                .message { white-space: pre-wrap; background: #faf6f1; padding: 12px; border-radius: 5px; }
            </style>
        </head>
        <body>
            <div class="container">
                <h2>رسالة تواصل جديدة</h2>
                <table>%s%s%s%s</table>
                <p class="message">%s</p>
            </div>
        </body>
        </html>
    `,
		row("الاسم", msg.Name),
		row("البريد الإلكتروني", msg.Email),
		row("الهاتف", msg.Phone),
		row("الموضوع", msg.Subject),
		html.EscapeString(msg.Message),
	)
}

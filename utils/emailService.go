package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"cropconnect/config"
)

// SendEmail sends an HTML email to the given recipients. The send is best
// effort; callers fire it from a goroutine and only log failures.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || len(to) == 0 {
		// No sender configured (local/dev runs); skip silently.
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CropConnect <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// AnnouncementEmail wraps an announcement in the standard HTML shell.
func AnnouncementEmail(title, message string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #FFF8E7; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #2F5233; padding: 24px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 22px; }
			.content { padding: 32px 24px; color: #333333; line-height: 1.6; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content"><p>%s</p></div>
		</div>
	</body>
	</html>`, title, message)
}

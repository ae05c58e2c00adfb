package util

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/eventflow-app/eventflow-api/common"
	"gopkg.in/gomail.v2"
)

func InitDialer() {
	dialer := gomail.NewDialer(*common.Config.MailHost, 587, *common.Config.MailUser, *common.Config.MailPass)
	common.Dialer = dialer
}

// SendBadgeMail delivers a generated participant image as a PNG attachment.
func SendBadgeMail(recipient string, eventName string, fileName string, imageData []byte) error {
	if common.Dialer == nil {
		return fmt.Errorf("mail dialer not initialized")
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", *common.Config.MailUser)
	mailer.SetHeader("To", recipient)
	mailer.SetHeader("Subject", fmt.Sprintf("Your badge for %s", eventName))
	mailer.SetBody("text/html", fmt.Sprintf(`
		<p>Hi,</p>
		<p>Your personalized badge for <b>%s</b> is attached.</p>
		<p>See you there,<br>The Eventflow Team</p>
	`, eventName))

	mailer.Attach(fileName,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(imageData))
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"image/png"}}),
	)

	if err := common.Dialer.DialAndSend(mailer); err != nil {
		slog.Error("SendBadgeMail delivery failed", "recipient", recipient, "error", err)
		return fmt.Errorf("failed to send badge mail: %w", err)
	}

	slog.Info("SendBadgeMail delivered", "recipient", recipient, "file", fileName)
	return nil
}

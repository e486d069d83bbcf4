package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"
	"time"
)

const verificationSubject = "Verify your email address"

var verificationText = texttemplate.Must(texttemplate.New("verification.txt").Parse(
	`Welcome to {{.SiteName}}!

Your verification code is: {{.Code}}

You can also confirm your address by opening this link:
{{.Link}}

This code will expire in {{.Expiry}}.
`))

var verificationHTML = template.Must(template.New("verification.html").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Verify Your Email Address</h2>
  <p style="color: #666;">An account was created for you on {{.SiteName}}. Please use the verification code below or the button to confirm your address:</p>
  <div style="background-color: #f5f5f5; padding: 20px; text-align: center; margin: 20px 0; border-radius: 5px;">
    <span style="font-size: 24px; font-weight: bold; letter-spacing: 2px; color: #333;">{{.Code}}</span>
  </div>
  <p style="text-align: center;"><a href="{{.Link}}" style="color: #fff; background: #333; padding: 10px 20px; border-radius: 5px; text-decoration: none;">Verify my email</a></p>
  <p style="color: #666;">This code will expire in {{.Expiry}}.</p>
  <p style="color: #999; font-size: 12px;">If you didn't request this verification, please ignore this email.</p>
</div>
`))

// VerificationData fills the verification email templates.
type VerificationData struct {
	SiteName string
	Code     string
	Link     string
	TTL      time.Duration
}

// BuildVerificationEmail renders the verification email for to.
func BuildVerificationEmail(to string, d VerificationData) (Email, error) {
	view := struct {
		SiteName string
		Code     string
		Link     string
		Expiry   string
	}{d.SiteName, d.Code, d.Link, humanizeTTL(d.TTL)}

	var text, html bytes.Buffer
	if err := verificationText.Execute(&text, view); err != nil {
		return Email{}, fmt.Errorf("render text body: %w", err)
	}
	if err := verificationHTML.Execute(&html, view); err != nil {
		return Email{}, fmt.Errorf("render html body: %w", err)
	}

	return Email{
		To:      to,
		Subject: verificationSubject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

func humanizeTTL(d time.Duration) string {
	switch {
	case d <= 0:
		return "a short while"
	case d%time.Hour == 0:
		h := int(d / time.Hour)
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	default:
		m := int(d.Round(time.Minute) / time.Minute)
		if m <= 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	}
}

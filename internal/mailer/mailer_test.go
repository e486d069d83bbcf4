package mailer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail_Validate(t *testing.T) {
	tests := []struct {
		name    string
		email   Email
		wantErr error
	}{
		{"valid text", Email{To: "a@example.com", Subject: "Hi", Text: "body"}, nil},
		{"valid html", Email{To: "a@example.com", Subject: "Hi", HTML: "<p>body</p>"}, nil},
		{"missing to", Email{Subject: "Hi", Text: "body"}, ErrMissingRecipient},
		{"missing subject", Email{To: "a@example.com", Text: "body"}, ErrMissingRecipient},
		{"invalid address", Email{To: "not-an-email", Subject: "Hi", Text: "body"}, ErrInvalidRecipient},
		{"missing body", Email{To: "a@example.com", Subject: "Hi"}, ErrMissingBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.email.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuildVerificationEmail(t *testing.T) {
	e, err := BuildVerificationEmail("jane@example.com", VerificationData{
		SiteName: "Les Curateurs",
		Code:     "ABC123",
		Link:     "https://curateurs.example.com/verifiedEmail/ABC123",
		TTL:      15 * time.Minute,
	})
	require.NoError(t, err)
	require.NoError(t, e.Validate())

	assert.Equal(t, "jane@example.com", e.To)
	assert.Equal(t, "Verify your email address", e.Subject)
	assert.Contains(t, e.Text, "Your verification code is: ABC123")
	assert.Contains(t, e.Text, "expire in 15 minutes")
	assert.Contains(t, e.HTML, "ABC123")
	assert.Contains(t, e.HTML, `href="https://curateurs.example.com/verifiedEmail/ABC123"`)
}

func TestBuildVerificationEmail_EscapesHTML(t *testing.T) {
	e, err := BuildVerificationEmail("jane@example.com", VerificationData{
		SiteName: "<script>x</script>",
		Code:     "C",
		Link:     "https://example.com",
		TTL:      time.Hour,
	})
	require.NoError(t, err)
	assert.False(t, strings.Contains(e.HTML, "<script>"))
	assert.Contains(t, e.Text, "expire in 1 hour")
}

func TestHumanizeTTL(t *testing.T) {
	assert.Equal(t, "15 minutes", humanizeTTL(15*time.Minute))
	assert.Equal(t, "1 minute", humanizeTTL(30*time.Second))
	assert.Equal(t, "2 hours", humanizeTTL(2*time.Hour))
	assert.Equal(t, "a short while", humanizeTTL(0))
}

func TestSMTPSender_RejectsInvalidEmailBeforeDialing(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "127.0.0.1", Port: 1, From: "noreply@example.com"})
	err := s.Send(context.Background(), Email{To: "bad", Subject: "Hi", Text: "x"})
	assert.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestSMTPSender_BuildMessage(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, From: "noreply@example.com"})
	msg, err := s.buildMessage(Email{To: "jane@example.com", Subject: "Hi", Text: "plain", HTML: "<p>rich</p>"})
	require.NoError(t, err)

	var buf strings.Builder
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "Subject: Hi")
	assert.Contains(t, out, "multipart/alternative")
}

func TestLogSender(t *testing.T) {
	var s Sender = LogSender{}
	assert.NoError(t, s.Send(context.Background(), Email{To: "a@example.com", Subject: "Hi", Text: "x"}))
	assert.Error(t, s.Send(context.Background(), Email{}))
}

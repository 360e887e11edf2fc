package mailwkr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"milimani.co.ke/backend/internal/app/appconfig"
	"milimani.co.ke/backend/internal/service"
)

func TestMissingMailConfig(t *testing.T) {
	conf := &appconfig.Config{}
	conf.SMTPAddr = "smtp.example.com:587"

	assert.ElementsMatch(t, []string{"smtp_from", "notify_email"}, missingMailConfig(conf))

	conf.SMTPFrom = "noreply@milimani.co.ke"
	assert.ElementsMatch(t, []string{"notify_email"}, missingMailConfig(conf))

	conf.NotifyEmail = "sales@milimani.co.ke"
	assert.Empty(t, missingMailConfig(conf))
}

func TestRenderMail(t *testing.T) {
	propertyID := 42
	evt := &service.InquiryEvent{
		ID:        1,
		Reference: "01hqv3x2e8z9k4m7p0q1r2s3t4",
		Name:      "Jane Wanjiku",
		Email:     "jane@example.com",
		Phone:     "+254700000000",
		Subject:   "Property Inquiry",
		Message:   "Is the Kilimani apartment still available?",
		Property:  &propertyID,
	}

	body := string(renderMail("noreply@milimani.co.ke", "sales@milimani.co.ke", evt))

	assert.True(t, strings.HasPrefix(body, "From: noreply@milimani.co.ke\r\n"))
	assert.Contains(t, body, "To: sales@milimani.co.ke\r\n")
	assert.Contains(t, body, "Subject: [01hqv3x2e8z9k4m7p0q1r2s3t4] Property Inquiry\r\n")
	assert.Contains(t, body, "Listing: #42\r\n")
	assert.Contains(t, body, "Is the Kilimani apartment still available?")

	evt.Property = nil
	body = string(renderMail("noreply@milimani.co.ke", "sales@milimani.co.ke", evt))
	assert.NotContains(t, body, "Listing:")
}

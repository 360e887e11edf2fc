package mailwkr

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"milimani.co.ke/backend/internal/app/appconfig"
	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/service"
)

// Worker delivers staff notification mail for freshly submitted inquiries.
// It consumes inquiry events off NATS so a slow or unreachable SMTP server
// never blocks the submitting request.
type Worker struct {
	conf *appconfig.Config
	nats *nats.Conn

	sub *nats.Subscription
}

func Start(conf *appconfig.Config, nc *nats.Conn, lc fx.Lifecycle) {
	if conf.SMTPAddr == "" {
		log.Info().
			Str("evt.name", "mailwkr.disabled").
			Msg("smtp address not configured, inquiry notification mail disabled")
		return
	}

	// deliveries need a sender and a destination too; without either, every
	// single inquiry would fail at send time, so disable the worker up front
	if missing := missingMailConfig(conf); len(missing) > 0 {
		log.Warn().
			Str("evt.name", "mailwkr.disabled").
			Strs("missing", missing).
			Msg("smtp address is set but the mail config is incomplete, inquiry notification mail disabled")
		return
	}

	w := &Worker{conf: conf, nats: nc}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sub, err := nc.QueueSubscribe(constant.SubjectInquiryCreated, "mailwkr", w.handle)
			if err != nil {
				return err
			}
			w.sub = sub
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if w.sub != nil {
				return w.sub.Drain()
			}
			return nil
		},
	})
}

// missingMailConfig reports the config fields still needed for delivery once
// an SMTP address is set.
func missingMailConfig(conf *appconfig.Config) []string {
	var missing []string
	if conf.SMTPFrom == "" {
		missing = append(missing, "smtp_from")
	}
	if conf.NotifyEmail == "" {
		missing = append(missing, "notify_email")
	}
	return missing
}

func (w *Worker) handle(msg *nats.Msg) {
	var evt service.InquiryEvent
	if err := json.Unmarshal(msg.Data, &evt); err != nil {
		log.Error().
			Str("evt.name", "mailwkr.decode_failed").
			Err(err).
			Msg("discarding malformed inquiry event")
		return
	}

	err := retry.Do(func() error {
		return w.send(&evt)
	}, retry.Attempts(3))
	if err != nil {
		log.Error().
			Str("evt.name", "mailwkr.send_failed").
			Str("reference", evt.Reference).
			Err(err).
			Msg("failed to deliver inquiry notification mail")
		return
	}

	log.Info().
		Str("evt.name", "mailwkr.sent").
		Str("reference", evt.Reference).
		Msg("delivered inquiry notification mail")
}

func (w *Worker) send(evt *service.InquiryEvent) error {
	host := w.conf.SMTPAddr
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}

	var auth smtp.Auth
	if w.conf.SMTPUsername != "" {
		auth = smtp.PlainAuth("", w.conf.SMTPUsername, w.conf.SMTPPassword, host)
	}

	body := renderMail(w.conf.SMTPFrom, w.conf.NotifyEmail, evt)
	return smtp.SendMail(w.conf.SMTPAddr, auth, w.conf.SMTPFrom, []string{w.conf.NotifyEmail}, body)
}

func renderMail(from, to string, evt *service.InquiryEvent) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: [%s] %s\r\n", evt.Reference, evt.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")

	fmt.Fprintf(&b, "New inquiry %s\r\n\r\n", evt.Reference)
	fmt.Fprintf(&b, "Name:  %s\r\n", evt.Name)
	fmt.Fprintf(&b, "Email: %s\r\n", evt.Email)
	fmt.Fprintf(&b, "Phone: %s\r\n", evt.Phone)
	if evt.Property != nil {
		fmt.Fprintf(&b, "Listing: #%d\r\n", *evt.Property)
	}
	fmt.Fprintf(&b, "\r\n%s\r\n", evt.Message)

	return []byte(b.String())
}

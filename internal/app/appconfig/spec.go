package appconfig

import (
	"time"

	"milimani.co.ke/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address the HTTP server would listen on.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9030"`

	// LogJSONStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJSONStdout bool `split_words:"true" default:"false"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct a PostgreSQL DSN.
	PostgresDSN string `required:"true" split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// RedisURL is the URL of the Redis server backing the public-endpoint
	// rate limiter. See https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL
	// for more information on how to construct a Redis URL.
	RedisURL string `required:"true" split_words:"true" default:"redis://127.0.0.1:6379/1"`

	// NatsURL is the URL of the NATS server carrying inquiry notification
	// events. See https://pkg.go.dev/github.com/nats-io/nats.go#Connect
	// for more information on how to construct a NATS URL.
	NatsURL string `required:"true" split_words:"true" default:"nats://127.0.0.1:4222"`

	// CORSAllowOrigins is the comma-separated list of origins the browser
	// frontend is served from.
	CORSAllowOrigins string `split_words:"true" default:"http://localhost:3000"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// SessionTTL is how long an admin session stays valid without re-login.
	SessionTTL time.Duration `split_words:"true" default:"24h"`

	// InquiryRateLimit caps public inquiry/contact submissions per remote IP
	// within InquiryRateWindow.
	InquiryRateLimit  int           `split_words:"true" default:"10"`
	InquiryRateWindow time.Duration `split_words:"true" default:"1m"`

	// SMTP settings for the inquiry notification mailer. Leaving SMTPAddr
	// empty disables outbound mail entirely; inquiry handling is unaffected.
	SMTPAddr     string `envconfig:"smtp_addr"`
	SMTPUsername string `envconfig:"smtp_username"`
	SMTPPassword string `envconfig:"smtp_password"`
	SMTPFrom     string `envconfig:"smtp_from"`

	// NotifyEmail is the staff mailbox inquiry notifications are delivered to.
	NotifyEmail string `split_words:"true"`

	// SeedAdminUsername and SeedAdminPassword are the credentials the `seed`
	// command provisions the first back-office account with.
	SeedAdminUsername string `split_words:"true" default:"admin"`
	SeedAdminPassword string `split_words:"true"`
}

type Config struct {
	ConfigSpec
	AppContext appcontext.Ctx
}

package alerter

type Config struct {
	WebhookURL string `envconfig:"WEBHOOK_URL"`
	Channel    string `envconfig:"CHANNEL"`
	Username   string `envconfig:"USERNAME" default:"chart-engine"`
}

package notify

import (
	"bytes"
	"net"
	"net/http"
	"time"

	"ctfwatch/internal/providers"
	"ctfwatch/internal/structures"

	json "github.com/goccy/go-json"
)

// Notifier delivers a short text message to the configured channel.
// Delivery is fire-and-forget: failures are logged and dropped, never
// surfaced to the caller.
type Notifier interface {
	Notify(text string)
}

type WebhookNotifier struct {
	url    string
	client *http.Client
	logger providers.Logger
}

func NewNotifier(conf *structures.Config, logger providers.Logger) Notifier {
	if conf.Notify.WebhookURL == "" {
		logger.Infof(providers.TypeApp, "Notifications disabled: no webhook configured")
		return &noopNotifier{}
	}

	timeout := conf.Notify.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebhookNotifier{
		url:    conf.Notify.WebhookURL,
		logger: logger,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
	}
}

func (n *WebhookNotifier) Notify(text string) {
	payload, err := json.Marshal(map[string]string{"content": text})
	if err != nil {
		n.logger.Errorf(providers.TypeApp, "Notification encode failed: %s", err)
		return
	}

	resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		n.logger.Warnf(providers.TypeApp, "Notification delivery failed: %s", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.logger.Warnf(providers.TypeApp, "Notification rejected by webhook: %s", resp.Status)
	}
}

type noopNotifier struct{}

func (n *noopNotifier) Notify(_ string) {}

package nats

import (
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/nats-io/nats.go"
)

// Fallbacks for a config built in code rather than loaded through cleanenv.
const (
	defaultClientName     = "marketplace-service"
	defaultConnectTimeout = 5 * time.Second
	defaultReconnectWait  = 2 * time.Second
)

// Connect dials the event bus. Publishes made while the connection is
// reconnecting fail immediately instead of being buffered.
func Connect(cfg config.NATSConfig, log logger.Logger) (*nats.Conn, error) {
	nc, err := nats.Connect(cfg.URL, connectOptions(cfg, log)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", cfg.URL, err)
	}
	log.Infof("Connected to NATS at %s as %q", nc.ConnectedUrl(), clientName(cfg))
	return nc, nil
}

func connectOptions(cfg config.NATSConfig, log logger.Logger) []nats.Option {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	wait := cfg.ReconnectWait
	if wait <= 0 {
		wait = defaultReconnectWait
	}

	return []nats.Option{
		nats.Name(clientName(cfg)),
		nats.Timeout(timeout),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(wait),
		nats.ReconnectBufSize(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warnf("NATS disconnected, marketplace events are dropped until reconnect: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Infof("NATS reconnected to %s", nc.ConnectedUrl())
		}),
		nats.ErrorHandler(func(_ *nats.Conn, sub *nats.Subscription, err error) {
			if sub != nil {
				log.Errorf("NATS error on %s: %v", sub.Subject, err)
				return
			}
			log.Errorf("NATS error: %v", err)
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			if err := nc.LastError(); err != nil {
				log.Warnf("NATS connection closed: %v", err)
				return
			}
			log.Info("NATS connection closed")
		}),
	}
}

func clientName(cfg config.NATSConfig) string {
	if cfg.ClientName == "" {
		return defaultClientName
	}
	return cfg.ClientName
}

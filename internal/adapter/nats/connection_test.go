package nats

import (
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyOptions(t *testing.T, cfg config.NATSConfig) nats.Options {
	t.Helper()
	o := nats.GetDefaultOptions()
	for _, opt := range connectOptions(cfg, logger.NewNop()) {
		require.NoError(t, opt(&o))
	}
	return o
}

func TestConnectOptions_FromConfig(t *testing.T) {
	o := applyOptions(t, config.NATSConfig{
		ClientName:     "marketplace-staging",
		ConnectTimeout: 3 * time.Second,
		MaxReconnects:  10,
		ReconnectWait:  500 * time.Millisecond,
	})

	assert.Equal(t, "marketplace-staging", o.Name)
	assert.Equal(t, 3*time.Second, o.Timeout)
	assert.Equal(t, 10, o.MaxReconnect)
	assert.Equal(t, 500*time.Millisecond, o.ReconnectWait)
	assert.Equal(t, -1, o.ReconnectBufSize)
	assert.NotNil(t, o.AsyncErrorCB)
	assert.NotNil(t, o.ClosedCB)
}

func TestConnectOptions_Defaults(t *testing.T) {
	o := applyOptions(t, config.NATSConfig{})

	assert.Equal(t, defaultClientName, o.Name)
	assert.Equal(t, defaultConnectTimeout, o.Timeout)
	assert.Equal(t, defaultReconnectWait, o.ReconnectWait)
}

func TestQualify(t *testing.T) {
	assert.Equal(t, SubjectOfferResolved, qualify("", SubjectOfferResolved))
	assert.Equal(t, "staging.payment.confirmed", qualify("staging", SubjectPaymentConfirmed))
}

func TestNewNATSPublisher_Validation(t *testing.T) {
	_, err := NewNATSPublisher(nil, "")
	assert.Error(t, err)

	for _, prefix := range []string{"a.*", "events.>", "two words"} {
		_, err := NewNATSPublisher(&nats.Conn{}, prefix)
		assert.Error(t, err, prefix)
	}

	pub, err := NewNATSPublisher(&nats.Conn{}, ".staging.")
	require.NoError(t, err)
	assert.Equal(t, "staging.ad.posted", pub.(*natsPublisher).subject(SubjectAdPosted))
}

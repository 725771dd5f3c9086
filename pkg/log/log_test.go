package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	require.NoError(t, Setup("warn"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	_, isJSON := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)

	assert.Error(t, Setup("verbose"))
	SetupTestLogger()
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DropsNoisyFieldsInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	base := &logger{entry: logrus.NewEntry(logrus.New())}
	l := base.WithFields(Fields{"remote_addr": "10.0.0.1", "country": "US"}).(*logger)

	assert.Contains(t, l.entry.Data, "country")
	assert.NotContains(t, l.entry.Data, "remote_addr")
	assert.Same(t, base, base.WithField("user_agent", "curl"))
}

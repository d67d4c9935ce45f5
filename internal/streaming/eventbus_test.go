package streaming

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraudshield/internal/domain/models"
	"fraudshield/pkg/logger"
)

func testEvent() *AlertEvent {
	return NewAlertEvent(
		uuid.New(),
		"device-1",
		models.AnalysisTypeContent,
		95,
		models.RiskLevelHighRisk,
		[]models.Finding{{Text: "Financial Scam Detected", Severity: models.SeverityDanger}},
	)
}

func TestAlertBusLocalBroadcast(t *testing.T) {
	bus := NewAlertBus(nil, logger.NewDefault())
	defer bus.Close()

	ch, unsubscribe := bus.Subscribe(context.Background())
	defer unsubscribe()

	assert.Equal(t, 1, bus.SubscriberCount())

	event := testEvent()
	require.NoError(t, bus.PublishAlert(context.Background(), event))

	select {
	case got := <-ch:
		assert.Equal(t, event.AnalysisID, got.AnalysisID)
		assert.Equal(t, models.RiskLevelHighRisk, got.RiskLevel)
		assert.Equal(t, []string{"Financial Scam Detected"}, got.Findings)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for alert event")
	}
}

func TestAlertBusUnsubscribe(t *testing.T) {
	bus := NewAlertBus(nil, logger.NewDefault())
	defer bus.Close()

	_, unsubscribe := bus.Subscribe(context.Background())
	assert.Equal(t, 1, bus.SubscriberCount())

	unsubscribe()
	assert.Equal(t, 0, bus.SubscriberCount())

	// Unsubscribing twice is a no-op.
	unsubscribe()
	assert.Equal(t, 0, bus.SubscriberCount())

	// Publishing with no subscribers must not block or error.
	assert.NoError(t, bus.PublishAlert(context.Background(), testEvent()))
}

func TestAlertBusMultipleSubscribers(t *testing.T) {
	bus := NewAlertBus(nil, logger.NewDefault())
	defer bus.Close()

	ch1, unsub1 := bus.Subscribe(context.Background())
	ch2, unsub2 := bus.Subscribe(context.Background())
	defer unsub1()
	defer unsub2()

	event := testEvent()
	require.NoError(t, bus.PublishAlert(context.Background(), event))

	for _, ch := range []<-chan *AlertEvent{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, event.ID, got.ID)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for alert event")
		}
	}
}

func TestNewAlertEventFlattensFindings(t *testing.T) {
	analysisID := uuid.New()
	event := NewAlertEvent(analysisID, "", models.AnalysisTypeLink, 80, models.RiskLevelHighRisk, []models.Finding{
		{Text: "first", Severity: models.SeverityDanger, Critical: true},
		{Text: "second", Severity: models.SeverityWarning},
	})

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, analysisID, event.AnalysisID)
	assert.Equal(t, []string{"first", "second"}, event.Findings)
	assert.False(t, event.CreatedAt.IsZero())
}

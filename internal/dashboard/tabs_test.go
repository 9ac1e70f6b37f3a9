package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cessao-fidc/internal/events"
)

func TestTabController_InitialState(t *testing.T) {
	tc := NewTabController(nil)
	assert.Equal(t, TabDataSubmission, tc.Active())
}

func TestTabController_SelectIsIdempotent(t *testing.T) {
	bus := events.NewEventBus(10)
	defer bus.Close()
	ch := bus.Subscribe(events.EventTabChanged)

	tc := NewTabController(bus)
	for _, tab := range AllTabs {
		tc.Select(tab.ID)
		assert.Equal(t, tab.ID, tc.Active())

		changed := tc.Select(tab.ID)
		assert.False(t, changed, "reselecting %s", tab.ID)
		assert.Equal(t, tab.ID, tc.Active())
	}

	// the first Select of envio-dados was a no-op, so three changes were published
	assert.Len(t, ch, 3)
}

func TestParseTab(t *testing.T) {
	for _, tab := range AllTabs {
		got, err := ParseTab(string(tab.ID))
		require.NoError(t, err)
		assert.Equal(t, tab.ID, got)
	}

	_, err := ParseTab("relatorios")
	assert.ErrorIs(t, err, ErrUnknownTab)
	_, err = ParseTab("")
	assert.ErrorIs(t, err, ErrUnknownTab)
}

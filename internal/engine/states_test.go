package engine

import (
	"errors"
	"testing"

	"github.com/genricoloni/traympd/internal/domain"
)

func TestEntryActionsFor(t *testing.T) {
	track := domain.TrackInfo{Artist: "A", Title: "T"}
	okLookup := func() (domain.TrackInfo, error) { return track, nil }
	failLookup := func() (domain.TrackInfo, error) { return domain.TrackInfo{}, errors.New("EOF") }

	tests := []struct {
		name        string
		state       domain.PlaybackState
		lookup      TrackLookup
		wantIcon    domain.IconID
		wantTooltip string
		wantAction  Action
	}{
		{"Unset acts as disconnected", domain.StateUnset, okLookup, domain.IconDisconnected, "Disconnected", ActionReconnect},
		{"Disconnected", domain.StateDisconnected, okLookup, domain.IconDisconnected, "Disconnected", ActionReconnect},
		{"Playing shows the track", domain.StatePlaying, okLookup, domain.IconPause, "A - T", ActionPause},
		{"Playing falls back on query failure", domain.StatePlaying, failLookup, domain.IconPause, "Playing", ActionPause},
		{"Paused", domain.StatePaused, okLookup, domain.IconPlay, "Paused", ActionResume},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EntryActionsFor(tt.state)
			if got.Icon != tt.wantIcon {
				t.Errorf("Icon = %q, want %q", got.Icon, tt.wantIcon)
			}
			if tooltip := got.Tooltip(tt.lookup); tooltip != tt.wantTooltip {
				t.Errorf("Tooltip = %q, want %q", tooltip, tt.wantTooltip)
			}
			if got.Action != tt.wantAction {
				t.Errorf("Action = %v, want %v", got.Action, tt.wantAction)
			}
		})
	}
}

func TestEntryActionsFor_FixedTooltipsDoNotQuery(t *testing.T) {
	queried := false
	lookup := func() (domain.TrackInfo, error) {
		queried = true
		return domain.TrackInfo{}, nil
	}

	for _, state := range []domain.PlaybackState{domain.StateDisconnected, domain.StatePaused} {
		EntryActionsFor(state).Tooltip(lookup)
	}
	if queried {
		t.Error("Disconnected and Paused tooltips must not query the track")
	}
}

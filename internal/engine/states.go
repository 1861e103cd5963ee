package engine

import "github.com/genricoloni/traympd/internal/domain"

// Action is what the tray's primary action does in a state
type Action int

const (
	ActionReconnect Action = iota
	ActionPause
	ActionResume
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionReconnect:
		return "reconnect"
	case ActionPause:
		return "pause"
	case ActionResume:
		return "resume"
	default:
		return "unknown"
	}
}

// TrackLookup returns the current track. The engine memoizes it per entry.
type TrackLookup func() (domain.TrackInfo, error)

// EntryActions describes how the tray looks in a state and what its primary action does
type EntryActions struct {
	Icon    domain.IconID
	Tooltip func(lookup TrackLookup) string
	Action  Action
}

// EntryActionsFor returns the entry actions of state.
// Unset behaves like Disconnected.
func EntryActionsFor(state domain.PlaybackState) EntryActions {
	switch state {
	case domain.StatePlaying:
		return EntryActions{
			Icon:    domain.IconPause,
			Tooltip: playingTooltip,
			Action:  ActionPause,
		}
	case domain.StatePaused:
		return EntryActions{
			Icon:    domain.IconPlay,
			Tooltip: fixedTooltip(domain.TooltipPaused),
			Action:  ActionResume,
		}
	default:
		return EntryActions{
			Icon:    domain.IconDisconnected,
			Tooltip: fixedTooltip(domain.TooltipDisconnected),
			Action:  ActionReconnect,
		}
	}
}

func fixedTooltip(text string) func(TrackLookup) string {
	return func(TrackLookup) string { return text }
}

// playingTooltip falls back to a generic label when the track cannot be queried
func playingTooltip(lookup TrackLookup) string {
	track, err := lookup()
	if err != nil {
		return domain.TooltipPlaying
	}
	return track.Text()
}

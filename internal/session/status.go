package session

import (
	"github.com/fhs/gompd/v2/mpd"
	"github.com/genricoloni/traympd/internal/domain"
)

// MPD "state" values reported by the status command
const (
	statePlay  = "play"
	statePause = "pause"
	stateStop  = "stop"
)

// snapshot is the part of the server status that drives events
type snapshot struct {
	State  string
	SongID string
}

func snapshotFromAttrs(attrs mpd.Attrs) snapshot {
	return snapshot{
		State:  attrs["state"],
		SongID: attrs["songid"],
	}
}

// known reports whether the state is one the session understands
func (s snapshot) known() bool {
	switch s.State {
	case statePlay, statePause, stateStop:
		return true
	default:
		return false
	}
}

// playbackState maps the server state onto the two connected tray states
func (s snapshot) playbackState() domain.PlaybackState {
	if s.State == statePlay {
		return domain.StatePlaying
	}
	return domain.StatePaused
}

// diffStatus derives the events between two consecutive status snapshots.
// Unknown states produce no state event; the song change is reported last.
func diffStatus(prev, cur snapshot) []domain.Event {
	var events []domain.Event

	if cur.State != prev.State {
		switch cur.State {
		case statePlay:
			if prev.State == statePause {
				events = append(events, domain.Event{Kind: domain.EventPlayerUnpaused})
			} else {
				events = append(events, domain.Event{Kind: domain.EventPlayerStarted})
			}
		case statePause:
			events = append(events, domain.Event{Kind: domain.EventPlayerPaused})
		case stateStop:
			events = append(events, domain.Event{Kind: domain.EventPlayerStopped})
		}
	}

	if cur.SongID != prev.SongID && cur.SongID != "" {
		events = append(events, domain.Event{Kind: domain.EventSongChanged})
	}

	return events
}

// trackFromAttrs converts "currentsong" attributes to the domain model
func trackFromAttrs(attrs mpd.Attrs) domain.TrackInfo {
	artist := attrs["Artist"]
	if artist == "" {
		artist = attrs["AlbumArtist"]
	}
	return domain.TrackInfo{
		ID:     attrs["Id"],
		Artist: artist,
		Title:  attrs["Title"],
		Name:   attrs["Name"],
		File:   attrs["file"],
	}
}

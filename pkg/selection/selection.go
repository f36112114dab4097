package selection

import "github.com/roamplan/roam/pkg/travelplan"

type Mode string

const (
	ModeClosed Mode = "closed"
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
)

// Selection tracks which place or stop currently has the editor open.
// One instance per itinerary screen, shared read-only by the map & list
// surfaces so they can never disagree over what is selected.
//
// Closed holds no entity; create holds exactly one CandidatePlace;
// update holds exactly one Stop.
type Selection struct {
	mode      Mode
	candidate *travelplan.CandidatePlace
	stop      *travelplan.Stop
}

func New() *Selection {
	return &Selection{
		mode: ModeClosed,
	}
}

// OpenForCreate opens the editor on an unscheduled candidate place.
// Opening over an existing selection silently discards it.
func (s *Selection) OpenForCreate(candidate *travelplan.CandidatePlace) {
	s.mode = ModeCreate
	s.candidate = candidate
	s.stop = nil
}

// OpenForEdit opens the editor on an already scheduled stop.
func (s *Selection) OpenForEdit(stop *travelplan.Stop) {
	s.mode = ModeUpdate
	s.stop = stop
	s.candidate = nil
}

func (s *Selection) Close() {
	s.mode = ModeClosed
	s.candidate = nil
	s.stop = nil
}

func (s *Selection) Mode() Mode {
	return s.mode
}

func (s *Selection) Candidate() *travelplan.CandidatePlace {
	return s.candidate
}

func (s *Selection) Stop() *travelplan.Stop {
	return s.stop
}

// ReplaceCandidate swaps in a richer candidate (eg. after a place detail
// fetch resolves) without changing mode. It is a no-op unless the editor
// is still creating the same place - a stale fetch result is discarded.
func (s *Selection) ReplaceCandidate(candidate *travelplan.CandidatePlace) bool {
	if s.mode != ModeCreate || s.candidate == nil || candidate == nil {
		return false
	}

	if s.candidate.PlaceRef != candidate.PlaceRef {
		return false
	}

	s.candidate = candidate

	return true
}

package game

import (
	"errors"
	"time"

	"github.com/RCnetmiles/Lab-Label/internal/models"
)

const (
	PhaseStart   = "start"
	PhasePlaying = "playing"
	PhaseEnd     = "end"
)

const (
	StampNone     = ""
	StampApproved = "APPROVED"
	StampCitation = "CITATION"
)

const DefaultTotalRounds = 5

// StampDelay is how long a result stamp stays on screen before the next
// round. The session itself has no timers; the UI sleeps and then calls
// Advance.
const StampDelay = 1500 * time.Millisecond

var (
	ErrNotPlaying    = errors.New("session is not in a playing phase")
	ErrResultPending = errors.New("submission disabled while result is displayed")
	ErrNoResult      = errors.New("no result to advance past")
	ErrNoProducts    = errors.New("cannot begin a session without products")
)

// Selections is the in-progress answer for the active round.
type Selections struct {
	Container  string
	Pictograms []string
}

// Session is one play-through. It is owned by a single UI loop; mutations
// come only from user actions plus the one post-stamp Advance call, so no
// locking is needed.
type Session struct {
	Phase       string
	RoundIndex  int
	TotalRounds int
	Score       int
	Stamp       string
	Selections  Selections
	Products    []models.Product
}

func NewSession(totalRounds int) *Session {
	if totalRounds <= 0 {
		totalRounds = DefaultTotalRounds
	}
	s := &Session{
		Phase:       PhaseStart,
		TotalRounds: totalRounds,
	}
	s.resetSelections()
	return s
}

// Begin starts a play-through over the given product batch. Rounds clamp
// to the batch size when the catalog came back short.
func (s *Session) Begin(products []models.Product) error {
	if len(products) == 0 {
		return ErrNoProducts
	}

	s.Products = products
	if len(products) < s.TotalRounds {
		s.TotalRounds = len(products)
	}

	s.Phase = PhasePlaying
	s.RoundIndex = 0
	s.Score = 0
	s.Stamp = StampNone
	s.resetSelections()
	return nil
}

// Current returns the product for the active round.
func (s *Session) Current() (*models.Product, bool) {
	if s.Phase != PhasePlaying || s.RoundIndex >= len(s.Products) {
		return nil, false
	}
	return &s.Products[s.RoundIndex], true
}

func (s *Session) SetContainer(container string) error {
	if err := s.mutable(); err != nil {
		return err
	}
	if !models.IsValidContainer(container) {
		return errors.New("unknown container type: " + container)
	}
	s.Selections.Container = container
	return nil
}

// TogglePictogram adds the pictogram to the current selection, or removes
// it if already chosen.
func (s *Session) TogglePictogram(id string) error {
	if err := s.mutable(); err != nil {
		return err
	}

	for i, p := range s.Selections.Pictograms {
		if p == id {
			s.Selections.Pictograms = append(s.Selections.Pictograms[:i], s.Selections.Pictograms[i+1:]...)
			return nil
		}
	}
	s.Selections.Pictograms = append(s.Selections.Pictograms, id)
	return nil
}

// ApplyResult records a verification outcome: the score delta is added
// and the stamp latched, which blocks further submission until Advance.
// A failed request must simply never reach this method; selections stay
// intact for a retry.
func (s *Session) ApplyResult(correct bool, scoreDelta int) error {
	if err := s.mutable(); err != nil {
		return err
	}

	s.Score += scoreDelta
	if correct {
		s.Stamp = StampApproved
	} else {
		s.Stamp = StampCitation
	}
	return nil
}

// Advance clears the stamp and moves to the next round, or ends the
// session after the final one.
func (s *Session) Advance() error {
	if s.Phase != PhasePlaying {
		return ErrNotPlaying
	}
	if s.Stamp == StampNone {
		return ErrNoResult
	}

	s.Stamp = StampNone
	if s.RoundIndex+1 < s.TotalRounds {
		s.RoundIndex++
		s.resetSelections()
		return nil
	}

	s.Phase = PhaseEnd
	return nil
}

// Restart returns to the start screen. The caller re-fetches a fresh
// product batch before the next Begin.
func (s *Session) Restart() {
	s.Phase = PhaseStart
	s.Products = nil
	s.RoundIndex = 0
	s.Score = 0
	s.Stamp = StampNone
	s.resetSelections()
}

func (s *Session) mutable() error {
	if s.Phase != PhasePlaying {
		return ErrNotPlaying
	}
	if s.Stamp != StampNone {
		return ErrResultPending
	}
	return nil
}

func (s *Session) resetSelections() {
	s.Selections = Selections{Container: models.ContainerGlass}
}

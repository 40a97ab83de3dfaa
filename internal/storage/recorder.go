package storage

import "github.com/vovakirdan/tui-adventure/internal/state"

var (
	_ state.Recorder        = (*Store)(nil)
	_ state.CheckpointStore = (*Store)(nil)
)

// RecordAdventure stores the result of a finished adventure.
func (s *Store) RecordAdventure(r state.ResultData) error {
	_, err := s.RecordResult(Result{
		Player: r.Player,
		Coins:  r.Coins,
		Total:  r.Total,
		Lives:  r.Lives,
		Ticks:  r.Ticks,
	})
	return err
}

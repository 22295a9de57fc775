package arkanoid

import "math"

// Snapshot is a flat copy of the session state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	Phase      string
	Score      int
	Lives      int
	EndMessage string

	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64

	// Remaining blocks, each as 3 values: X, Y, Points
	BlockCount int
	BlockData  []float64
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	blockData := make([]float64, 0, len(s.blocks)*3)
	for _, b := range s.blocks {
		blockData = append(blockData, b.Rect.X, b.Rect.Y, float64(b.Points))
	}

	return Snapshot{
		Tick:       s.tickCount,
		Phase:      string(s.phase),
		Score:      s.score,
		Lives:      s.lives,
		EndMessage: s.endMessage,
		PaddleX:    s.paddle.X,
		BallX:      s.ball.Pos.X,
		BallY:      s.ball.Pos.Y,
		BallVX:     s.ball.Vel.X,
		BallVY:     s.ball.Vel.Y,
		BlockCount: len(s.blocks),
		BlockData:  blockData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Phase + "|" + snap.EndMessage {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlockCount) //#nosec G115 -- hash computation

	for _, v := range []float64{snap.PaddleX, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY} {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BlockData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}

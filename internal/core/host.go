package core

// Host is the graphics/input/timing collaborator the game loop runs on.
// All calls are synchronous and made from the loop's goroutine.
//
// Drawing calls compose the next frame; Present makes it visible.
type Host interface {
	// Init prepares the display. Teardown is only called after a successful Init.
	Init() error

	// Teardown releases the display. Called exactly once per successful Init.
	Teardown()

	// Clear fills the back buffer with a background color.
	Clear(c Color)

	// DrawRect fills a rectangle given in world pixels.
	DrawRect(r Rect, c Color)

	// DrawCircle fills a circle given in world pixels.
	DrawCircle(center Vec, radius float64, c Color)

	// DrawText writes text with its top-left corner at pos; large selects
	// the headline font.
	DrawText(text string, pos Vec, large bool)

	// Present shows the composed frame.
	Present()

	// PollEvents returns the events received since the previous call.
	PollEvents() []Event

	// HeldKeys returns the keys currently held down.
	HeldKeys() KeySet

	// TickClock blocks until the next frame boundary for the given rate.
	TickClock(fps int)

	// Wait blocks for the given number of milliseconds.
	Wait(ms int)
}

// MainThreadHost is implemented by hosts whose event loop must own the
// process main goroutine. RunMain calls loop on another goroutine and returns
// its error once both have finished.
type MainThreadHost interface {
	Host
	RunMain(loop func() error) error
}

package changes

// Mode selects how the Changes Iterator drives the feed: FiniteMode reads
// to the end of the current change log once (`feed=normal`); ListenMode
// long-polls forever (`feed=longpoll`).
type Mode int

const (
	FiniteMode Mode = iota
	ListenMode
)

func (m Mode) String() string {
	if m == ListenMode {
		return "LISTEN"
	}
	return "FINITE"
}

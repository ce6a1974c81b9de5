package caps

import (
	"github.com/muesli/termenv"

	"github.com/srlehn/termcaps/mux"
	"github.com/srlehn/termcaps/terminals"
)

// Resolve computes the profile of program p running under env with the embedded database.
func Resolve(p terminals.Program, env termenv.Environ) Profile {
	return defaultDatabase.Resolve(p, env)
}

// ResolveWith is Resolve with extra overlays applied after the multiplexer overlays.
func ResolveWith(p terminals.Program, env termenv.Environ, extra ...Overlay) Profile {
	return defaultDatabase.ResolveWith(p, env, extra...)
}

// Resolve layers the baseline, the overlay of p and the overlays of the
// multiplexers announced in env. Multiplexers are applied last, tmux before screen.
func (db *Database) Resolve(p terminals.Program, env termenv.Environ) Profile {
	return db.ResolveWith(p, env)
}

func (db *Database) ResolveWith(p terminals.Program, env termenv.Environ, extra ...Overlay) Profile {
	var prof Profile
	for _, l := range db.Layers(p, env) {
		l.Overlay.Apply(&prof)
	}
	for i := range extra {
		extra[i].Apply(&prof)
	}
	return prof
}

// Layer is one named overlay of a resolution.
type Layer struct {
	Name    string
	Overlay *Overlay
}

// Layers returns the overlays Resolve applies, in order.
func (db *Database) Layers(p terminals.Program, env termenv.Environ) []Layer {
	if db == nil {
		db = defaultDatabase
	}
	if !p.IsValid() {
		p = terminals.Unknown
	}
	layers := []Layer{{Name: `baseline`, Overlay: &db.baseline}}
	if o, ok := db.programs[p]; ok {
		layers = append(layers, Layer{Name: p.String(), Overlay: &o})
	}
	for _, m := range mux.Detect(env) {
		if o, ok := db.muxers[m.Kind()]; ok {
			layers = append(layers, Layer{Name: m.Name(), Overlay: &o})
		}
	}
	return layers
}

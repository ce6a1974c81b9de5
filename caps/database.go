package caps

import (
	"bytes"
	_ "embed"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/srlehn/termcaps/internal/errors"
	"github.com/srlehn/termcaps/mux"
	"github.com/srlehn/termcaps/terminals"
)

//go:embed caps.yaml
var embeddedDatabase []byte

// Database holds the baseline and the sparse per-program and per-multiplexer overlays.
// A Database is read-only after loading and safe for concurrent use.
type Database struct {
	baseline Overlay
	programs map[terminals.Program]Overlay
	muxers   map[mux.Kind]Overlay
}

type databaseFile struct {
	Baseline     Overlay            `yaml:"baseline"`
	Programs     map[string]Overlay `yaml:"programs"`
	Multiplexers map[string]Overlay `yaml:"multiplexers"`
}

var defaultDatabase = mustLoadDatabase(embeddedDatabase)

func mustLoadDatabase(b []byte) *Database {
	db, err := LoadDatabase(bytes.NewReader(b))
	if err != nil {
		panic(`embedded capability database: ` + err.Error())
	}
	return db
}

// Default returns the embedded database.
func Default() *Database { return defaultDatabase }

// LoadDatabase decodes a yaml database. Unknown keys are rejected,
// the baseline must set every field and every program must have an entry.
func LoadDatabase(r io.Reader) (*Database, error) {
	if r == nil {
		return nil, errors.NilParam(r)
	}
	var f databaseFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.WrapPrefix(err, `capability database`, 0)
	}
	if missing := missingFields(&f.Baseline); len(missing) > 0 {
		return nil, errors.Errorf(`capability database: baseline lacks %v`, missing)
	}
	db := &Database{
		baseline: f.Baseline,
		programs: make(map[terminals.Program]Overlay, len(f.Programs)),
		muxers:   make(map[mux.Kind]Overlay, len(f.Multiplexers)),
	}
	for name, o := range f.Programs {
		p, ok := terminals.ParseProgram(name)
		if !ok {
			return nil, errors.New(&terminals.UnknownProgramError{Name: name})
		}
		db.programs[p] = o
	}
	for _, p := range terminals.Programs() {
		if _, ok := db.programs[p]; !ok {
			return nil, errors.Errorf(`capability database: no entry for program %q`, p.String())
		}
	}
	for name, o := range f.Multiplexers {
		k, ok := parseMuxKind(name)
		if !ok {
			return nil, errors.Errorf(`capability database: unknown multiplexer %q`, name)
		}
		db.muxers[k] = o
	}
	return db, nil
}

func parseMuxKind(name string) (mux.Kind, bool) {
	for _, k := range mux.Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// missingFields lists the yaml names of the absent fields of o.
func missingFields(o *Overlay) []string {
	var missing []string
	v := reflect.ValueOf(o).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).IsNil() {
			missing = append(missing, yamlName(t.Field(i)))
		}
	}
	return missing
}

func yamlName(f reflect.StructField) string {
	tag, _, _ := strings.Cut(f.Tag.Get(`yaml`), `,`)
	if len(tag) == 0 {
		return f.Name
	}
	return tag
}

// Baseline returns the profile before any overlay is applied.
func (db *Database) Baseline() Profile {
	if db == nil {
		db = defaultDatabase
	}
	var p Profile
	db.baseline.Apply(&p)
	return p
}

// ProgramOverlay returns the overlay of program p.
// The values it points to are shared and must not be modified.
func (db *Database) ProgramOverlay(p terminals.Program) Overlay {
	if db == nil {
		db = defaultDatabase
	}
	return db.programs[p]
}

// MuxOverlay returns the overlay of multiplexer k.
func (db *Database) MuxOverlay(k mux.Kind) Overlay {
	if db == nil {
		db = defaultDatabase
	}
	return db.muxers[k]
}

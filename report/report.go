// Package report renders resolved profiles as aligned diagnostic text.
package report

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"

	"github.com/iancoleman/strcase"

	"github.com/srlehn/termcaps/caps"
	"github.com/srlehn/termcaps/internal/errors"
	"github.com/srlehn/termcaps/mouse"
	"github.com/srlehn/termcaps/mux"
	"github.com/srlehn/termcaps/size"
	"github.com/srlehn/termcaps/terminals"
)

// Input is everything a report lists.
type Input struct {
	Program      terminals.Program
	Family       terminals.Family
	Muxers       mux.Muxers
	Capabilities caps.Profile
	Mouse        mouse.Profile
	// Size is printed if set, otherwise SizeErr if set.
	Size    *size.Size
	SizeErr error
}

// Write lists every field of in. The output only depends on in.
func Write(w io.Writer, in Input) error {
	if w == nil {
		return errors.NilParam(w)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintln(tw, "program:\t"+in.Program.String())
	fmt.Fprintln(tw, "family:\t"+in.Family.String())
	muxers := in.Muxers.String()
	if len(muxers) == 0 {
		muxers = `none`
	}
	fmt.Fprintln(tw, "muxers:\t"+muxers)
	switch {
	case in.Size != nil:
		fmt.Fprintln(tw, "size:\t"+in.Size.String())
	case in.SizeErr != nil:
		fmt.Fprintln(tw, "size:\tunavailable ("+in.SizeErr.Error()+`)`)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "capabilities:")
	writeFields(tw, &in.Capabilities)

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "mouse:")
	writeFields(tw, &in.Mouse)

	if err := tw.Flush(); err != nil {
		return errors.New(err)
	}
	return nil
}

// String returns the report of in.
func String(in Input) string {
	b := &strings.Builder{}
	_ = Write(b, in)
	return b.String()
}

func writeFields(w io.Writer, p any) {
	v := reflect.ValueOf(p).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		fmt.Fprintf(w, "  %s:\t%v\n", FieldName(t.Field(i)), v.Field(i).Interface())
	}
}

// FieldName is the yaml name of f, or the snake case form of its Go name.
func FieldName(f reflect.StructField) string {
	if tag, _, _ := strings.Cut(f.Tag.Get(`yaml`), `,`); len(tag) > 0 && tag != `-` {
		return tag
	}
	return snake(f.Name)
}

func snake(name string) string {
	s := strcase.ToSnake(name)
	// don't split "UTF8"
	b := &strings.Builder{}
	var d rune
	for _, c := range s {
		if d == 0 || (d == '_' && c >= '0' && c <= '9') {
			d = c
			continue
		}
		b.WriteRune(d)
		d = c
	}
	if d != 0 {
		b.WriteRune(d)
	}
	return b.String()
}

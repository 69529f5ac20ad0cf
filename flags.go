package falling

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"
)

// LoadOptions reads a JSON option file on top of DefaultOptions.
func LoadOptions(path string) (Options, error) {
	return loadOptionsOver(DefaultOptions(), path)
}

func loadOptionsOver(base Options, path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("load options: %w", err)
	}
	base.Colors = slices.Clone(base.Colors)
	if err := json.Unmarshal(data, &base); err != nil {
		return Options{}, fmt.Errorf("parse options %s: %w", path, err)
	}
	return base, nil
}

// RegisterFlags defines one flag per option on fs, using the current values
// of o as defaults. Colors are given as a comma-separated list.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&o.Frequency, "frequency", o.Frequency, "particles spawned per frame")
	fs.Float64Var(&o.MinRadius, "min-radius", o.MinRadius, "minimum particle radius")
	fs.Float64Var(&o.MaxRadius, "max-radius", o.MaxRadius, "maximum particle radius")
	fs.Float64Var(&o.MinSpeed, "min-speed", o.MinSpeed, "minimum fall speed per frame")
	fs.Float64Var(&o.MaxSpeed, "max-speed", o.MaxSpeed, "maximum fall speed per frame")
	fs.Float64Var(&o.MinAngle, "min-angle", o.MinAngle, "minimum horizontal drift per unit of speed")
	fs.Float64Var(&o.MaxAngle, "max-angle", o.MaxAngle, "maximum horizontal drift per unit of speed")
	fs.Var((*colorList)(&o.Colors), "colors", "comma-separated palette")
	fs.TextVar(&o.Type, "type", o.Type, "flake shape: Square, Text or Circle")
	fs.StringVar(&o.Text, "text", o.Text, "glyph drawn by Text flakes")
	fs.StringVar(&o.El, "el", o.El, `mount selector ("body" or "#id")`)
}

// ParseFlags parses args into options, starting from base. A -config JSON
// file, if given, is applied on top of base and flags set explicitly on the
// command line override it. fs may already hold program-specific flags.
func ParseFlags(fs *flag.FlagSet, args []string, base Options) (Options, error) {
	opts := base
	opts.Colors = slices.Clone(base.Colors)
	var path string
	fs.StringVar(&path, "config", "", "JSON option file")
	opts.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if path == "" {
		return opts, nil
	}

	set := make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			set[f.Name] = f.Value.String()
		}
	})
	loaded, err := loadOptionsOver(base, path)
	if err != nil {
		return Options{}, err
	}
	opts = loaded
	for name, val := range set {
		if err := fs.Set(name, val); err != nil {
			return Options{}, fmt.Errorf("flag -%s: %w", name, err)
		}
	}
	return opts, nil
}

type colorList []string

func (c *colorList) String() string {
	if c == nil {
		return ""
	}
	return strings.Join(*c, ",")
}

func (c *colorList) Set(s string) error {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*c = out
	return nil
}

package falling

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Options is the loosely typed, serializable form of a Config. JSON keys
// follow the browser build's option object: "type_" is read as an alias of
// "type" and "wasm" is accepted and ignored. Any other unknown key is an
// error.
type Options struct {
	Frequency int       `json:"frequency"`
	MinRadius float64   `json:"minRadius"`
	MaxRadius float64   `json:"maxRadius"`
	MinSpeed  float64   `json:"minSpeed"`
	MaxSpeed  float64   `json:"maxSpeed"`
	MinAngle  float64   `json:"minAngle"`
	MaxAngle  float64   `json:"maxAngle"`
	Colors    []string  `json:"colors"`
	Type      FlakeType `json:"type"`
	Text      string    `json:"text"`
	El        string    `json:"el"`
}

// DefaultOptions returns the stock option set.
func DefaultOptions() Options {
	return Options{
		Frequency: 1,
		MinRadius: 1,
		MaxRadius: 3,
		MinSpeed:  1,
		MaxSpeed:  3,
		MinAngle:  -0.1,
		MaxAngle:  0.1,
		Colors:    []string{"#FFF"},
		Type:      FlakeSquare,
		Text:      "*",
		El:        "body",
	}
}

// ParseOptions decodes JSON on top of DefaultOptions. Keys absent from the
// document keep their default values.
func ParseOptions(jsonData []byte) (Options, error) {
	opts := DefaultOptions()
	if err := json.Unmarshal(jsonData, &opts); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	return opts, nil
}

// UnmarshalJSON decodes o strictly, keeping the current value of every key
// absent from data. When both "type" and "type_" are present, "type" wins.
func (o *Options) UnmarshalJSON(data []byte) error {
	type plain Options
	aux := struct {
		*plain
		Type      *FlakeType      `json:"type"`
		TypeAlias *FlakeType      `json:"type_"`
		Wasm      json.RawMessage `json:"wasm"`
	}{plain: (*plain)(o)}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&aux); err != nil {
		return err
	}
	switch {
	case aux.Type != nil:
		o.Type = *aux.Type
	case aux.TypeAlias != nil:
		o.Type = *aux.TypeAlias
	}
	return nil
}

// Config validates the options and converts them into a Config.
func (o Options) Config() (Config, error) {
	return NewConfig(
		o.Frequency,
		Range{o.MinRadius, o.MaxRadius},
		Range{o.MinSpeed, o.MaxSpeed},
		Range{o.MinAngle, o.MaxAngle},
		o.Colors,
		o.Type,
		o.Text,
		o.El,
	)
}

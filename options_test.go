package falling

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestParseOptionsKeepsDefaults(t *testing.T) {
	opts, err := ParseOptions([]byte(`{"frequency": 4, "colors": ["#f00", "#0f0"], "type": "Circle"}`))
	if err != nil {
		t.Fatalf("ParseOptions: %v", err)
	}
	want := DefaultOptions()
	want.Frequency = 4
	want.Colors = []string{"#f00", "#0f0"}
	want.Type = FlakeCircle
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("opts = %+v, want %+v", opts, want)
	}
}

func TestParseOptionsAllKeys(t *testing.T) {
	data := []byte(`{
		"frequency": 2,
		"minRadius": 0.5, "maxRadius": 1.5,
		"minSpeed": 2, "maxSpeed": 6,
		"minAngle": -0.5, "maxAngle": 0.25,
		"colors": ["gold"],
		"type": "text",
		"text": "❄",
		"el": "#stage"
	}`)
	opts, err := ParseOptions(data)
	if err != nil {
		t.Fatalf("ParseOptions: %v", err)
	}
	cfg, err := opts.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.SpawnRate() != 2 || cfg.Radius() != (Range{0.5, 1.5}) || cfg.Speed() != (Range{2, 6}) ||
		cfg.Angle() != (Range{-0.5, 0.25}) || cfg.Variant() != FlakeText || cfg.Text() != "❄" ||
		cfg.MountSelector() != "#stage" || !reflect.DeepEqual(cfg.Palette(), []string{"gold"}) {
		t.Errorf("config = %+v", cfg)
	}
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"malformed", `{"frequency":`, nil},
		{"unknown type", `{"type": "Star"}`, ErrUnknownFlakeType},
		{"unknown alias type", `{"type_": "Star"}`, ErrUnknownFlakeType},
		{"unknown key", `{"frequncy": 3}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOptionsConfigValidates(t *testing.T) {
	opts := DefaultOptions()
	opts.Colors = nil
	if _, err := opts.Config(); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("err = %v, want ErrEmptyPalette", err)
	}
}

func TestOptionsMarshalUsesTypeName(t *testing.T) {
	data, err := json.Marshal(DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["type"] != "Square" {
		t.Errorf("type = %v, want \"Square\"", raw["type"])
	}
}

func TestParseOptionsBrowserKeys(t *testing.T) {
	tests := []struct {
		name string
		data string
		want FlakeType
	}{
		{"type_ alias", `{"type_": "Text", "text": "x"}`, FlakeText},
		{"wasm ignored", `{"type_": "Circle", "wasm": true}`, FlakeCircle},
		{"type wins over type_", `{"type": "Square", "type_": "Text"}`, FlakeSquare},
		{"type only", `{"type": "Circle"}`, FlakeCircle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseOptions([]byte(tt.data))
			if err != nil {
				t.Fatalf("ParseOptions: %v", err)
			}
			if opts.Type != tt.want {
				t.Errorf("Type = %v, want %v", opts.Type, tt.want)
			}
		})
	}
}

func TestLoadOptionsBrowserFile(t *testing.T) {
	path := writeOptionsFile(t, `{"frequency": 2, "type_": "Text", "text": "❄", "wasm": false}`)
	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.Type != FlakeText || opts.Text != "❄" || opts.Frequency != 2 {
		t.Errorf("opts = %+v", opts)
	}
}

package main

import (
	"encoding/json"
	"os"
)

// Config overrides shared flag defaults when loaded from a -c JSON file.
// Only fields present in the file are applied; it is decoded directly
// over CLI-derived values rather than replacing them wholesale.
type Config struct {
	Seed      *uint64  `json:"seed"`
	Step      *int     `json:"step"`
	MinArea   *uint64  `json:"area"`
	Radius    *int64   `json:"radius"`
	ChunkSize *uint64  `json:"chunks"`
	Limit     *uint64  `json:"limit"`
	Manifest  *string  `json:"manifest"`
	Compress  *bool    `json:"compress"`
	Width     *int     `json:"width"`
	Ratio     *float64 `json:"ratio"`
}

func parseJSONConfig(config *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(config)
}

package gconf

import (
	"encoding/json"
	"fmt"
	"os"
)

const configFile = "jigsaw.json"

// GridOptions are the selectable grid sizes (rows, cols).
var GridOptions = [][2]int{
	{2, 3},
	{3, 3},
	{3, 4},
	{4, 4},
	{4, 5},
	{5, 5},
}

type Config struct {
	Theme           string `json:"theme"` // light/dark
	WindowW         int    `json:"window_w"`
	WindowH         int    `json:"window_h"`
	SnapThreshold   int    `json:"snap_threshold"`    // pixels
	GridRows        int    `json:"grid_rows"`         //
	GridCols        int    `json:"grid_cols"`         //
	SecondsPerPiece int    `json:"seconds_per_piece"` // timed mode budget
	MovesPerPiece   int    `json:"moves_per_piece"`   // challenge mode budget
	LastImage       string `json:"last_image"`        // path of the last picked image
	Debug           bool   `json:"debug"`
}

func defaultConfig() Config {
	return Config{
		Theme:           "light",
		WindowW:         1400,
		WindowH:         900,
		SnapThreshold:   40,
		GridRows:        3,
		GridCols:        3,
		SecondsPerPiece: 30,
		MovesPerPiece:   3,
		LastImage:       "",
		Debug:           false,
	}
}

func NewGUIConfig() (*Config, error) {
	_, err := os.Stat(configFile)
	if os.IsNotExist(err) {
		def := defaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(configFile)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %s", err)
	}
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Save() error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(configFile, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.WindowW < 1000 || c.WindowH < 700 {
		c.WindowW = def.WindowW
		c.WindowH = def.WindowH
	}
	if c.SnapThreshold < 1 {
		c.SnapThreshold = def.SnapThreshold
	}
	if !validGrid(c.GridRows, c.GridCols) {
		c.GridRows = def.GridRows
		c.GridCols = def.GridCols
	}
	if c.SecondsPerPiece < 1 {
		c.SecondsPerPiece = def.SecondsPerPiece
	}
	if c.MovesPerPiece < 1 {
		c.MovesPerPiece = def.MovesPerPiece
	}
}

func validGrid(rows, cols int) bool {
	for _, o := range GridOptions {
		if o[0] == rows && o[1] == cols {
			return true
		}
	}
	return false
}

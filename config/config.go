package config

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/amazeing/maze"
	"github.com/they4kman/amazeing/solver/candidate"
	"gopkg.in/yaml.v2"
)

// Config keys, shared by the KEY=VALUE and YAML formats.
const (
	KeyWidth      = "WIDTH"
	KeyHeight     = "HEIGHT"
	KeyEntry      = "ENTRY"
	KeyExit       = "EXIT"
	KeyOutputFile = "OUTPUT_FILE"
	KeyPerfect    = "PERFECT"
	KeySeed       = "SEED"
	KeyIcon       = "ICON"
	KeySolver     = "SOLVER"
)

var requiredKeys = []string{KeyWidth, KeyHeight, KeyEntry, KeyExit, KeyOutputFile, KeyPerfect}

// NoIcon as the icon path disables the centre obstacle.
const NoIcon = "none"

// PathFinders maps solver names to their implementation.
var PathFinders = map[string]maze.PathFinder{
	"bfs":       maze.BreadthFirst{},
	"candidate": candidate.Finder{},
}

const DefaultSolver = "bfs"

type Error struct {
	msg string
}

func (e *Error) Error() string {
	return "Config error: " + e.msg
}

func errorf(format string, args ...interface{}) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

type Config struct {
	Width, Height int
	Entry, Exit   maze.Coord
	Perfect       bool

	// Zero picks a random seed
	Seed int64

	// Path to an icon bitmap; empty uses maze.DefaultIcon, NoIcon disables it
	IconFile string

	// Where the text dump is written; "-" is standard output
	OutputFile string

	// One of the PathFinders keys
	Solver string
}

func New() Config {
	return Config{
		Width:      20,
		Height:     15,
		Entry:      maze.Coord{X: 0, Y: 0},
		Exit:       maze.Coord{X: 19, Y: 14},
		Perfect:    true,
		Seed:       0,
		OutputFile: "maze.txt",
		Solver:     DefaultSolver,
	}
}

// Load reads path on top of the defaults. Files ending in .yaml or .yml are
// YAML mappings; anything else holds KEY=VALUE lines.
func Load(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, errorf("%v", err)
	}

	var values map[string]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		values, err = parseYAML(data)
	default:
		values, err = parseKeyValue(data)
	}
	if err != nil {
		return Config{}, err
	}

	cfg := New()
	if err := cfg.apply(values); err != nil {
		return Config{}, err
	}

	logrus.WithField("path", path).Debug("Loaded config")
	return cfg, nil
}

func parseKeyValue(data []byte) (map[string]string, error) {
	values, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errorf("%v", err)
	}
	return values, nil
}

func parseYAML(data []byte) (map[string]string, error) {
	raw := make(map[string]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errorf("%v", err)
	}

	values := make(map[string]string, len(raw))
	for key, value := range raw {
		values[strings.ToUpper(key)] = value
	}
	return values, nil
}

func (cfg *Config) apply(values map[string]string) error {
	var missing []string
	for _, key := range requiredKeys {
		if _, ok := values[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return errorf("missing value(s): %v", missing)
	}

	// Sorted so the first reported error does not depend on map order
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := strings.TrimSpace(values[key])

		var err error
		switch key {
		case KeyWidth:
			cfg.Width, err = strconv.Atoi(value)
		case KeyHeight:
			cfg.Height, err = strconv.Atoi(value)
		case KeyEntry:
			cfg.Entry, err = ParseCoord(value)
		case KeyExit:
			cfg.Exit, err = ParseCoord(value)
		case KeyOutputFile:
			cfg.OutputFile = value
		case KeyPerfect:
			cfg.Perfect, err = ParseBool(value)
		case KeySeed:
			cfg.Seed, err = strconv.ParseInt(value, 10, 64)
		case KeyIcon:
			cfg.IconFile = value
		case KeySolver:
			cfg.Solver = value
		default:
			return errorf("unknown parameter: %s", key)
		}
		if err != nil {
			return errorf("invalid argument %q for %s", value, key)
		}
	}
	return nil
}

// ParseCoord reads an "x,y" pair.
func ParseCoord(value string) (maze.Coord, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return maze.Coord{}, errorf("invalid coordinate %q", value)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return maze.Coord{}, errorf("invalid coordinate %q", value)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return maze.Coord{}, errorf("invalid coordinate %q", value)
	}
	return maze.Coord{X: x, Y: y}, nil
}

// ParseBool accepts "True" and "False" in any letter case.
func ParseBool(value string) (bool, error) {
	switch {
	case strings.EqualFold(value, "true"):
		return true, nil
	case strings.EqualFold(value, "false"):
		return false, nil
	default:
		return false, errorf("invalid boolean %q", value)
	}
}

// Validate checks the fields the maze itself does not.
func (cfg Config) Validate() error {
	if cfg.OutputFile == "" {
		return errorf("missing value(s): [%s]", KeyOutputFile)
	}
	if _, ok := PathFinders[cfg.Solver]; !ok {
		return errorf("unknown solver %q", cfg.Solver)
	}
	return nil
}

func (cfg Config) LoadIcon() (*maze.Icon, error) {
	switch cfg.IconFile {
	case "":
		return maze.DefaultIcon, nil
	case NoIcon:
		return nil, nil
	}

	file, err := os.Open(cfg.IconFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return maze.ReadIcon(file)
}

// MazeOptions builds the generation parameters for one maze.
func (cfg Config) MazeOptions(icon *maze.Icon, logger logrus.FieldLogger) maze.Options {
	return maze.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Entry:      cfg.Entry,
		Exit:       cfg.Exit,
		Perfect:    cfg.Perfect,
		Seed:       cfg.Seed,
		Icon:       icon,
		PathFinder: PathFinders[cfg.Solver],
		Logger:     logger,
	}
}

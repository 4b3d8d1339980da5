package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/amazeing/config"
	"github.com/they4kman/amazeing/maze"
)

var (
	configPath string
	verbose    bool
	overrides  = config.New()
	entryFlag  = coordValue(overrides.Entry)
	exitFlag   = coordValue(overrides.Exit)
	solverFlag = solverValue(overrides.Solver)
)

var log = logrus.StandardLogger()

var rootCmd = &cobra.Command{
	Use:   "amazeing",
	Short: "Generate a maze and its shortest path",
	Long: `amazeing carves a rectangular maze around a centred icon, picks a
single entry and exit and writes the walls and the shortest path as text.

Generate with the defaults
	amazeing

Read parameters from a config file, overriding the seed
	amazeing --config config.txt --seed 42
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		grid, err := generate(cfg, log)
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"seed":        grid.Seed(),
			"path_length": len(grid.Path()),
			"output":      cfg.OutputFile,
		}).Info("Generated maze")

		return writeOutput(cfg.OutputFile, grid)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig starts from the config file, if any, then applies the flags the
// user actually set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.New()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = overrides.Width
	}
	if flags.Changed("height") {
		cfg.Height = overrides.Height
	}
	if flags.Changed("entry") {
		cfg.Entry = maze.Coord(entryFlag)
	}
	if flags.Changed("exit") {
		cfg.Exit = maze.Coord(exitFlag)
	}
	if flags.Changed("perfect") {
		cfg.Perfect = overrides.Perfect
	}
	if flags.Changed("seed") {
		cfg.Seed = overrides.Seed
	}
	if flags.Changed("icon") {
		cfg.IconFile = overrides.IconFile
	}
	if flags.Changed("output") {
		cfg.OutputFile = overrides.OutputFile
	}
	if flags.Changed("solver") {
		cfg.Solver = string(solverFlag)
	}

	return cfg, cfg.Validate()
}

func generate(cfg config.Config, logger logrus.FieldLogger) (*maze.Grid, error) {
	icon, err := cfg.LoadIcon()
	if err != nil {
		return nil, err
	}

	grid, err := maze.New(cfg.MazeOptions(icon, logger))
	if err != nil {
		return nil, err
	}
	if err := grid.CreateFullMaze(); err != nil {
		return nil, err
	}
	return grid, nil
}

func writeOutput(path string, grid *maze.Grid) error {
	var out io.Writer = os.Stdout
	if path != "-" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	_, err := grid.WriteTo(out)
	return err
}

type coordValue maze.Coord

func (val *coordValue) String() string {
	return maze.Coord(*val).String()
}

func (val *coordValue) Set(value string) error {
	c, err := config.ParseCoord(value)
	if err != nil {
		return err
	}
	*val = coordValue(c)
	return nil
}

func (val *coordValue) Type() string {
	return "x,y"
}

type solverValue string

func (val *solverValue) String() string {
	return string(*val)
}

func (val *solverValue) Set(value string) error {
	if _, isValid := config.PathFinders[value]; !isValid {
		return fmt.Errorf("invalid solver, expected one of %s", solverNames())
	}
	*val = solverValue(value)
	return nil
}

func (val *solverValue) Type() string {
	return "solver"
}

func solverNames() string {
	names := make([]string, 0, len(config.PathFinders))
	for name := range config.PathFinders {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (KEY=VALUE lines, or .yaml/.yml)")
	rootCmd.Flags().IntVarP(&overrides.Width, "width", "w", overrides.Width, "Width of the maze, in cells")
	rootCmd.Flags().IntVarP(&overrides.Height, "height", "h", overrides.Height, "Height of the maze, in cells")
	rootCmd.Flags().Var(&entryFlag, "entry", "Entry cell as x,y")
	rootCmd.Flags().Var(&exitFlag, "exit", "Exit cell as x,y")
	rootCmd.Flags().BoolVarP(&overrides.Perfect, "perfect", "p", overrides.Perfect, "Generate a perfect maze (no loops)")
	rootCmd.Flags().Int64VarP(&overrides.Seed, "seed", "s", overrides.Seed, "Random seed; 0 picks one")
	rootCmd.Flags().StringVarP(&overrides.IconFile, "icon", "i", "", `Icon bitmap file; "none" disables the icon`)
	rootCmd.Flags().StringVarP(&overrides.OutputFile, "output", "o", overrides.OutputFile, `Output file; "-" for standard output`)
	rootCmd.Flags().Var(&solverFlag, "solver", fmt.Sprintf("Path finder: %s", solverNames()))
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log generation details")
}

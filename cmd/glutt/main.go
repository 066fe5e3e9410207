// glutt is a falling-object catcher game: move Glutt left and right to
// catch food, fill the hunger meter and reach 500 points.
//
// Usage:
//
//	glutt                    - Play with the configured frontend
//	glutt play               - Same, explicitly
//	glutt frontends          - List available frontends
//
// Global flags:
//
//	--config <path>      - Config file (default: search ~/.glutt, ./configs)
//	--frontend <name>    - terminal or window
//	--assets <dir>       - Image asset directory (window frontend)
//	--fps <rate>         - Tick rate (default: 60)
//	--seed <value>       - RNG seed for reproducible gameplay
//	--mute               - Disable sound
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/feed-glutt/internal/platform/tui"
	_ "github.com/vovakirdan/feed-glutt/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagFrontend string
	flagAssets   string
	flagFPS      int
	flagSeed     int64
	flagMute     bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glutt",
	Short: "Feed GLUTT! - catch falling food before Glutt starves",
	Long: `Feed GLUTT! is a single-screen arcade game. Move Glutt left and right
to catch falling food. Every catch adds its value to both the score and
the hunger meter. Fill the meter to 100% with at least 500 points to win;
let it drop to 0% and Glutt starves.

Controls:
  Left/Right, A/D  - Move
  Enter/R          - Start or restart
  P                - Pause
  Esc/Q            - Quit
  Mouse            - Click "Mint Collectible" after a win

Examples:
  glutt
  glutt --frontend window --assets ./assets
  glutt play --seed 42 --mute
  glutt frontends`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&flagFrontend, "frontend", "", "Frontend: terminal or window")
	pf.StringVar(&flagAssets, "assets", "", "Image asset directory")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
}

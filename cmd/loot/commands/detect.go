package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/RacerBG/loot/internal/detection"
	"github.com/RacerBG/loot/internal/errors"
	"github.com/RacerBG/loot/internal/gameid"
	"github.com/RacerBG/loot/internal/logging"
	"github.com/RacerBG/loot/internal/registry"
	"github.com/RacerBG/loot/internal/settings"
)

var (
	detectOutput      string
	detectInteractive bool
)

func init() {
	detectCmd.Flags().StringVarP(&detectOutput, "output", "o", "text",
		"output format: text, json, yaml")
	detectCmd.Flags().BoolVarP(&detectInteractive, "interactive", "i", false,
		"pick one install interactively")

	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect [game...]",
	Short: "Detect game installs",
	Long: `Detect installs of the given games (default: the configured
default games, or all supported games).

For each game, detection checks the directory next to the running program
and the registry key the game's installer writes. Games with a configured
path in the loot config file are additionally checked at that path.`,
	RunE: runDetect,
}

// installReport is one detected install in machine-readable output.
type installReport struct {
	Game      string `json:"game" yaml:"game"`
	Name      string `json:"name" yaml:"name"`
	Source    string `json:"source" yaml:"source"`
	Path      string `json:"path" yaml:"path"`
	LocalPath string `json:"local_path,omitempty" yaml:"local_path,omitempty"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	switch detectOutput {
	case "text", "json", "yaml":
	default:
		return errors.NewUserError(
			errors.Newf("unknown output format %q", detectOutput),
			"valid formats: text, json, yaml")
	}

	ids, err := gamesToDetect(args)
	if err != nil {
		return errors.NewUserError(err, "Run 'loot games' to see valid game IDs")
	}

	logger := logging.FromContext(cmd.Context())
	finder := detection.NewFinder(registry.NewSystemReader(), logger)

	var installs []detection.GameInstall
	for _, id := range ids {
		installs = append(installs, finder.FindGameInstalls(id)...)

		if install, ok := detectConfiguredInstall(finder, id); ok {
			installs = append(installs, install)
		}
	}

	if len(installs) == 0 {
		if len(args) > 0 {
			return errors.NewUserError(errors.ErrGameNotFound,
				"Configure an install path in the loot config file")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No game installs found.")
		return nil
	}

	if detectInteractive {
		return pickInstall(cmd.OutOrStdout(), installs)
	}

	return writeInstalls(cmd.OutOrStdout(), installs)
}

// gamesToDetect resolves the games named on the command line, falling back
// to the configured default games.
func gamesToDetect(args []string) ([]gameid.GameID, error) {
	names := args
	if len(names) == 0 && cfg != nil {
		names = cfg.DefaultGames
	}

	if len(names) == 0 {
		return gameid.GameIDs(), nil
	}

	ids := make([]gameid.GameID, 0, len(names))
	for _, name := range names {
		id, err := gameid.ParseGameID(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// detectConfiguredInstall runs single-path detection against the install
// path configured for the game, if there is one.
func detectConfiguredInstall(finder *detection.Finder, id gameid.GameID) (detection.GameInstall, bool) {
	if cfg == nil {
		return detection.GameInstall{}, false
	}

	override, ok := cfg.Games[string(id)]
	if !ok || override.Path == "" {
		return detection.GameInstall{}, false
	}

	game := settings.NewGame(id)
	game.SetGamePath(override.Path)

	localPath := override.LocalPath
	if localPath == "" {
		localPath = settings.DefaultLocalPath(id)
	}
	game.SetGameLocalPath(localPath)

	return finder.DetectGameInstall(game)
}

func reports(installs []detection.GameInstall) []installReport {
	out := make([]installReport, 0, len(installs))
	for _, install := range installs {
		out = append(out, installReport{
			Game:      string(install.GameID),
			Name:      install.GameID.Name(),
			Source:    string(install.Source),
			Path:      install.InstallPath,
			LocalPath: install.LocalPath,
		})
	}
	return out
}

func writeInstalls(w io.Writer, installs []detection.GameInstall) error {
	switch detectOutput {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(reports(installs)), "encoding JSON")
	case "yaml":
		data, err := yaml.Marshal(reports(installs))
		if err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		_, err = w.Write(data)
		return errors.Wrap(err, "writing YAML")
	default:
		writeInstallsText(w, installs)
		return nil
	}
}

func writeInstallsText(w io.Writer, installs []detection.GameInstall) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)

	for _, install := range installs {
		bold.Fprint(w, install.GameID.Name())
		green.Fprintf(w, " [%s]", install.Source)
		fmt.Fprintf(w, " %s\n", install.InstallPath)
		if install.LocalPath != "" {
			fmt.Fprintf(w, "  local data: %s\n", install.LocalPath)
		}
	}
}

// pickInstall lets the user fuzzy-pick one install and prints it alone.
func pickInstall(w io.Writer, installs []detection.GameInstall) error {
	idx, err := fuzzyfinder.Find(
		installs,
		func(i int) string {
			return fmt.Sprintf("%s [%s] %s",
				installs[i].GameID.Name(), installs[i].Source, installs[i].InstallPath)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			install := installs[i]
			return fmt.Sprintf("Game: %s\nSource: %s\nPath: %s\nLocal data: %s",
				install.GameID.Name(),
				install.Source,
				install.InstallPath,
				install.LocalPath,
			)
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive selection failed")
	}

	return writeInstalls(w, installs[idx:idx+1])
}

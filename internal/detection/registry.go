package detection

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/RacerBG/loot/internal/gameid"
	"github.com/RacerBG/loot/internal/registry"
)

// registryValue returns the registry location that the game's installer
// historically writes its install path to. The table is total over the
// GameID enumeration.
func registryValue(id gameid.GameID) registry.Value {
	switch id {
	case gameid.TES3:
		return registry.Value{
			Root:   "HKEY_LOCAL_MACHINE",
			Subkey: `Software\Bethesda Softworks\Morrowind`,
			Name:   "Installed Path",
		}
	case gameid.TES4:
		return registry.Value{
			Root:   "HKEY_LOCAL_MACHINE",
			Subkey: `Software\Bethesda Softworks\Oblivion`,
			Name:   "Installed Path",
		}
	case gameid.Nehrim:
		return registry.Value{
			Root:   "HKEY_LOCAL_MACHINE",
			Subkey: `Software\Microsoft\Windows\CurrentVersion\Uninstall\Nehrim - At Fate's Edge_is1`,
			Name:   "InstallLocation",
		}
	case gameid.TES5:
		return registry.Value{
			Root:   "HKEY_LOCAL_MACHINE",
			Subkey: `Software\Bethesda Softworks\Skyrim`,
			Name:   "Installed Path",
		}
	case gameid.Enderal:
		return registry.Value{
			Root:   "HKEY_CURRENT_USER",
			Subkey: `SOFTWARE\SureAI\Enderal`,
			Name:   "Install_Path",
		}
	case gameid.TES5SE:
		return registry.Value{
			Root:   "HKEY_LOCAL_MACHINE",
			Subkey: `Software\Bethesda Softworks\Skyrim Special Edition`,
			Name:   "Installed Path",
		}
	case gameid.EnderalSE:
		return registry.Value{
			Root:   "HKEY_CURRENT_USER",
			Subkey: `SOFTWARE\SureAI\EnderalSE`,
			Name:   "Install_Path",
		}
	case gameid.TES5VR:
		return registry.Value{
			Root:   "HKEY_LOCAL_MACHINE",
			Subkey: `Software\Bethesda Softworks\Skyrim VR`,
			Name:   "Installed Path",
		}
	case gameid.FO3:
		return registry.Value{
			Root:   "HKEY_LOCAL_MACHINE",
			Subkey: `Software\Bethesda Softworks\Fallout3`,
			Name:   "Installed Path",
		}
	case gameid.FONV:
		return registry.Value{
			Root:   "HKEY_LOCAL_MACHINE",
			Subkey: `Software\Bethesda Softworks\FalloutNV`,
			Name:   "Installed Path",
		}
	case gameid.FO4:
		return registry.Value{
			Root:   "HKEY_LOCAL_MACHINE",
			Subkey: `Software\Bethesda Softworks\Fallout4`,
			Name:   "Installed Path",
		}
	case gameid.FO4VR:
		return registry.Value{
			Root:   "HKEY_LOCAL_MACHINE",
			Subkey: `Software\Bethesda Softworks\Fallout 4 VR`,
			Name:   "Installed Path",
		}
	default:
		panic("unrecognised game ID: " + string(id))
	}
}

// readPathFromRegistry reads the path stored at the given registry value.
// An absent or unreadable value is a normal no-result: installs legitimately
// may not exist. Read failures other than absence are logged at debug level.
func readPathFromRegistry(r registry.Reader, value registry.Value, logger *slog.Logger) (string, bool) {
	path, err := r.ReadString(value)
	if err != nil {
		if !errors.Is(err, registry.ErrValueNotFound) {
			logger.Debug("failed to read path from registry",
				"subkey", value.Subkey,
				"value", value.Name,
				"error", err)
		}
		return "", false
	}

	if path == "" {
		return "", false
	}

	return path, true
}

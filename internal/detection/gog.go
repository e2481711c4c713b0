package detection

import "github.com/RacerBG/loot/internal/gameid"

// gogGameIDs returns the GOG product IDs that a game has been sold under.
// Games never released on GOG return no IDs. Several games have more than
// one ID because GOG sells multiple editions as separate products.
func gogGameIDs(id gameid.GameID) []string {
	switch id {
	case gameid.TES3:
		return []string{"1440163901", "1435828767"}
	case gameid.TES4:
		return []string{"1458058109", "1242989820"}
	case gameid.Nehrim:
		return []string{"1497007810"}
	case gameid.TES5SE:
		return []string{"1711230643", "1162721350"}
	case gameid.EnderalSE:
		return []string{"1708684988"}
	case gameid.FO3:
		return []string{"1454315831"}
	case gameid.FONV:
		return []string{"1312824873", "1454587428"}
	case gameid.FO4:
		return []string{"1998527297"}
	case gameid.TES5, gameid.Enderal, gameid.TES5VR, gameid.FO4VR:
		// Steam-only releases.
		return nil
	default:
		panic("unrecognised game ID: " + string(id))
	}
}

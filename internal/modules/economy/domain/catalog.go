package domain

import "strings"

const (
	CostGoldenGloves   = 250
	CostMusicPack      = 600
	CostPetMop         = 350
	CostRebirth        = 1000
	CostTokenFromCoins = 2000
)

const (
	ItemGoldenGloves = "golden-gloves"
	ItemPetMop       = "pet-mop"
	ItemMusicPack    = "music-pack"
	ItemToken        = "token"
	ItemTokenDeduct  = "token-deduct"
	ItemRebirth      = "rebirth"

	themePrefix      = "theme:"
	backgroundPrefix = "bg:"
)

type ItemKind string

const (
	KindConsumable ItemKind = "consumable"
	KindUnlock     ItemKind = "unlock"
	KindTheme      ItemKind = "theme"
	KindBackground ItemKind = "background"
	KindExchange   ItemKind = "exchange"
)

// Appearance is a purchasable theme or background.
type Appearance struct {
	ID    string
	Name  string
	Price int
}

// Item is a single shop entry, identified by the id written to the purchase log.
type Item struct {
	ID    string
	Name  string
	Kind  ItemKind
	Price int
}

var Themes = []Appearance{
	{ID: "default", Name: "Default", Price: 0},
	{ID: "soft-blue", Name: "Soft Blue", Price: 100},
	{ID: "clean-green", Name: "Clean Green", Price: 150},
	{ID: "warm-beige", Name: "Warm Beige", Price: 150},
	{ID: "dark-blue", Name: "Dark Blue", Price: 150},
	{ID: "dark-red", Name: "Dark Red", Price: 200},
	{ID: "black", Name: "Black", Price: 150},
	{ID: "light-red", Name: "Light Red", Price: 150},
	{ID: "purple", Name: "Purple", Price: 200},
	{ID: "orange", Name: "Orange", Price: 200},
}

var Backgrounds = []Appearance{
	{ID: "default", Name: "Default", Price: 0},
	{ID: "radius-gradient", Name: "Radius Gradient", Price: 200},
	{ID: "up-down-gradient", Name: "Up/Down Gradient", Price: 200},
	{ID: "triangle-pattern", Name: "Triangle Pattern", Price: 300},
	{ID: "grid-pattern", Name: "Grid Pattern", Price: 300},
	{ID: "horizontal-lines", Name: "Horizontal Lines", Price: 300},
}

type Track struct {
	ID   string
	Name string
}

var Tracks = []Track{
	{ID: "track-1", Name: "Track 1"},
	{ID: "track-2", Name: "Track 2"},
	{ID: "track-3", Name: "Track 3"},
}

func ThemeItemID(id string) string      { return themePrefix + id }
func BackgroundItemID(id string) string { return backgroundPrefix + id }

func FindTheme(id string) (Appearance, bool) {
	return findAppearance(Themes, id)
}

func FindBackground(id string) (Appearance, bool) {
	return findAppearance(Backgrounds, id)
}

func FindTrack(id string) (Track, bool) {
	for _, t := range Tracks {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}

func findAppearance(list []Appearance, id string) (Appearance, bool) {
	for _, a := range list {
		if a.ID == id {
			return a, true
		}
	}
	return Appearance{}, false
}

func ShopItems() []Item {
	items := []Item{
		{ID: ItemGoldenGloves, Name: "Golden Gloves (2x next session)", Kind: KindConsumable, Price: CostGoldenGloves},
		{ID: ItemPetMop, Name: "Pet Mop", Kind: KindUnlock, Price: CostPetMop},
		{ID: ItemMusicPack, Name: "Music Pack", Kind: KindUnlock, Price: CostMusicPack},
		{ID: ItemToken, Name: "Token (+1)", Kind: KindExchange, Price: CostTokenFromCoins},
	}
	for _, t := range Themes {
		if t.Price == 0 {
			continue
		}
		items = append(items, Item{ID: ThemeItemID(t.ID), Name: "Theme: " + t.Name, Kind: KindTheme, Price: t.Price})
	}
	for _, b := range Backgrounds {
		if b.Price == 0 {
			continue
		}
		items = append(items, Item{ID: BackgroundItemID(b.ID), Name: "Background: " + b.Name, Kind: KindBackground, Price: b.Price})
	}
	return items
}

func FindItem(itemID string) (Item, bool) {
	itemID = strings.TrimSpace(itemID)
	for _, it := range ShopItems() {
		if it.ID == itemID {
			return it, true
		}
	}
	return Item{}, false
}

package domain

import "slices"

const (
	DefaultTheme      = "default"
	DefaultBackground = "default"
	DefaultTrack      = "track-1"
	DefaultVolume     = 0.6
)

// Purchase is one entry in the append-only purchase log.
type Purchase struct {
	ItemID    string `json:"itemId"`
	At        int64  `json:"at"`
	CostCoins int    `json:"costCoins,omitempty"`
	Note      string `json:"note,omitempty"`
}

type Consumables struct {
	GoldenGloves int `json:"goldenGloves"`
}

type Unlocks struct {
	MusicPack   bool     `json:"musicPack"`
	PetMop      bool     `json:"petMop"`
	Themes      []string `json:"themes"`
	Backgrounds []string `json:"backgrounds"`
}

type Music struct {
	Volume    float64 `json:"volume"`
	TrackID   string  `json:"trackId"`
	IsPlaying bool    `json:"isPlaying"`
}

type Settings struct {
	PetMopEnabled bool  `json:"petMopEnabled"`
	Music         Music `json:"music"`
}

// State is the persisted economy, unlock and settings record.
type State struct {
	TotalXP            int         `json:"totalXP"`
	TotalCoins         int         `json:"totalCoins"`
	Tokens             int         `json:"tokens"`
	Rebirths           int         `json:"rebirths"`
	LastDailyBonusDate string      `json:"lastDailyBonusDate,omitempty"`
	Purchases          []Purchase  `json:"purchases"`
	Consumables        Consumables `json:"consumables"`
	Unlocks            Unlocks     `json:"unlocks"`
	ActiveTheme        string      `json:"activeTheme"`
	ActiveBackground   string      `json:"activeBackground"`
	Settings           Settings    `json:"settings"`
}

func DefaultState() State {
	return State{
		Purchases: []Purchase{},
		Unlocks: Unlocks{
			Themes:      []string{DefaultTheme},
			Backgrounds: []string{DefaultBackground},
		},
		ActiveTheme:      DefaultTheme,
		ActiveBackground: DefaultBackground,
		Settings: Settings{
			Music: Music{Volume: DefaultVolume, TrackID: DefaultTrack},
		},
	}
}

func (s State) Clone() State {
	out := s
	out.Purchases = slices.Clone(s.Purchases)
	if out.Purchases == nil {
		out.Purchases = []Purchase{}
	}
	out.Unlocks.Themes = slices.Clone(s.Unlocks.Themes)
	out.Unlocks.Backgrounds = slices.Clone(s.Unlocks.Backgrounds)
	return out
}

func (s State) HasTheme(id string) bool {
	return slices.Contains(s.Unlocks.Themes, id)
}

func (s State) HasBackground(id string) bool {
	return slices.Contains(s.Unlocks.Backgrounds, id)
}

func (s State) appendPurchase(p Purchase) State {
	s.Purchases = append(slices.Clip(s.Purchases), p)
	return s
}

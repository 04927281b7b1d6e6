package dto

import "time"

type CommitInput struct {
	ID              string
	Source          string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds int
	Chores          []string
}

type PreviewInput struct {
	DurationSeconds int
	Chores          []string
	EndedAt         time.Time
}

type RewardsOutput struct {
	MinutesForXP      int
	ChoreXP           int
	TimeXP            int
	BonusXP           int
	BaseXP            int
	Multiplier        float64
	RebirthMultiplier float64
	UsedGoldenGloves  bool
	XP                int
	Coins             int
	SessionDay        string
}

type SessionOutput struct {
	ID                string
	Source            string
	StartedAt         time.Time
	EndedAt           time.Time
	DateKey           string
	DurationSeconds   int
	Chores            []string
	XP                int
	Coins             int
	BonusXP           int
	Multiplier        float64
	RebirthMultiplier float64
	UsedGoldenGloves  bool
}

type PurchaseOutput struct {
	ItemID    string
	At        time.Time
	CostCoins int
	Note      string
}

type StatusOutput struct {
	TotalXP            int
	TotalCoins         int
	Tokens             int
	Rebirths           int
	Level              int
	XPIntoLevel        int
	XPPerLevel         int
	MaxLevel           bool
	CanRebirth         bool
	RebirthMultiplier  float64
	GoldenGloves       int
	LastDailyBonusDate string
	BonusAvailable     bool
	MusicPack          bool
	PetMop             bool
	PetMopEnabled      bool
	Themes             []string
	Backgrounds        []string
	ActiveTheme        string
	ActiveBackground   string
	Volume             float64
	TrackID            string
	IsPlaying          bool
	Purchases          []PurchaseOutput
}

type ShopItemOutput struct {
	ID         string
	Name       string
	Kind       string
	Price      int
	Owned      bool
	Affordable bool
}

type BuyOutput struct {
	Purchase PurchaseOutput
	Status   StatusOutput
}

type DeductOutput struct {
	Deducted int
	Status   StatusOutput
}

type ChoresOutput struct {
	Chores  []string
	Changed bool
}

type DoctorOutput struct {
	Sessions int
	Chores   int
	Problems []string
}

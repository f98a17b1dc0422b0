package badge

// 徽章等级按订阅总数(真实+虚拟)划分
const (
	SilverThreshold    int64 = 10000
	GoldThreshold      int64 = 100000
	LegendaryThreshold int64 = 1000000000
)

type Tier struct {
	Level string `json:"level"`
	Label string `json:"label"`
	Title string `json:"title"`
}

var (
	TierNone      = Tier{}
	TierSilver    = Tier{Level: "silver", Label: "Silver", Title: "10K+ subscribers"}
	TierGold      = Tier{Level: "gold", Label: "Gold", Title: "100K+ subscribers"}
	TierLegendary = Tier{Level: "legendary", Label: "Legendary", Title: "1B+ subscribers"}
)

func (t Tier) HasBadge() bool {
	return t.Level != ""
}

// Classify 根据订阅总数返回徽章等级
func Classify(total int64) Tier {
	switch {
	case total >= LegendaryThreshold:
		return TierLegendary
	case total >= GoldThreshold:
		return TierGold
	case total >= SilverThreshold:
		return TierSilver
	default:
		return TierNone
	}
}

// Total 频道展示用的订阅总数
func Total(real, fake int64) int64 {
	return real + fake
}

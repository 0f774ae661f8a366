package stats

// BadgeTier pairs a milestone name with the minimum points that earn it.
type BadgeTier struct {
	Name      string
	Threshold int
}

// BadgeTable is an ordered set of tiers, highest threshold first.
type BadgeTable []BadgeTier

// Tier returns the highest tier the points reach, or false when none do.
func (t BadgeTable) Tier(points int) (string, bool) {
	for _, tier := range t {
		if points >= tier.Threshold {
			return tier.Name, true
		}
	}
	return "", false
}

// TotalBadges rewards all-time point totals.
var TotalBadges = BadgeTable{
	{Name: "Gold", Threshold: 500},
	{Name: "Silver", Threshold: 200},
	{Name: "Bronze", Threshold: 100},
}

// DailyBadges rewards a single day's point total.
var DailyBadges = BadgeTable{
	{Name: "Amazing Day", Threshold: 30},
	{Name: "Great Day", Threshold: 20},
	{Name: "Good Day", Threshold: 10},
}

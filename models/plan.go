package models

// Plan names a subscription tier.
type Plan string

const (
	PlanFree     Plan = "free"
	PlanPro      Plan = "pro"
	PlanBusiness Plan = "business"
)

// Unlimited marks a limit that is never enforced.
const Unlimited = -1

// PlanLimits holds the resource quotas granted by a plan.
type PlanLimits struct {
	Sites           int   `json:"sites"`
	GoalsPerSite    int   `json:"goals_per_site"`
	WebhooksPerSite int   `json:"webhooks_per_site"`
	AlertsPerSite   int   `json:"alerts_per_site"`
	TeamMembers     int   `json:"team_members"`
	EventsPerMonth  int64 `json:"events_per_month"`
}

var planLimits = map[Plan]PlanLimits{
	PlanFree: {
		Sites:           3,
		GoalsPerSite:    5,
		WebhooksPerSite: 2,
		AlertsPerSite:   2,
		TeamMembers:     0,
		EventsPerMonth:  10_000,
	},
	PlanPro: {
		Sites:           20,
		GoalsPerSite:    50,
		WebhooksPerSite: 10,
		AlertsPerSite:   10,
		TeamMembers:     5,
		EventsPerMonth:  1_000_000,
	},
	PlanBusiness: {
		Sites:           Unlimited,
		GoalsPerSite:    Unlimited,
		WebhooksPerSite: 50,
		AlertsPerSite:   50,
		TeamMembers:     50,
		EventsPerMonth:  10_000_000,
	},
}

// Limits returns the quotas of p. Unknown plans get the free tier.
func (p Plan) Limits() PlanLimits {
	if l, ok := planLimits[p]; ok {
		return l
	}
	return planLimits[PlanFree]
}

// Valid reports whether p is a known plan.
func (p Plan) Valid() bool {
	_, ok := planLimits[p]
	return ok
}

// Allows reports whether a count of used resources is still below limit.
func Allows(limit, used int) bool {
	return limit == Unlimited || used < limit
}

package recommend

// fallbackEntry pairs a hand-authored intervention with the minimum budget
// at which it is worth recommending.
type fallbackEntry struct {
	Intervention
	MinCost int
}

var fallbackTable = []fallbackEntry{
	{
		Intervention: Intervention{
			Title:               "Community Tree Plantation Drive",
			Description:         "Plant native, pollution-tolerant species (neem, peepal, ashoka) along roadsides and in open plots to absorb particulates and NO2.",
			Priority:            PriorityHigh,
			EstimatedCost:       "10,000 - 50,000 INR",
			ExpectedImprovement: "5-10 points over 2-3 years",
			ImplementationTime:  "2-4 weeks",
			FeasibilityScore:    0.9,
			BudgetScaling:       "More budget funds more saplings, tree guards and two years of maintenance",
			TargetPollutant:     "PM10",
			Type:                "green_infrastructure",
		},
		MinCost: 10000,
	},
	{
		Intervention: Intervention{
			Title:               "Indoor Air Purification Units",
			Description:         "Deploy HEPA air purifiers in schools, clinics and community halls to cut indoor PM2.5 exposure for vulnerable groups.",
			Priority:            PriorityHigh,
			EstimatedCost:       "15,000 - 120,000 INR",
			ExpectedImprovement: "40-60% indoor PM2.5 reduction",
			ImplementationTime:  "1-2 weeks",
			FeasibilityScore:    0.95,
			BudgetScaling:       "Budget determines number of units and filter replacement stock",
			TargetPollutant:     "PM2.5",
			Type:                "exposure_reduction",
		},
		MinCost: 15000,
	},
	{
		Intervention: Intervention{
			Title:               "Vertical Garden Installation",
			Description:         "Install green walls on building facades and flyover pillars facing high-traffic corridors to trap dust and particulates.",
			Priority:            PriorityMedium,
			EstimatedCost:       "50,000 - 300,000 INR",
			ExpectedImprovement: "3-8 points locally",
			ImplementationTime:  "4-8 weeks",
			FeasibilityScore:    0.75,
			BudgetScaling:       "Coverage area scales linearly with budget, drip irrigation adds durability",
			TargetPollutant:     "PM10",
			Type:                "green_infrastructure",
		},
		MinCost: 50000,
	},
	{
		Intervention: Intervention{
			Title:               "Road Dust Suppression Programme",
			Description:         "Schedule mechanized sweeping and water sprinkling on unpaved shoulders and construction-adjacent roads to keep dust grounded.",
			Priority:            PriorityMedium,
			EstimatedCost:       "75,000 - 500,000 INR per season",
			ExpectedImprovement: "8-15 points during dry months",
			ImplementationTime:  "2-3 weeks to contract",
			FeasibilityScore:    0.8,
			BudgetScaling:       "Budget sets sweeping frequency and the stretch of road covered",
			TargetPollutant:     "PM10",
			Type:                "source_control",
		},
		MinCost: 75000,
	},
	{
		Intervention: Intervention{
			Title:               "Low-Emission Zone Signage and Rerouting",
			Description:         "Mark a low-emission zone around schools and hospitals, rerouting heavy diesel traffic to peripheral roads during daytime hours.",
			Priority:            PriorityMedium,
			EstimatedCost:       "200,000 - 800,000 INR",
			ExpectedImprovement: "10-20 points inside the zone",
			ImplementationTime:  "8-12 weeks including approvals",
			FeasibilityScore:    0.6,
			BudgetScaling:       "Larger budgets extend the zone and add camera-based compliance checks",
			TargetPollutant:     "NO2",
			Type:                "traffic_management",
		},
		MinCost: 200000,
	},
	{
		Intervention: Intervention{
			Title:               "Anti-Smog Gun Deployment",
			Description:         "Operate truck-mounted mist cannons at pollution hotspots and large construction sites to settle suspended particulates.",
			Priority:            PriorityLow,
			EstimatedCost:       "500,000 - 2,000,000 INR",
			ExpectedImprovement: "15-25 points at the hotspot",
			ImplementationTime:  "4-6 weeks procurement",
			FeasibilityScore:    0.5,
			BudgetScaling:       "Each additional unit covers roughly one more square kilometre",
			TargetPollutant:     "PM2.5",
			Type:                "source_control",
		},
		MinCost: 500000,
	},
}

// FallbackInterventions returns the static interventions affordable within
// the budget. If fewer than five survive the filter the full table is
// returned so the caller always has a usable plan to present.
func FallbackInterventions(budget int) []Intervention {
	affordable := make([]Intervention, 0, len(fallbackTable))
	for _, entry := range fallbackTable {
		if entry.MinCost <= budget {
			affordable = append(affordable, entry.Intervention)
		}
	}
	if len(affordable) < 5 {
		all := make([]Intervention, 0, len(fallbackTable))
		for _, entry := range fallbackTable {
			all = append(all, entry.Intervention)
		}
		return all
	}
	return affordable
}

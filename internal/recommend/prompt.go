package recommend

import (
	"fmt"
	"strings"
)

// urgencyTier translates the AQI into a qualitative tier used to bias the
// phrasing of the generated recommendations. The thresholds follow the
// standard 0-500 AQI bands.
func urgencyTier(aqi int) string {
	switch {
	case aqi <= 50:
		return "Good - focus on preventive, low-cost measures"
	case aqi <= 100:
		return "Moderate - recommend practical improvements for sensitive groups"
	case aqi <= 200:
		return "Unhealthy - prioritize exposure reduction and source control"
	case aqi <= 300:
		return "Very Unhealthy - urgent, high-impact measures required"
	default:
		return "Hazardous - emergency-scale response required"
	}
}

// buildPrompt embeds every measured field verbatim and instructs the model
// to reply with a single JSON object matching the Intervention schema.
func buildPrompt(in Input) string {
	var b strings.Builder

	b.WriteString("You are an air quality intervention planner. Based on the measurements below, ")
	b.WriteString("recommend 4 to 6 pollution-mitigation interventions scaled to the available budget.\n\n")

	fmt.Fprintf(&b, "Location: %s\n", in.LocationName)
	fmt.Fprintf(&b, "Current AQI: %d (%s)\n", in.AQI, urgencyTier(in.AQI))
	fmt.Fprintf(&b, "Dominant pollutant: %s\n", in.DominantPollutant)
	fmt.Fprintf(&b, "Temperature: %.1f C (feels like %.1f C)\n", in.Weather.Temperature, in.Weather.FeelsLike)
	fmt.Fprintf(&b, "Humidity: %d%%\n", in.Weather.Humidity)
	fmt.Fprintf(&b, "Wind speed: %.1f km/h\n", in.Weather.WindSpeed)
	fmt.Fprintf(&b, "Pressure: %d hPa\n", in.Weather.Pressure)
	fmt.Fprintf(&b, "Conditions: %s\n", in.Weather.Description)
	fmt.Fprintf(&b, "Area type: %s\n", in.Context.AreaType)
	fmt.Fprintf(&b, "Traffic density: %s\n", in.Context.TrafficDensity)
	fmt.Fprintf(&b, "Industrial activity: %s\n", in.Context.IndustrialActivity)
	fmt.Fprintf(&b, "Available budget: %d INR\n\n", in.Budget)

	b.WriteString(`Respond with ONLY a single JSON object, no markdown and no commentary, in this exact shape:
{
  "interventions": [
    {
      "title": "string",
      "description": "string",
      "priority": "High|Medium|Low",
      "estimated_cost": "string, cost range in INR",
      "expected_aqi_improvement": "string, e.g. 10-15 points",
      "implementation_time": "string, e.g. 2-4 weeks",
      "feasibility_score": 0.0,
      "budget_scaling": "string, how the measure scales with more or less budget",
      "target_pollutant": "string",
      "intervention_type": "string"
    }
  ]
}
Every intervention must fit within the available budget. Order interventions by priority.`)

	return b.String()
}

package models

// CurrentConditions is the snapshot returned by the weather provider.
type CurrentConditions struct {
	TemperatureC  float64 `json:"temperatureC"`
	ConditionCode int     `json:"conditionCode"` // WMO weather code
}

// weatherLabels maps WMO weather codes to human-readable condition labels.
var weatherLabels = map[int]string{
	0:  "Clear",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Drizzle",
	55: "Heavy drizzle",
	61: "Light rain",
	63: "Rain",
	65: "Heavy rain",
	71: "Light snow",
	73: "Snow",
	75: "Heavy snow",
	80: "Rain showers",
	81: "Rain showers",
	82: "Violent rain showers",
	95: "Thunderstorm",
}

// WeatherLabel returns the condition label for a WMO weather code, with a
// generic fallback for unknown codes.
func WeatherLabel(code int) string {
	if label, ok := weatherLabels[code]; ok {
		return label
	}
	return "Weather"
}

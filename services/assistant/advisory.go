package assistant

import (
	"fmt"
	"math"
	"strings"

	"commuterhub/models"
)

// WeatherFallbackReply is returned whenever the weather provider fails; a
// transport failure never aborts a conversation turn.
const WeatherFallbackReply = "I could not load live weather right now, but you can still check the forecast card on the home page."

var (
	rainyCodes = map[int]bool{51: true, 53: true, 55: true, 61: true, 63: true, 65: true, 80: true, 81: true, 82: true, 95: true, 96: true, 99: true}
	snowyCodes = map[int]bool{71: true, 73: true, 75: true, 77: true}
	clearCodes = map[int]bool{0: true, 1: true, 2: true}
)

// Advise maps current conditions to a commute recommendation sentence. The
// branches are evaluated in a fixed priority order: snow or cold rain beats
// plain rain, which beats everything temperature-only.
func Advise(city string, cond models.CurrentConditions) string {
	temp := cond.TemperatureC
	isRain := rainyCodes[cond.ConditionCode]
	isSnow := snowyCodes[cond.ConditionCode]
	isNice := clearCodes[cond.ConditionCode]

	label := strings.ToLower(models.WeatherLabel(cond.ConditionCode))
	base := fmt.Sprintf("Right now in %s it is about %d°C and %s. ", city, int(math.Round(temp)), label)

	switch {
	case isSnow || (isRain && temp <= 5):
		base += "Conditions are pretty bad for biking or scooters. Plan extra time, consider booking a locker, and try not to bring a bike or scooter today."
	case isRain:
		base += "It is rainy, so driving or transit is safer. A locker is useful so you do not carry wet gear around."
	case isNice && temp >= 8 && temp <= 23:
		base += "Weather is nice for walking or biking. If car traffic feels heavy, riding a bike or walking part of the way could be a good option."
	case temp <= 0:
		base += "It is very cold. Dress warmly and think about booking a locker so you can store extra layers on campus."
	case temp >= 28:
		base += "It is quite hot. Bring water and travel light. Lockers can help you avoid carrying heavy stuff in the heat."
	default:
		base += "Weather looks okay. You can choose car, transit, or bike based on your preference."
	}

	return base
}

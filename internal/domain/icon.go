package domain

// Icon is the path of a static image served under /web/.
type Icon string

const (
	IconClear    Icon = "/web/clear.svg"
	IconClouds   Icon = "/web/cloud.svg"
	IconRain     Icon = "/web/rain.svg"
	IconDrizzle  Icon = "/web/drizzle.svg"
	IconSnow     Icon = "/web/snow.svg"
	IconSearch   Icon = "/web/search.svg"
	IconHumidity Icon = "/web/humidity.svg"
	IconWind     Icon = "/web/wind.svg"
)

var conditionIcons = map[string]Icon{
	"Clear":   IconClear,
	"Clouds":  IconClouds,
	"Rain":    IconRain,
	"Drizzle": IconDrizzle,
	"Snow":    IconSnow,
}

// ResolveIcon maps a condition label to its icon. Unknown labels, including
// the empty string, resolve to IconClear.
func ResolveIcon(condition string) Icon {
	if icon, ok := conditionIcons[condition]; ok {
		return icon
	}
	return IconClear
}

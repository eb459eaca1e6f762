package widget

import (
	"strconv"

	"github.com/SVignesh2004/Weather-App/internal/domain"
)

// Loading is shown until the first fetch completes.
const Loading = "Loading..."

// View is the display-ready form of a State.
type View struct {
	Mode    domain.Mode
	Message string

	Icon        domain.Icon
	IconAlt     string
	Temperature string
	Location    string
	Humidity    string
	WindSpeed   string
}

// Render derives the view for s. An error message wins over a result, and a
// state with neither renders as loading.
func Render(s domain.State) View {
	switch s.Mode() {
	case domain.ModeError:
		return View{Mode: domain.ModeError, Message: s.Err}
	case domain.ModeResult:
		r := s.Result
		return View{
			Mode:        domain.ModeResult,
			Icon:        domain.ResolveIcon(r.Condition),
			IconAlt:     r.Description,
			Temperature: formatNumber(r.TempC) + "°C",
			Location:    r.Location,
			Humidity:    strconv.Itoa(r.Humidity) + "%",
			WindSpeed:   formatNumber(r.WindSpeed) + " Km/h",
		}
	default:
		return View{Mode: domain.ModeLoading, Message: Loading}
	}
}

// formatNumber prints v the way the provider sent it: 12.5 stays 12.5, 7 stays 7.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package webpath

const (
	Home    = "/"
	Team    = "/teams/:name"
	Health  = "/health"
	Metrics = "/metrics"

	Api          = "/api"
	ApiRatings   = Api + "/ratings"
	ApiGetPlayer = Api + "/players/:name"
)

func Path() map[string]string {
	return map[string]string{
		"Home":         Home,
		"Team":         Team,
		"Health":       Health,
		"Metrics":      Metrics,
		"Api":          Api,
		"ApiRatings":   ApiRatings,
		"ApiGetPlayer": ApiGetPlayer,
	}
}

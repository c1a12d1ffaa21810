package redis

import "fmt"

const ns = "flyport:v1"

// KeyCollection names the cached unfiltered list of a catalog collection,
// e.g. "countries" or "airplane_types".
func KeyCollection(name string) string {
	return fmt.Sprintf("%s:catalog:%s", ns, name)
}

func KeyFlightList() string {
	return ns + ":flights:all"
}

func KeyFlightDetail(flightID int64) string {
	return fmt.Sprintf("%s:flight:%d:detail", ns, flightID)
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelFlightsChanged() string {
	return ns + ":flights:changed"
}

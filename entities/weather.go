package entities

// Weather is the current reading shown on the dashboard and weather view.
type Weather struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"` // °C
	Condition   string  `json:"condition"`   // sunny|cloudy|rainy|stormy|snowy
	Humidity    int     `json:"humidity"`    // %
	WindSpeed   float64 `json:"wind_speed"`  // km/h
}

type ForecastDay struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Condition     string  `json:"condition"`
	Precipitation int     `json:"precipitation"` // chance, %
}

type WeatherAlert struct {
	ID         int    `json:"id"`
	Type       string `json:"type"` // warning|info
	Title      string `json:"title"`
	Message    string `json:"message"`
	Severity   string `json:"severity"`
	ValidUntil string `json:"valid_until"` // RFC3339
}

// WeatherData is the shape of the weather seed file.
type WeatherData struct {
	Current  Weather        `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
	Alerts   []WeatherAlert `json:"alerts"`
}

// Recommendation is the farming advice derived from a reading.
type Recommendation struct {
	Type    string `json:"type"` // success|info|warning|error
	Message string `json:"message"`
}

package foldz

import "context"

// WeatherRecord is one day's observations.
type WeatherRecord struct {
	Date        string
	Temperature float64
	Humidity    float64
}

// WeatherReport summarizes a run of observations: average, maximum, and
// minimum temperature plus average humidity. Averages are rounded to one
// decimal place; the extremes are reported as observed.
type WeatherReport struct {
	AvgTemp     float64
	MaxTemp     float64
	MinTemp     float64
	AvgHumidity float64
}

// AnalyzeWeather computes a WeatherReport in a single pass, feeding Sum
// accumulators for the averages and a MinMax for the temperature extremes.
// An empty run yields a zero report - the average-of-empty-defaults-to-zero
// policy, not an error.
func AnalyzeWeather(ctx context.Context, records []WeatherRecord) WeatherReport {
	if len(records) == 0 {
		return WeatherReport{}
	}

	temps := NewSum[float64]("weather.temps")
	humidity := NewSum[float64]("weather.humidity")
	extremes := NewMinMax[float64]("weather.extremes")
	defer extremes.Close() //nolint:errcheck

	for _, record := range records {
		temps.Add(ctx, record.Temperature)
		humidity.Add(ctx, record.Humidity)
		extremes.Add(ctx, record.Temperature)
	}

	extent := extremes.Result()
	count := float64(len(records))
	return WeatherReport{
		AvgTemp:     round(temps.Result()/count, 1),
		MaxTemp:     extent.Max,
		MinTemp:     extent.Min,
		AvgHumidity: round(humidity.Result()/count, 1),
	}
}

package redundancyestimator

// Gigabytes of data, either logical or stored.
type Gigabytes float64

// Megabytes uses binary multiples, like every formula of the model.
func (g Gigabytes) Megabytes() float64 {
	return float64(g) * 1024
}

func (g Gigabytes) Terabytes() float64 {
	return float64(g) / 1024
}

// Milliseconds of latency
type Milliseconds float64

func (ms Milliseconds) Seconds() Seconds {
	return Seconds(ms / 1000)
}

// Seconds of elapsed time
type Seconds float64

// Percent of one CPU, in [0,100]
type Percent float64

// Dollars spent over a period, usually one month.
type Dollars float64

// Annual converts a monthly amount into a yearly one.
func (d Dollars) Annual() Dollars {
	return d * MonthsPerYear
}

const MonthsPerYear = 12

package domain

// Coordinate is an immutable geographic point.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// NewCoordinate validates latitude/longitude ranges and returns a Coordinate.
func NewCoordinate(lat, lon float64) (Coordinate, bool) {
	c := Coordinate{Latitude: lat, Longitude: lon}
	return c, c.Valid()
}

// Valid reports whether the coordinate is within WGS84 bounds.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

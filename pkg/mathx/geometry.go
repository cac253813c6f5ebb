package mathx

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// PointF is a point with floating-point coordinates.
type PointF struct {
	X, Y float64
}

func (p PointF) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Unit selects the result unit of GPSDistance.
type Unit uint8

const (
	Kilometers Unit = iota
	NauticalMiles
	Miles
)

func (u Unit) String() string {
	switch u {
	case Kilometers:
		return "km"
	case NauticalMiles:
		return "nmi"
	case Miles:
		return "mi"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// ParseUnit resolves a unit name or its single-letter code. K is kilometers,
// while N and M both select nautical miles; statute miles are spelled "mi".
func ParseUnit(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "km", "k", "kilometers":
		return Kilometers, nil
	case "nmi", "n", "m", "nautical":
		return NauticalMiles, nil
	case "mi", "miles":
		return Miles, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// Conversion factors from statute miles.
const (
	kmPerMile       = 1.609344
	nauticalPerMile = 0.8684
	milesPerMinute  = 1.1515 // statute miles per arc minute
)

// QuadraticRoots solves a·x² + b·x + c = 0 over the reals.
// It returns no roots for a negative discriminant, one for zero and two,
// larger first, otherwise. With a == 0 the linear equation is solved.
func QuadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}

	d := b*b - 4*a*c
	switch {
	case d < 0:
		return nil
	case d == 0:
		return []float64{-b / (2 * a)}
	}

	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// GPSDistance returns the great-circle distance between two coordinates
// given in decimal degrees.
func GPSDistance(lat1, lon1, lat2, lon2 float64, unit Unit) float64 {
	theta := lon1 - lon2
	cos := math.Sin(ToRadians(lat1))*math.Sin(ToRadians(lat2)) +
		math.Cos(ToRadians(lat1))*math.Cos(ToRadians(lat2))*math.Cos(ToRadians(theta))

	// Rounding can push identical points slightly past 1.
	miles := ToDegrees(math.Acos(Clamp(cos, -1, 1))) * 60 * milesPerMinute

	switch unit {
	case Kilometers:
		return miles * kmPerMile
	case NauticalMiles:
		return miles * nauticalPerMile
	default:
		return miles
	}
}

// PointDistance returns the Euclidean distance between two points.
func PointDistance(p1, p2 image.Point) float64 {
	return math.Hypot(float64(p2.X-p1.X), float64(p2.Y-p1.Y))
}

// DegreesToPoint returns the point at the given angle and radius from origin.
func DegreesToPoint(degrees, radius float64, origin image.Point) PointF {
	rad := ToRadians(degrees)
	return PointF{
		X: math.Cos(rad)*radius + float64(origin.X),
		Y: math.Sin(-rad)*radius + float64(origin.Y),
	}
}

// AngleToDegrees returns the angle of p as seen from origin.
func AngleToDegrees(p, origin image.Point) float64 {
	dx := float64(origin.X - p.X)
	dy := float64(origin.Y - p.Y)
	return 180 - ToDegrees(math.Atan2(dy, dx))
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad / math.Pi * 180
}

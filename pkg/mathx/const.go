package mathx

import "math"

const (
	Gravity             = 9.80665            // standard gravity, m/s²
	Omega               = 0.5671432904097838 // solution of x·eˣ = 1
	ReciprocalFibonacci = 3.3598856662431775 // sum of 1/F(n)
	EulerMascheroni     = 0.5772156649015329
	Sqrt2               = math.Sqrt2
	PiSquared           = math.Pi * math.Pi
)

package packet

// Speed and distance helpers for the raw LFS units carried by CompCar
// and NodeLapInfo (1 LFS speed unit = 1/100 m/s, 1 LFS distance unit =
// 1/65536 m), kept alongside the telemetry structs that report them.

// SpeedToMS converts a raw LFS speed value to metres per second.
func SpeedToMS(raw uint16) float64 {
	return float64(raw) / 100
}

// SpeedToKMH converts a raw LFS speed value to kilometres per hour.
func SpeedToKMH(raw uint16) float64 {
	return SpeedToMS(raw) * 3.6
}

// SpeedToMPH converts a raw LFS speed value to miles per hour.
func SpeedToMPH(raw uint16) float64 {
	return SpeedToMS(raw) * 2.2369362920544025
}

// DistanceToM converts a raw LFS node distance value to metres.
func DistanceToM(raw uint32) float64 {
	return float64(raw) / 65536
}

// DistanceToKM converts a raw LFS node distance value to kilometres.
func DistanceToKM(raw uint32) float64 {
	return DistanceToM(raw) / 1000
}

// DistanceToMiles converts a raw LFS node distance value to miles.
func DistanceToMiles(raw uint32) float64 {
	return DistanceToM(raw) / 1609.344
}

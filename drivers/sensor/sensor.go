// Package sensor defines device-level measurement contracts for drivers
// built on top of the peripheral layer.
package sensor

// Celsius is a temperature in degrees Celsius.
type Celsius float32

// MicroampereHour is an electric charge in µAh.
type MicroampereHour float32

// A TemperatureSensor reports the current temperature of a sensing device.
type TemperatureSensor interface {
	Temperature() (Celsius, error)
}

// A CoulombCounter reports the cumulative charge that passed through it,
// giving information about a connected battery's power level.
type CoulombCounter interface {
	Charge() (MicroampereHour, error)
}

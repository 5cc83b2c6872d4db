package game

// Config holds the game's economic constants.
type Config struct {
	StartingCash int
	GoSalary     int
	JailFine     int
	JailMaxTurns int
}

// UKDefaults returns the standard UK rule constants.
func UKDefaults() Config {
	return Config{
		StartingCash: 1500,
		GoSalary:     200,
		JailFine:     50,
		JailMaxTurns: 3,
	}
}

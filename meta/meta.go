// meta/meta.go
package meta

// BOARD_SIZE defines the default board dimension.
const BOARD_SIZE = 8

// NUM_GAMES defines the number of games per match up.
const NUM_GAMES = 10

// OUTPUT_DIR defines where experiment CSV files are written.
const OUTPUT_DIR = "experiments/results"

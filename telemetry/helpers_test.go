package telemetry

import "github.com/pthm-cable/backdrop/systems"

var paintGray = systems.Paint{R: 100, G: 100, B: 100, Alpha: 1}

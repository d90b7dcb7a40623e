// Package env keeps names of environment variables with special significance to
// edpp.
package env

// Environment variables with special significance to edpp.
//
// Note that some of these env vars may be significant only in special
// circumstances, such as when running unit tests.
const (
	EDPP_TEST_TIME_SCALE = "EDPP_TEST_TIME_SCALE"
	HOME                 = "HOME"
	XDG_CONFIG_HOME      = "XDG_CONFIG_HOME"
	XDG_STATE_HOME       = "XDG_STATE_HOME"
)

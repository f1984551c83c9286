package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime logs how long a service call took; use with defer.
func TrackTime(funcName string, start time.Time) {
	log.Debugf("%s took %s", funcName, time.Since(start).Round(time.Microsecond))
}

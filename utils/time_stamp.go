package utils

import (
	"fmt"
	"time"
)

// SessionName returns a unique output directory name:
//
//	<prefix>_YYYYMMDD_HHMMSS
func SessionName(prefix string) string {
	return sessionName(prefix, time.Now())
}

func sessionName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%s", prefix, t.Format("20060102_150405"))
}

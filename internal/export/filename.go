package export

import (
	"fmt"
	"time"
)

// DefaultPrefix is the export filename prefix unless configured otherwise.
const DefaultPrefix = "robot_assessments"

// Filename builds the conventional export name:
// {prefix}_{participantName}_{ISODate}.{ext}
func Filename(prefix, participantName string, date time.Time, ext string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s_%s_%s.%s", prefix, participantName, date.Format("2006-01-02"), ext)
}

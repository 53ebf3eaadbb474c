package dateutils

import "time"

func ToString(t time.Time) string {
	return t.Format(time.RFC3339)
}

func ParseString(str string) (time.Time, error) {
	return time.Parse(time.RFC3339, str)
}

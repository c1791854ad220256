package candihelper

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// StringYellow func
func StringYellow(str string) string {
	return fmt.Sprintf("\x1b[33;2m%s\x1b[0m", str)
}

// StringGreen func
func StringGreen(str string) string {
	return fmt.Sprintf("\x1b[32;2m%s\x1b[0m", str)
}

// ToBytes convert all types to bytes
func ToBytes(i interface{}) (b []byte) {
	switch t := i.(type) {
	case []byte:
		b = t
	case string:
		b = []byte(t)
	default:
		b, _ = json.Marshal(i)
	}
	return
}

// StringInSlice function for checking whether string in slice
// str string searched string
// list []string slice
func StringInSlice(str string, list []string) bool {
	for _, v := range list {
		if v == str {
			return true
		}
	}
	return false
}

// FormatTimestamp format time in UTC with millisecond precision
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimeFormatISOMillis)
}

// ParseListEnv split comma separated environment value, empty entries are dropped
func ParseListEnv(key string) (list []string) {
	for _, s := range strings.Split(os.Getenv(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			list = append(list, s)
		}
	}
	return
}

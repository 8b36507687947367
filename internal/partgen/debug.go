package partgen

import (
	"fmt"
)

// Debug enables verbose output; set from the environment in cmd/partgen.
var Debug = false

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}

package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Convert bool
	Ops     bool
	Query   bool
	Adapt   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Convert = boolEnv("TREEMA_DEBUG_CONVERT")
	d.Ops = boolEnv("TREEMA_DEBUG_OPS")
	d.Query = boolEnv("TREEMA_DEBUG_QUERY")
	d.Adapt = boolEnv("TREEMA_DEBUG_ADAPT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Convert() bool {
	return d.Convert
}
func Ops() bool {
	return d.Ops
}
func Query() bool {
	return d.Query
}
func Adapt() bool {
	return d.Adapt
}

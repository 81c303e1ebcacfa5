package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Build    bool
	Edit     bool
	Settings bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("FOAMEDIT_DEBUG_TOKENIZE")
	d.Build = boolEnv("FOAMEDIT_DEBUG_BUILD")
	d.Edit = boolEnv("FOAMEDIT_DEBUG_EDIT")
	d.Settings = boolEnv("FOAMEDIT_DEBUG_SETTINGS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Build() bool {
	return d.Build
}
func Edit() bool {
	return d.Edit
}
func Settings() bool {
	return d.Settings
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

package cliutil

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
)

// Both tools print their results as json when asked, so... here it is
func PrintJson(obj interface{}) {
	rawjson, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		log.Fatalln("Couldn't serialize json: ", err)
	}
	fmt.Println(string(rawjson))
}

// Quick way to fail on error, since most commands are "doing" something on
// behalf of something else.
func FatalIfErr(subject string, doing string, err error) {
	if err != nil {
		log.Fatalf("%s - Couldn't %s: %s", subject, doing, err)
	}
}

// Parse a number from the command line. Accepts 0x / 0o / 0b prefixes, since sizes
// and addresses are almost always written in hex.
func ParseNumber(raw string, bits int) (uint64, error) {
	return strconv.ParseUint(raw, 0, bits)
}

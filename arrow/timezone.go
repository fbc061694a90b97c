// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arrow

import (
	"fmt"
	"strconv"
	"time"
)

// ValidateTimeZone reports whether tz can label a timestamp column: the
// empty string, a fixed offset of the form ±HH:MM, or a name known to
// the time zone database. It is a variable so callers can substitute
// their own lookup table.
var ValidateTimeZone = func(tz string) error {
	if tz == "" {
		return nil
	}
	if isFixedOffset(tz) {
		return nil
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return fmt.Errorf("unknown time zone %q", tz)
	}
	return nil
}

func isFixedOffset(tz string) bool {
	if len(tz) != 6 || (tz[0] != '+' && tz[0] != '-') || tz[3] != ':' {
		return false
	}
	hh, err := strconv.Atoi(tz[1:3])
	if err != nil || hh > 23 {
		return false
	}
	mm, err := strconv.Atoi(tz[4:6])
	return err == nil && mm <= 59
}

// LoadTimeZone resolves a validated time zone string to a location. An
// empty zone maps to UTC.
func LoadTimeZone(tz string) (*time.Location, error) {
	switch {
	case tz == "":
		return time.UTC, nil
	case isFixedOffset(tz):
		hh, _ := strconv.Atoi(tz[1:3])
		mm, _ := strconv.Atoi(tz[4:6])
		secs := hh*3600 + mm*60
		if tz[0] == '-' {
			secs = -secs
		}
		return time.FixedZone(tz, secs), nil
	}
	return time.LoadLocation(tz)
}

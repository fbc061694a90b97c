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

type BooleanType struct{}

func (t *BooleanType) ID() Type            { return BOOL }
func (t *BooleanType) Name() string        { return "bool" }
func (t *BooleanType) String() string      { return "bool" }
func (t *BooleanType) Fingerprint() string { return typeFingerprint(t) }
func (t *BooleanType) Bytes() int          { return 0 }

// BitWidth returns the number of bits required to store a single element of this data type in memory.
func (t *BooleanType) BitWidth() int { return 1 }

func (t *BooleanType) Layout() DataTypeLayout {
	return DataTypeLayout{Buffers: []BufferSpec{SpecBitmap(), SpecBitmap()}}
}

type FixedSizeBinaryType struct {
	ByteWidth int
}

// NewFixedSizeBinaryType returns a fixed_size_binary type of byteWidth bytes
// per value.
func NewFixedSizeBinaryType(byteWidth int) (*FixedSizeBinaryType, error) {
	if byteWidth <= 0 {
		return nil, fmt.Errorf("%w: fixed_size_binary byte width must be positive, got %d", ErrType, byteWidth)
	}
	return &FixedSizeBinaryType{ByteWidth: byteWidth}, nil
}

func (*FixedSizeBinaryType) ID() Type        { return FIXED_SIZE_BINARY }
func (*FixedSizeBinaryType) Name() string    { return "fixed_size_binary" }
func (t *FixedSizeBinaryType) BitWidth() int { return 8 * t.ByteWidth }
func (t *FixedSizeBinaryType) Bytes() int    { return t.ByteWidth }
func (t *FixedSizeBinaryType) Fingerprint() string {
	return typeFingerprint(t) + strconv.Itoa(t.ByteWidth)
}
func (t *FixedSizeBinaryType) String() string {
	return "fixed_size_binary[" + strconv.Itoa(t.ByteWidth) + "]"
}
func (t *FixedSizeBinaryType) Layout() DataTypeLayout { return fixedLayout(t.ByteWidth) }

type (
	Timestamp int64
	Time32    int32
	Time64    int64
	TimeUnit  int
	Date32    int32
	Date64    int64
	Duration  int64
)

// MillisecondsPerDay is the Date64 granularity.
const MillisecondsPerDay = 86400000

// Date32FromTime returns a Date32 value from a time object
func Date32FromTime(t time.Time) Date32 {
	if _, offset := t.Zone(); offset != 0 {
		// properly account for timezone adjustments before we calculate
		// the number of days by adjusting the time and converting to UTC
		t = t.Add(time.Duration(offset) * time.Second).UTC()
	}
	return Date32(t.Truncate(24*time.Hour).Unix() / int64((time.Hour * 24).Seconds()))
}

func (d Date32) ToTime() time.Time {
	return time.Unix(0, 0).UTC().AddDate(0, 0, int(d))
}

func (d Date32) FormattedString() string {
	return d.ToTime().Format("2006-01-02")
}

// Date64FromTime returns a Date64 value from a time object
func Date64FromTime(t time.Time) Date64 {
	if _, offset := t.Zone(); offset != 0 {
		t = t.Add(time.Duration(offset) * time.Second).UTC()
	}
	days := t.Truncate(24*time.Hour).Unix() / int64((time.Hour * 24).Seconds())
	return Date64(days * MillisecondsPerDay)
}

func (d Date64) ToTime() time.Time {
	days := int(int64(d) / MillisecondsPerDay)
	return time.Unix(0, 0).UTC().AddDate(0, 0, days)
}

func (d Date64) FormattedString() string {
	return d.ToTime().Format("2006-01-02")
}

// ToTime returns a time.Time instance in UTC for the timestamp in the given unit.
func (t Timestamp) ToTime(unit TimeUnit) time.Time {
	if unit == Second {
		return time.Unix(int64(t), 0).UTC()
	}
	return time.Unix(0, int64(t)*int64(unit.Multiplier())).UTC()
}

// ToTime returns the time of day as an offset from the epoch.
func (t Time32) ToTime(unit TimeUnit) time.Time {
	return time.Unix(0, int64(t)*int64(unit.Multiplier())).UTC()
}

func (t Time32) FormattedString(unit TimeUnit) string {
	const baseFmt = "15:04:05"
	if unit == Millisecond {
		return t.ToTime(unit).Format(baseFmt + ".000")
	}
	return t.ToTime(unit).Format(baseFmt)
}

func (t Time64) ToTime(unit TimeUnit) time.Time {
	return time.Unix(0, int64(t)*int64(unit.Multiplier())).UTC()
}

func (t Time64) FormattedString(unit TimeUnit) string {
	const baseFmt = "15:04:05.000000"
	if unit == Nanosecond {
		return t.ToTime(unit).Format(baseFmt + "000")
	}
	return t.ToTime(unit).Format(baseFmt)
}

const (
	Nanosecond TimeUnit = iota
	Microsecond
	Millisecond
	Second
)

func (u TimeUnit) Multiplier() time.Duration {
	return [...]time.Duration{time.Nanosecond, time.Microsecond, time.Millisecond, time.Second}[uint(u)&3]
}

func (u TimeUnit) String() string { return [...]string{"ns", "us", "ms", "s"}[uint(u)&3] }

func validUnit(u TimeUnit) bool { return u >= Nanosecond && u <= Second }

// TimestampType is encoded as a 64-bit signed integer since the UNIX epoch (1970-01-01T00:00:00Z).
// The zero-value is a nanosecond and time zone neutral. Time zone neutral can be
// considered UTC without having "UTC" as a time zone.
type TimestampType struct {
	Unit     TimeUnit
	TimeZone string
}

// NewTimestampType returns a timestamp type after checking that the time
// zone is empty, a known IANA name or a fixed ±HH:MM offset.
func NewTimestampType(unit TimeUnit, tz string) (*TimestampType, error) {
	if !validUnit(unit) {
		return nil, fmt.Errorf("%w: invalid timestamp unit %d", ErrType, unit)
	}
	if err := ValidateTimeZone(tz); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrType, err)
	}
	return &TimestampType{Unit: unit, TimeZone: tz}, nil
}

func (*TimestampType) ID() Type     { return TIMESTAMP }
func (*TimestampType) Name() string { return "timestamp" }
func (t *TimestampType) String() string {
	switch len(t.TimeZone) {
	case 0:
		return "timestamp[" + t.Unit.String() + "]"
	default:
		return "timestamp[" + t.Unit.String() + ", tz=" + t.TimeZone + "]"
	}
}

func (t *TimestampType) Fingerprint() string {
	return fmt.Sprintf("%s%d:%s", typeFingerprint(t)+string(timeUnitFingerprint(t.Unit)), len(t.TimeZone), t.TimeZone)
}

// BitWidth returns the number of bits required to store a single element of this data type in memory.
func (*TimestampType) BitWidth() int          { return 64 }
func (*TimestampType) Bytes() int             { return 8 }
func (*TimestampType) Layout() DataTypeLayout { return fixedLayout(8) }

// Time32Type is encoded as a 32-bit signed integer, representing either seconds or milliseconds since midnight.
type Time32Type struct {
	Unit TimeUnit
}

// NewTime32Type accepts Second and Millisecond units only.
func NewTime32Type(unit TimeUnit) (*Time32Type, error) {
	if unit != Second && unit != Millisecond {
		return nil, fmt.Errorf("%w: time32 unit must be s or ms, got %s", ErrType, unit)
	}
	return &Time32Type{Unit: unit}, nil
}

func (*Time32Type) ID() Type               { return TIME32 }
func (*Time32Type) Name() string           { return "time32" }
func (*Time32Type) BitWidth() int          { return 32 }
func (*Time32Type) Bytes() int             { return 4 }
func (*Time32Type) Layout() DataTypeLayout { return fixedLayout(4) }
func (t *Time32Type) String() string       { return "time32[" + t.Unit.String() + "]" }
func (t *Time32Type) Fingerprint() string {
	return typeFingerprint(t) + string(timeUnitFingerprint(t.Unit))
}

// Time64Type is encoded as a 64-bit signed integer, representing either microseconds or nanoseconds since midnight.
type Time64Type struct {
	Unit TimeUnit
}

// NewTime64Type accepts Microsecond and Nanosecond units only.
func NewTime64Type(unit TimeUnit) (*Time64Type, error) {
	if unit != Microsecond && unit != Nanosecond {
		return nil, fmt.Errorf("%w: time64 unit must be us or ns, got %s", ErrType, unit)
	}
	return &Time64Type{Unit: unit}, nil
}

func (*Time64Type) ID() Type               { return TIME64 }
func (*Time64Type) Name() string           { return "time64" }
func (*Time64Type) BitWidth() int          { return 64 }
func (*Time64Type) Bytes() int             { return 8 }
func (*Time64Type) Layout() DataTypeLayout { return fixedLayout(8) }
func (t *Time64Type) String() string       { return "time64[" + t.Unit.String() + "]" }
func (t *Time64Type) Fingerprint() string {
	return typeFingerprint(t) + string(timeUnitFingerprint(t.Unit))
}

// DurationType is encoded as a 64-bit signed integer, representing an amount
// of elapsed time without any relation to a calendar artifact.
type DurationType struct {
	Unit TimeUnit
}

func (*DurationType) ID() Type               { return DURATION }
func (*DurationType) Name() string           { return "duration" }
func (*DurationType) BitWidth() int          { return 64 }
func (*DurationType) Bytes() int             { return 8 }
func (*DurationType) Layout() DataTypeLayout { return fixedLayout(8) }
func (t *DurationType) String() string       { return "duration[" + t.Unit.String() + "]" }
func (t *DurationType) Fingerprint() string {
	return typeFingerprint(t) + string(timeUnitFingerprint(t.Unit))
}

// Decimal128Type represents a fixed-size 128-bit decimal type.
type Decimal128Type struct {
	Precision int32
	Scale     int32
}

// NewDecimal128Type checks 1 <= precision <= 38 and 0 <= scale <= precision.
func NewDecimal128Type(precision, scale int32) (*Decimal128Type, error) {
	if precision < 1 || precision > 38 {
		return nil, fmt.Errorf("%w: decimal128 precision must be in [1, 38], got %d", ErrType, precision)
	}
	if scale < 0 || scale > precision {
		return nil, fmt.Errorf("%w: decimal128 scale must be in [0, %d], got %d", ErrType, precision, scale)
	}
	return &Decimal128Type{Precision: precision, Scale: scale}, nil
}

func (*Decimal128Type) ID() Type               { return DECIMAL128 }
func (*Decimal128Type) Name() string           { return "decimal" }
func (*Decimal128Type) BitWidth() int          { return 128 }
func (*Decimal128Type) Bytes() int             { return 16 }
func (*Decimal128Type) Layout() DataTypeLayout { return fixedLayout(16) }
func (t *Decimal128Type) String() string {
	return fmt.Sprintf("%s(%d, %d)", t.Name(), t.Precision, t.Scale)
}
func (t *Decimal128Type) Fingerprint() string {
	return fmt.Sprintf("%s[%d,%d,%d]", typeFingerprint(t), t.BitWidth(), t.Precision, t.Scale)
}

// Float16Type represents a floating point value encoded with a 16-bit precision.
type Float16Type struct{}

func (*Float16Type) ID() Type               { return FLOAT16 }
func (*Float16Type) Name() string           { return "float16" }
func (*Float16Type) String() string         { return "float16" }
func (t *Float16Type) Fingerprint() string  { return typeFingerprint(t) }
func (*Float16Type) BitWidth() int          { return 16 }
func (*Float16Type) Bytes() int             { return 2 }
func (*Float16Type) Layout() DataTypeLayout { return fixedLayout(2) }

// MonthInterval represents a number of months.
type MonthInterval int32

// MonthIntervalType is encoded as a 32-bit signed integer,
// representing a number of months.
type MonthIntervalType struct{}

func (*MonthIntervalType) ID() Type               { return INTERVAL_MONTHS }
func (*MonthIntervalType) Name() string           { return "month_interval" }
func (*MonthIntervalType) String() string         { return "month_interval" }
func (*MonthIntervalType) Fingerprint() string    { return typeIDFingerprint(INTERVAL_MONTHS) + "M" }
func (*MonthIntervalType) BitWidth() int          { return 32 }
func (*MonthIntervalType) Bytes() int             { return 4 }
func (*MonthIntervalType) Layout() DataTypeLayout { return fixedLayout(4) }

// DayTimeInterval represents a number of days and milliseconds (fraction of day).
type DayTimeInterval struct {
	Days         int32 `json:"days"`
	Milliseconds int32 `json:"milliseconds"`
}

// DayTimeIntervalType is encoded as a pair of 32-bit signed integer,
// representing a number of days and milliseconds (fraction of day).
type DayTimeIntervalType struct{}

func (*DayTimeIntervalType) ID() Type               { return INTERVAL_DAY_TIME }
func (*DayTimeIntervalType) Name() string           { return "day_time_interval" }
func (*DayTimeIntervalType) String() string         { return "day_time_interval" }
func (*DayTimeIntervalType) Fingerprint() string    { return typeIDFingerprint(INTERVAL_DAY_TIME) + "d" }
func (*DayTimeIntervalType) BitWidth() int          { return 64 }
func (*DayTimeIntervalType) Bytes() int             { return 8 }
func (*DayTimeIntervalType) Layout() DataTypeLayout { return fixedLayout(8) }

// MonthDayNanoInterval represents a number of months, days and nanoseconds (fraction of day).
type MonthDayNanoInterval struct {
	Months      int32 `json:"months"`
	Days        int32 `json:"days"`
	Nanoseconds int64 `json:"nanoseconds"`
}

// MonthDayNanoIntervalType is encoded as two signed 32-bit integers representing
// a number of months and a number of days, followed by a 64-bit integer representing
// the number of nanoseconds since midnight for fractions of a day.
type MonthDayNanoIntervalType struct{}

func (*MonthDayNanoIntervalType) ID() Type               { return INTERVAL_MONTH_DAY_NANO }
func (*MonthDayNanoIntervalType) Name() string           { return "month_day_nano_interval" }
func (*MonthDayNanoIntervalType) String() string         { return "month_day_nano_interval" }
func (*MonthDayNanoIntervalType) BitWidth() int          { return 128 }
func (*MonthDayNanoIntervalType) Bytes() int             { return 16 }
func (*MonthDayNanoIntervalType) Layout() DataTypeLayout { return fixedLayout(16) }
func (*MonthDayNanoIntervalType) Fingerprint() string {
	return typeIDFingerprint(INTERVAL_MONTH_DAY_NANO) + "N"
}

var (
	FixedWidthTypes = struct {
		Boolean              FixedWidthDataType
		Date32               FixedWidthDataType
		Date64               FixedWidthDataType
		DayTimeInterval      FixedWidthDataType
		Duration_s           FixedWidthDataType
		Duration_ms          FixedWidthDataType
		Duration_us          FixedWidthDataType
		Duration_ns          FixedWidthDataType
		Float16              FixedWidthDataType
		MonthInterval        FixedWidthDataType
		Time32s              FixedWidthDataType
		Time32ms             FixedWidthDataType
		Time64us             FixedWidthDataType
		Time64ns             FixedWidthDataType
		Timestamp_s          FixedWidthDataType
		Timestamp_ms         FixedWidthDataType
		Timestamp_us         FixedWidthDataType
		Timestamp_ns         FixedWidthDataType
		MonthDayNanoInterval FixedWidthDataType
	}{
		Boolean:              &BooleanType{},
		Date32:               &Date32Type{},
		Date64:               &Date64Type{},
		DayTimeInterval:      &DayTimeIntervalType{},
		Duration_s:           &DurationType{Unit: Second},
		Duration_ms:          &DurationType{Unit: Millisecond},
		Duration_us:          &DurationType{Unit: Microsecond},
		Duration_ns:          &DurationType{Unit: Nanosecond},
		Float16:              &Float16Type{},
		MonthInterval:        &MonthIntervalType{},
		Time32s:              &Time32Type{Unit: Second},
		Time32ms:             &Time32Type{Unit: Millisecond},
		Time64us:             &Time64Type{Unit: Microsecond},
		Time64ns:             &Time64Type{Unit: Nanosecond},
		Timestamp_s:          &TimestampType{Unit: Second, TimeZone: "UTC"},
		Timestamp_ms:         &TimestampType{Unit: Millisecond, TimeZone: "UTC"},
		Timestamp_us:         &TimestampType{Unit: Microsecond, TimeZone: "UTC"},
		Timestamp_ns:         &TimestampType{Unit: Nanosecond, TimeZone: "UTC"},
		MonthDayNanoInterval: &MonthDayNanoIntervalType{},
	}

	_ FixedWidthDataType = (*FixedSizeBinaryType)(nil)
	_ FixedWidthDataType = (*Decimal128Type)(nil)
)

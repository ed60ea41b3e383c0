package memory

import "time"

// RTC is the MBC3 real-time clock: five registers latched from the host
// clock. The clock source is injectable so tests can pin time.
type RTC struct {
	seconds uint8
	minutes uint8
	hours   uint8
	// 8 least significant bits of the day counter
	dayLow uint8
	// bit 0: day counter MSB, bit 6: stop timer, bit 7: day counter overflow
	flags uint8

	now func() time.Time
}

// NewRTC creates a clock reading from the given time source (time.Now if nil).
func NewRTC(now func() time.Time) *RTC {
	if now == nil {
		now = time.Now
	}
	rtc := &RTC{now: now}
	rtc.Latch()
	return rtc
}

func (r *RTC) Read(register uint8) uint8 {
	switch register {
	case 0x8:
		return r.seconds
	case 0x9:
		return r.minutes
	case 0xA:
		return r.hours
	case 0xB:
		return r.dayLow
	case 0xC:
		return r.flags
	}
	return 0xFF
}

func (r *RTC) Write(register, value uint8) {
	switch register {
	case 0x8:
		r.seconds = value
	case 0x9:
		r.minutes = value
	case 0xA:
		r.hours = value
	case 0xB:
		r.dayLow = value
	case 0xC:
		r.flags = value
	}
}

// Latch samples the host clock into the registers. A no-op while the stop
// bit is set.
func (r *RTC) Latch() {
	if r.flags&(1<<6) != 0 {
		return
	}

	now := r.now()
	r.seconds = uint8(now.Second())
	r.minutes = uint8(now.Minute())
	r.hours = uint8(now.Hour())
	day := now.YearDay()
	r.dayLow = uint8(day & 0xFF)
	r.flags = uint8((day >> 8) & 0x1)
}

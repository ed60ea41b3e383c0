package serial

import (
	"log/slog"

	"github.com/tiago/go-pocket/pocket/addr"
	"github.com/tiago/go-pocket/pocket/bit"
)

// LogSink is a serial device with no peer: outgoing bytes are logged as
// text. Handy for test ROMs that report through the link port.
type LogSink struct {
	irqHandler     func()
	sb, sc         uint8
	transferActive bool
	countdown      int
	logger         *slog.Logger

	// line buffer for readable output
	line []byte
}

// NewLogSink creates a logging serial device. The passed function is called
// when a transfer completes and should request the serial interrupt.
func NewLogSink(irq func()) *LogSink {
	s := &LogSink{
		irqHandler: irq,
		logger:     slog.Default(),
	}
	s.Reset()
	return s
}

func (s *LogSink) Write(address uint16, value uint8) {
	switch address {
	case addr.SB:
		s.sb = value
	case addr.SC:
		s.sc = value
		s.maybeStartTransfer()
	}
}

func (s *LogSink) Read(address uint16) uint8 {
	switch address {
	case addr.SB:
		return s.sb
	case addr.SC:
		return s.sc
	}
	return 0xFF
}

func (s *LogSink) Tick(cycles int) {
	if !s.transferActive {
		return
	}
	s.countdown -= cycles
	if s.countdown <= 0 {
		s.completeTransfer()
	}
}

func (s *LogSink) Reset() {
	s.sb = 0x00
	s.sc = 0x00
	s.transferActive = false
	s.countdown = 0
	s.line = s.line[:0]
}

func (s *LogSink) maybeStartTransfer() {
	if s.transferActive {
		return
	}
	// a transfer starts when both the start bit and the internal clock bit
	// are set; with no peer an external clock never pulses
	if !bit.IsSet(7, s.sc) || !bit.IsSet(0, s.sc) {
		return
	}

	b := s.sb
	if b == 0 || b == '\n' || b == '\r' {
		if len(s.line) > 0 {
			s.logger.Info("serial", "line", string(s.line))
			s.line = s.line[:0]
		}
	} else {
		s.line = append(s.line, b)
	}

	// ~4096 CPU cycles per byte with the internal clock
	s.transferActive = true
	s.countdown = 4096
}

func (s *LogSink) completeTransfer() {
	// no peer: the incoming byte reads as 0xFF
	s.sb = 0xFF
	s.sc = bit.Reset(7, s.sc)
	s.transferActive = false
	s.countdown = 0
	if s.irqHandler != nil {
		s.irqHandler()
	}
}

package audio

import (
	"sync/atomic"

	"github.com/tiago/go-pocket/pocket/bit"
)

const (
	cpuFrequency = 4194304
	// the frame sequencer steps at 512 Hz
	cyclesPerSequencerStep = cpuFrequency / 512

	// width of the precomputed wave/noise tables published to the host
	WaveTableSize = 1024

	waveRAMSize = 16
)

// duty cycle fraction per NRx1 duty selector
var dutyTable = [4]float64{0.125, 0.25, 0.5, 0.75}

// ChannelParams is the register-visible snapshot of one channel that the
// host mixer consumes. The core never blocks on the host; the host may read
// a previous step's values.
type ChannelParams struct {
	Enabled    bool
	Volume     float64 // 0.0 - 1.0
	Duty       float64 // duty cycle fraction for the square channels
	Frequency  float64 // Hz
	PhaseCarry float64 // phase offset carried between parameter swaps
	Left       bool
	Right      bool
}

// Parameters is the full mix snapshot published once per orchestrator step.
type Parameters struct {
	Enabled  bool
	Channels [4]ChannelParams
	// precomputed waveforms for the wave and noise channels, one period wide
	Wave  [WaveTableSize]float64
	Noise [WaveTableSize]float64
}

type channel struct {
	enabled bool

	length       int
	lengthEnable bool

	// envelope state, stepped at 64 Hz
	volume       uint8
	envelopePace uint8
	envelopeUp   bool
	envelopeTick uint8

	// frequency sweep, channel 1 only, stepped at 128 Hz
	sweepPace  uint8
	sweepDown  bool
	sweepStep  uint8
	sweepTick  uint8
	shadowFreq uint16

	period uint16
	duty   uint8

	left, right bool
}

// APU tracks the register-visible state of the four sound channels: length,
// envelope and sweep counters plus the raw NRxx bytes. Waveform timing
// beyond what the registers expose is out of scope; the host mixes from the
// published Parameters snapshot.
type APU struct {
	enabled bool
	ch      [4]channel

	volLeft, volRight uint8
	panning           uint8

	// frame sequencer
	step   int
	cycles int

	regs    [0x30]uint8
	waveRAM [waveRAMSize]uint8

	// noise channel LFSR configuration from NR43
	noiseShift   uint8
	noiseWidth7  bool
	noiseDivider uint8

	params atomic.Pointer[Parameters]

	// host sample generation state
	phase      [4]float64
	sampleRate int
}

// New creates an APU with all channels silent.
func New() *APU {
	a := &APU{sampleRate: 44100}
	a.params.Store(&Parameters{})
	return a
}

// Tick advances the frame sequencer by CPU cycles: length counters at
// 256 Hz, sweep at 128 Hz, envelopes at 64 Hz.
func (a *APU) Tick(cycles int) {
	if !a.enabled {
		return
	}

	a.cycles += cycles
	for a.cycles >= cyclesPerSequencerStep {
		a.cycles -= cyclesPerSequencerStep
		a.tickSequencer()
	}
}

func (a *APU) tickSequencer() {
	a.step = (a.step + 1) & 0x7

	if a.step%2 == 0 {
		a.tickLength()
	}
	if a.step == 2 || a.step == 6 {
		a.tickSweep()
	}
	if a.step == 7 {
		a.tickEnvelope()
	}
}

func (a *APU) tickLength() {
	for i := range a.ch {
		ch := &a.ch[i]
		if !ch.lengthEnable || ch.length == 0 {
			continue
		}
		ch.length--
		if ch.length == 0 {
			ch.enabled = false
		}
	}
}

func (a *APU) tickEnvelope() {
	for _, i := range []int{0, 1, 3} {
		ch := &a.ch[i]
		if ch.envelopePace == 0 {
			continue
		}
		ch.envelopeTick++
		if ch.envelopeTick < ch.envelopePace {
			continue
		}
		ch.envelopeTick = 0
		if ch.envelopeUp && ch.volume < 15 {
			ch.volume++
		} else if !ch.envelopeUp && ch.volume > 0 {
			ch.volume--
		}
	}
}

func (a *APU) tickSweep() {
	ch := &a.ch[0]
	if ch.sweepPace == 0 {
		return
	}
	ch.sweepTick++
	if ch.sweepTick < ch.sweepPace {
		return
	}
	ch.sweepTick = 0

	change := ch.shadowFreq >> ch.sweepStep
	var next uint16
	if ch.sweepDown {
		next = ch.shadowFreq - change
	} else {
		next = ch.shadowFreq + change
	}
	if next > 2047 {
		ch.enabled = false
		return
	}
	if ch.sweepStep != 0 {
		ch.shadowFreq = next
		ch.period = next
	}
}

// ReadRegister serves CPU reads of the 0xFF10-0xFF3F band.
func (a *APU) ReadRegister(address uint16) uint8 {
	if address >= 0xFF30 {
		return a.waveRAM[address-0xFF30]
	}

	value := a.regs[address-0xFF10]
	if address == 0xFF26 {
		value &= 0x80
		for i := range a.ch {
			if a.ch[i].enabled {
				value |= 1 << i
			}
		}
		return value | 0x70
	}
	return value
}

// WriteRegister serves CPU writes of the 0xFF10-0xFF3F band.
func (a *APU) WriteRegister(address uint16, value uint8) {
	if address >= 0xFF30 {
		a.waveRAM[address-0xFF30] = value
		return
	}

	if !a.enabled && address != 0xFF26 {
		// registers are locked while the APU is off
		return
	}
	a.regs[address-0xFF10] = value

	switch address {
	case 0xFF10: // NR10: channel 1 sweep
		a.ch[0].sweepPace = (value >> 4) & 0x7
		a.ch[0].sweepDown = bit.IsSet(3, value)
		a.ch[0].sweepStep = value & 0x7
	case 0xFF11, 0xFF16: // NRx1: duty and length
		i := a.squareIndex(address)
		a.ch[i].duty = value >> 6
		a.ch[i].length = 64 - int(value&0x3F)
	case 0xFF12, 0xFF17, 0xFF21: // NRx2: envelope
		i := a.envelopeIndex(address)
		a.ch[i].volume = value >> 4
		a.ch[i].envelopeUp = bit.IsSet(3, value)
		a.ch[i].envelopePace = value & 0x7
		if value&0xF8 == 0 {
			a.ch[i].enabled = false
		}
	case 0xFF13, 0xFF18, 0xFF1D: // NRx3: period low
		i := a.periodIndex(address)
		a.ch[i].period = (a.ch[i].period & 0x700) | uint16(value)
	case 0xFF14, 0xFF19, 0xFF1E: // NRx4: period high and trigger
		i := a.periodIndex(address)
		a.ch[i].period = (a.ch[i].period & 0xFF) | (uint16(value&0x7) << 8)
		a.ch[i].lengthEnable = bit.IsSet(6, value)
		if bit.IsSet(7, value) {
			a.trigger(i)
		}
	case 0xFF1A: // NR30: wave DAC
		if !bit.IsSet(7, value) {
			a.ch[2].enabled = false
		}
	case 0xFF1B: // NR31: wave length
		a.ch[2].length = 256 - int(value)
	case 0xFF1C: // NR32: wave output level
		a.ch[2].volume = (value >> 5) & 0x3
	case 0xFF20: // NR41: noise length
		a.ch[3].length = 64 - int(value&0x3F)
	case 0xFF22: // NR43: noise frequency and LFSR width
		a.noiseShift = value >> 4
		a.noiseWidth7 = bit.IsSet(3, value)
		a.noiseDivider = value & 0x7
	case 0xFF23: // NR44: noise trigger
		a.ch[3].lengthEnable = bit.IsSet(6, value)
		if bit.IsSet(7, value) {
			a.trigger(3)
		}
	case 0xFF24: // NR50: master volume
		a.volLeft = (value >> 4) & 0x7
		a.volRight = value & 0x7
	case 0xFF25: // NR51: panning
		a.panning = value
		for i := range a.ch {
			a.ch[i].right = bit.IsSet(uint8(i), value)
			a.ch[i].left = bit.IsSet(uint8(i+4), value)
		}
	case 0xFF26: // NR52: master enable
		a.enabled = bit.IsSet(7, value)
		if !a.enabled {
			for i := range a.ch {
				a.ch[i] = channel{}
			}
			a.regs = [0x30]uint8{}
		}
	}
}

func (a *APU) squareIndex(address uint16) int {
	if address < 0xFF15 {
		return 0
	}
	return 1
}

func (a *APU) envelopeIndex(address uint16) int {
	switch address {
	case 0xFF12:
		return 0
	case 0xFF17:
		return 1
	default:
		return 3
	}
}

func (a *APU) periodIndex(address uint16) int {
	switch {
	case address <= 0xFF14:
		return 0
	case address <= 0xFF19:
		return 1
	default:
		return 2
	}
}

func (a *APU) trigger(i int) {
	ch := &a.ch[i]
	ch.enabled = true
	if ch.length == 0 {
		if i == 2 {
			ch.length = 256
		} else {
			ch.length = 64
		}
	}
	ch.envelopeTick = 0
	if i == 0 {
		ch.shadowFreq = ch.period
		ch.sweepTick = 0
	}
	// re-read the envelope start volume from NRx2
	switch i {
	case 0:
		ch.volume = a.regs[0x02] >> 4
	case 1:
		ch.volume = a.regs[0x07] >> 4
	case 3:
		ch.volume = a.regs[0x11] >> 4
	}
}

func (a *APU) frequency(i int) float64 {
	period := float64(2048 - int(a.ch[i].period))
	switch i {
	case 0, 1:
		return 131072.0 / period
	case 2:
		return 65536.0 / period
	default:
		// noise: 262144 / (divider * 2^shift), divider 0 counts as 0.5
		div := float64(a.noiseDivider)
		if div == 0 {
			div = 0.5
		}
		return 262144.0 / (div * float64(uint(1)<<a.noiseShift))
	}
}

// PublishParameters swaps in a fresh snapshot of the mix parameters. The
// orchestrator calls it once per step.
func (a *APU) PublishParameters() {
	p := &Parameters{Enabled: a.enabled}
	for i := range a.ch {
		ch := &a.ch[i]
		vol := float64(ch.volume) / 15.0
		if i == 2 {
			// wave channel volume is a shift selector: 0, 100%, 50%, 25%
			switch ch.volume {
			case 0:
				vol = 0
			case 1:
				vol = 1
			case 2:
				vol = 0.5
			default:
				vol = 0.25
			}
		}
		p.Channels[i] = ChannelParams{
			Enabled:    ch.enabled,
			Volume:     vol,
			Duty:       dutyTable[ch.duty&0x3],
			Frequency:  a.frequency(i),
			PhaseCarry: a.phase[i],
			Left:       ch.left,
			Right:      ch.right,
		}
	}
	a.fillWaveTable(&p.Wave)
	a.fillNoiseTable(&p.Noise)
	a.params.Store(p)
}

// Parameters returns the latest published snapshot. Safe to call from the
// host audio thread.
func (a *APU) Parameters() *Parameters {
	return a.params.Load()
}

// fillWaveTable expands the 32 4-bit wave RAM samples into one table period.
func (a *APU) fillWaveTable(table *[WaveTableSize]float64) {
	for i := range table {
		sample := a.waveRAM[(i*32/WaveTableSize)/2]
		if (i*32/WaveTableSize)%2 == 0 {
			sample >>= 4
		} else {
			sample &= 0x0F
		}
		table[i] = float64(sample)/7.5 - 1.0
	}
}

// fillNoiseTable runs the LFSR for one table width of output bits.
func (a *APU) fillNoiseTable(table *[WaveTableSize]float64) {
	lfsr := uint16(0x7FFF)
	for i := range table {
		out := lfsr & 1
		feedback := (lfsr ^ (lfsr >> 1)) & 1
		lfsr = (lfsr >> 1) | (feedback << 14)
		if a.noiseWidth7 {
			lfsr = (lfsr &^ (1 << 6)) | (feedback << 6)
		}
		if out == 0 {
			table[i] = 1.0
		} else {
			table[i] = -1.0
		}
	}
}

// ReadSamples fills the buffer with interleaved stereo samples mixed from
// the current parameter snapshot. Called from the host audio callback.
func (a *APU) ReadSamples(buf []int16) {
	p := a.Parameters()
	if p == nil || !p.Enabled {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	masterL := float64(a.volLeft+1) / 8.0
	masterR := float64(a.volRight+1) / 8.0

	for n := 0; n+1 < len(buf); n += 2 {
		var left, right float64
		for i := range p.Channels {
			ch := &p.Channels[i]
			if !ch.Enabled || ch.Volume == 0 {
				continue
			}

			a.phase[i] += ch.Frequency / float64(a.sampleRate)
			a.phase[i] -= float64(int(a.phase[i]))

			var sample float64
			switch i {
			case 0, 1:
				if a.phase[i] < ch.Duty {
					sample = 1.0
				} else {
					sample = -1.0
				}
			case 2:
				sample = p.Wave[int(a.phase[i]*WaveTableSize)%WaveTableSize]
			case 3:
				sample = p.Noise[int(a.phase[i]*WaveTableSize)%WaveTableSize]
			}
			sample *= ch.Volume

			if ch.Left {
				left += sample
			}
			if ch.Right {
				right += sample
			}
		}

		buf[n] = int16(left * masterL / 4 * 32767)
		buf[n+1] = int16(right * masterR / 4 * 32767)
	}
}

// SampleRate returns the host mixing rate.
func (a *APU) SampleRate() int {
	return a.sampleRate
}

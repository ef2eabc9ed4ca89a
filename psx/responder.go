package psx

// Host command and reply bytes.
const (
	CmdSelect  byte = 0x01 // first byte of every controller transaction
	CmdPoll    byte = 0x42 // read button data
	DataStart  byte = 0x5A // reply marking the start of the data bytes
	ByteIdle   byte = 0xFF // reply that leaves the open-collector bus alone
	StickValue byte = 0x7F // centered axis, there is no physical stick
)

// initialStickBytes is how many axis bytes the extended frame carries.
const initialStickBytes = 4

// Frame is the published output of one translation cycle: the active
// low button mask and the pressure byte per analog channel (0x00 fully
// pressed, 0xFF released). Copied by value, so readers never observe a
// torn update.
type Frame struct {
	Mask   uint16
	Analog [NumAnalogChannels]byte
}

// FrameSource hands the responder the most recently published frame.
type FrameSource interface {
	Frame() Frame
}

type state uint8

const (
	stateIdle state = iota
	statePassive
	stateReady
	stateButtonsLow
	stateButtonsHigh
	stateSticks
	stateAnalogButtons
	stateDone
)

// Responder emulates a controller on the shared peripheral bus. Each
// received byte produces exactly one reply byte; the caller exchanges
// them with the host and raises the acknowledge pulse when HandleByte
// reports one. Deselect must be invoked whenever the attention line is
// released, at which point the session state is discarded.
//
// A transaction that does not open with the controller select command
// belongs to some other peripheral (typically a memory card), so the
// responder goes passive and keeps the bus released until deselection.
type Responder struct {
	identity Identity
	source   FrameSource
	ack      func()

	state      state
	frame      Frame
	sticksLeft uint8
	analogSent uint8
}

// NewResponder builds a responder for the given identity reading live
// frames from source. ack is called after every acknowledged reply
// byte; it may be nil when the transport has no acknowledge line.
func NewResponder(identity Identity, source FrameSource, ack func()) *Responder {
	r := &Responder{identity: identity, source: source, ack: ack}
	r.Deselect()
	return r
}

// Identity returns the device type byte this responder reports.
func (r *Responder) Identity() Identity { return r.identity }

// Deselect resets the session: back to idle, stick and pressure
// counters reloaded. The host deasserting attention triggers this at
// any point, including mid transaction.
func (r *Responder) Deselect() {
	r.state = stateIdle
	r.sticksLeft = initialStickBytes
	r.analogSent = 0
}

// HandleByte consumes one byte from the host and returns the reply
// byte. It never fails: anything outside the expected grammar degrades
// to ByteIdle replies until the next Deselect.
func (r *Responder) HandleByte(cmd byte) byte {
	switch r.state {
	case stateIdle:
		if cmd != CmdSelect {
			r.state = statePassive
			return ByteIdle
		}
		r.state = stateReady
		return r.reply(byte(r.identity))

	case stateReady:
		if cmd != CmdPoll {
			// Benign protocol noise, stay put and keep quiet.
			return ByteIdle
		}
		r.state = stateButtonsLow
		return r.reply(DataStart)

	case stateButtonsLow:
		// Received byte is don't-care: hosts send assorted filler
		// here. Latch the whole frame once so the high byte and the
		// pressure bytes stay consistent with the low byte.
		r.frame = r.source.Frame()
		r.state = stateButtonsHigh
		return r.reply(byte(^r.frame.Mask))

	case stateButtonsHigh:
		if r.identity == IdentityDualShock2 {
			r.state = stateSticks
		} else {
			r.state = stateDone
		}
		return r.reply(byte(^r.frame.Mask >> 8))

	case stateSticks:
		r.sticksLeft--
		if r.sticksLeft == 0 {
			r.state = stateAnalogButtons
		}
		return r.reply(StickValue)

	case stateAnalogButtons:
		b := r.frame.Analog[r.analogSent]
		r.analogSent++
		if r.analogSent == uint8(NumAnalogChannels) {
			r.state = stateDone
		}
		return r.reply(b)
	}

	// stateDone and statePassive: keep the bus released, no pulse.
	return ByteIdle
}

func (r *Responder) reply(b byte) byte {
	if r.ack != nil {
		r.ack()
	}
	return b
}

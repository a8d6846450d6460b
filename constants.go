package lutgen

// Firmware build sample rates, in Hz.
const (
	Rate8k  = 8000
	Rate11k = 11025
	Rate16k = 16000
	Rate22k = 22050
	Rate32k = 32000
	Rate44k = 44100
	Rate48k = 48000
	Rate96k = 96000
)

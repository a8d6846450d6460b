package main

// Output formats for the summary printer.
const (
	formatAuto  = "auto"
	formatTable = "table"
	formatTSV   = "tsv"
)

// Summary layout.
const (
	tabMinWidth = 0
	tabWidth    = 8
	tabPadding  = 2
	tabPadChar  = ' '
)

// WAV dump parameters.
const (
	wavMonoChannels = 1
	wavPCMFormat    = 1 // WAVE_FORMAT_PCM
	wavExtension    = ".wav"

	// Offsets that move unsigned tables into the signed PCM range.
	unsigned16Offset = 1 << 15
	unsigned32Offset = 1 << 31

	dirPerm = 0o755
)

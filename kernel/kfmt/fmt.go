package kfmt

import "io"

// maxNumBuf is the scratch buffer size used when formatting numbers.
const maxNumBuf = 32

var (
	errMissingArg   = []byte("%!(MISSING)")
	errWrongArgType = []byte("%!(WRONGTYPE)")
	errNoVerb       = []byte("%!(NOVERB)")
	errExtraArg     = []byte("%!(EXTRA)")
	trueValue       = []byte("true")
	falseValue      = []byte("false")

	// numBuf is a shared scratch buffer for number formatting. The package
	// is only ever used from the single-threaded kernel loop so sharing it
	// is safe.
	numBuf [maxNumBuf]byte

	// singleByte passes individual characters to writers that only accept
	// byte slices.
	singleByte = []byte{0}

	// earlyPrintBuffer captures Printf output generated before an output
	// sink (typically the active terminal) has been installed.
	earlyPrintBuffer ringBuffer

	// outputSink is the io.Writer that receives Printf output. While nil,
	// output is redirected to earlyPrintBuffer.
	outputSink io.Writer
)

// SetOutputSink installs w as the target for Printf output and drains any
// data accumulated in the early print buffer into it. Passing nil reverts
// Printf back to buffering.
func SetOutputSink(w io.Writer) {
	outputSink = w
	if w != nil {
		io.Copy(w, &earlyPrintBuffer)
	}
}

// GetOutputSink returns the currently installed output sink or nil when
// output is still being buffered.
func GetOutputSink() io.Writer {
	return outputSink
}

// Printf formats its arguments and writes them to the installed output sink.
// If no sink has been installed yet, the output lands in a ring buffer which
// gets replayed once a sink appears.
//
// Printf supports a subset of the fmt verbs: %s (string or byte slice), %c
// (byte or rune), %d, %x and %o (all built-in integer types), %t (bool) and
// %%. An optional decimal width before the verb left-pads the value: spaces
// for %s and %d, zeroes for %x and %o.
func Printf(format string, args ...interface{}) {
	Fprintf(outputSink, format, args...)
}

// Fprintf behaves exactly like Printf but writes the formatted output to w.
// A nil writer targets the early print buffer.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	var (
		argIndex int
		padLen   int
		i        int
		fmtLen   = len(format)
	)

	for i < fmtLen {
		ch := format[i]
		if ch != '%' {
			writeByte(w, ch)
			i++
			continue
		}

		// Scan the optional width and the verb.
		i++
		padLen = 0
		verbFound := false
	verbScan:
		for ; i < fmtLen; i++ {
			ch = format[i]
			switch {
			case ch == '%':
				writeByte(w, '%')
				verbFound = true
				break verbScan
			case ch >= '0' && ch <= '9':
				padLen = padLen*10 + int(ch-'0')
			case ch == 'd' || ch == 'x' || ch == 'o' || ch == 's' || ch == 'c' || ch == 't':
				verbFound = true
				if argIndex >= len(args) {
					write(w, errMissingArg)
					break verbScan
				}

				arg := args[argIndex]
				argIndex++

				switch ch {
				case 'd':
					fmtInt(w, arg, 10, padLen)
				case 'x':
					fmtInt(w, arg, 16, padLen)
				case 'o':
					fmtInt(w, arg, 8, padLen)
				case 's':
					fmtString(w, arg, padLen)
				case 'c':
					fmtChar(w, arg)
				case 't':
					fmtBool(w, arg)
				}
				break verbScan
			default:
				write(w, errNoVerb)
				verbFound = true
				break verbScan
			}
		}

		// A '%' with no verb before the end of the format string.
		if !verbFound {
			write(w, errNoVerb)
		}
		i++
	}

	for ; argIndex < len(args); argIndex++ {
		write(w, errExtraArg)
	}
}

// fmtBool writes "true" or "false".
func fmtBool(w io.Writer, v interface{}) {
	b, ok := v.(bool)
	if !ok {
		write(w, errWrongArgType)
		return
	}

	if b {
		write(w, trueValue)
	} else {
		write(w, falseValue)
	}
}

// fmtChar writes a single character argument.
func fmtChar(w io.Writer, v interface{}) {
	switch ch := v.(type) {
	case byte:
		writeByte(w, ch)
	case rune:
		if ch < 0x80 {
			writeByte(w, byte(ch))
		} else {
			writeByte(w, '?')
		}
	default:
		write(w, errWrongArgType)
	}
}

// fmtString writes a string or byte slice argument, left-padding it with
// spaces up to padLen.
func fmtString(w io.Writer, v interface{}, padLen int) {
	switch val := v.(type) {
	case string:
		for i := len(val); i < padLen; i++ {
			writeByte(w, ' ')
		}
		for i := 0; i < len(val); i++ {
			writeByte(w, val[i])
		}
	case []byte:
		for i := len(val); i < padLen; i++ {
			writeByte(w, ' ')
		}
		write(w, val)
	default:
		write(w, errWrongArgType)
	}
}

// fmtInt writes an integer argument in the requested base, left-padding with
// spaces (base 10) or zeroes (bases 8 and 16) up to padLen.
func fmtInt(w io.Writer, v interface{}, base, padLen int) {
	var (
		uval     uint64
		negative bool
	)

	switch val := v.(type) {
	case uint8:
		uval = uint64(val)
	case uint16:
		uval = uint64(val)
	case uint32:
		uval = uint64(val)
	case uint64:
		uval = val
	case uint:
		uval = uint64(val)
	case uintptr:
		uval = uint64(val)
	case int8:
		uval, negative = absInt(int64(val))
	case int16:
		uval, negative = absInt(int64(val))
	case int32:
		uval, negative = absInt(int64(val))
	case int64:
		uval, negative = absInt(val)
	case int:
		uval, negative = absInt(int64(val))
	default:
		write(w, errWrongArgType)
		return
	}

	padCh := byte(' ')
	if base != 10 {
		padCh = '0'
	}

	if padLen >= maxNumBuf {
		padLen = maxNumBuf - 1
	}

	// Emit digits right to left into the scratch buffer.
	pos := maxNumBuf
	for {
		pos--
		digit := byte(uval % uint64(base))
		if digit < 10 {
			numBuf[pos] = '0' + digit
		} else {
			numBuf[pos] = 'a' + digit - 10
		}

		uval /= uint64(base)
		if uval == 0 {
			break
		}
	}

	if padCh == '0' {
		// Zero padding goes between the sign and the digits.
		width := padLen
		if negative {
			width--
		}
		for maxNumBuf-pos < width && pos > 0 {
			pos--
			numBuf[pos] = '0'
		}
		if negative {
			pos--
			numBuf[pos] = '-'
		}
	} else {
		// Space padding goes outside the sign.
		if negative {
			pos--
			numBuf[pos] = '-'
		}
		for maxNumBuf-pos < padLen && pos > 0 {
			pos--
			numBuf[pos] = ' '
		}
	}

	write(w, numBuf[pos:])
}

// absInt splits a signed value into its magnitude and sign.
func absInt(v int64) (uint64, bool) {
	if v < 0 {
		return uint64(-v), true
	}
	return uint64(v), false
}

func writeByte(w io.Writer, b byte) {
	singleByte[0] = b
	write(w, singleByte)
}

func write(w io.Writer, p []byte) {
	if w == nil {
		earlyPrintBuffer.Write(p)
		return
	}
	w.Write(p)
}

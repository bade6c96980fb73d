// Package textenc normalizes message bodies to valid UTF-8 before they are
// fed to the regex-based classification layer, which requires well-formed
// input. Charsets are detected where possible and transcoded; undecodable
// bytes degrade to the replacement character rather than failing.
package textenc

import (
	"strings"
	"unicode/utf8"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// encodingsByName maps detector charset names to decoders.
var encodingsByName = map[string]encoding.Encoding{
	"windows-1252": charmap.Windows1252,
	"ISO-8859-1":   charmap.ISO8859_1,
	"ISO-8859-2":   charmap.ISO8859_2,
	"ISO-8859-15":  charmap.ISO8859_15,
	"KOI8-R":       charmap.KOI8R,
	"Shift_JIS":    japanese.ShiftJIS,
	"EUC-JP":       japanese.EUCJP,
	"ISO-2022-JP":  japanese.ISO2022JP,
	"EUC-KR":       korean.EUCKR,
	"GB18030":      simplifiedchinese.GB18030,
	"GB2312":       simplifiedchinese.GBK,
	"Big5":         traditionalchinese.Big5,
}

// fallbackEncodings are tried in order of likelihood for email content when
// detection is inconclusive. Single-byte Western encodings first.
var fallbackEncodings = []encoding.Encoding{
	charmap.Windows1252,
	charmap.ISO8859_1,
	charmap.ISO8859_15,
	japanese.ShiftJIS,
	japanese.EUCJP,
	korean.EUCKR,
	simplifiedchinese.GBK,
	traditionalchinese.Big5,
}

// EnsureUTF8 returns s as valid UTF-8. Already-valid strings are returned
// unchanged; otherwise the charset is detected and the bytes transcoded,
// falling back to replacement characters for bytes nothing can decode.
func EnsureUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	data := []byte(s)

	// Detection confidence is unreliable on short samples.
	minConfidence := 30
	if len(data) > 50 {
		minConfidence = 50
	}
	detector := chardet.NewTextDetector()
	if result, err := detector.DetectBest(data); err == nil && result.Confidence >= minConfidence {
		if enc, ok := encodingsByName[result.Charset]; ok {
			if decoded, err := enc.NewDecoder().Bytes(data); err == nil && utf8.Valid(decoded) {
				return string(decoded)
			}
		}
	}

	for _, enc := range fallbackEncodings {
		if decoded, err := enc.NewDecoder().Bytes(data); err == nil && utf8.Valid(decoded) {
			return string(decoded)
		}
	}

	return Sanitize(s)
}

// Sanitize replaces invalid UTF-8 bytes with the replacement character.
func Sanitize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune('�')
			i++
			continue
		}
		sb.WriteRune(r)
		i += size
	}
	return sb.String()
}

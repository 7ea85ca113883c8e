package lightspec

import (
	"fmt"
	"io"
	"log"
	"strings"
)

const (
	minParams     = 10
	ballastTokens = 3
	tiltNone      = "NONE"
)

// field positions within PhotometricRecord.Params
const (
	ParamLamps = iota
	ParamLumensPerLamp
	ParamCandelaMultiplier
	ParamVerticalCount
	ParamHorizontalCount
	ParamPhotometricType
	ParamUnitsType
	ParamWidth
	ParamLength
	ParamHeight
	ParamBallastFactor
	ParamBallastLampFactor
	ParamInputWatts
)

// ParseOptions represents the parsing options passed to ParseIES
type ParseOptions struct {
	// ErrorOnNonMonotonicAngles determines whether vertical or horizontal angles that
	// decrease cause a parse error
	//
	// defaults to false - a warning is logged (if there is a Logger) and parsing continues
	ErrorOnNonMonotonicAngles bool
	// AssumeBallastLine determines whether a 3 value line following the photometric line is
	// read as the ballast line (ballast factor, ballast-lamp factor, input watts)
	//
	// files whose first header line is "IESNA:LM-63-..." or "IESNA91" always have one - set this
	// for unversioned (LM-63-1986) files that carry it too
	AssumeBallastLine bool
	// Logger receives parse warnings (nil means warnings are discarded)
	Logger *log.Logger
}

// PhotometricRecord represents the contents of an IES LM-63 file
type PhotometricRecord struct {
	// Header is the trimmed header lines preceding the TILT line
	Header []string
	// Tilt is the TILT value (always "NONE" for parsed records)
	Tilt string
	// Params is the photometric scalars - see ParamLamps etc. for positions
	Params []Param
	// VerticalAngles in degrees
	VerticalAngles []float64
	// HorizontalAngles in degrees
	HorizontalAngles []float64
	// Candela is the intensity matrix, indexed [horizontal][vertical]
	Candela [][]float64
}

// ReadIES reads and parses IES data from the supplied reader
func ReadIES(r io.Reader, options *ParseOptions) (*PhotometricRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read IES data: %w", err)
	}
	return ParseIES(string(data), options)
}

// ParseIES parses the full text of an IES file
//
// if the ParseOptions supplied is nil, default options are used
func ParseIES(text string, options *ParseOptions) (*PhotometricRecord, error) {
	if options == nil {
		options = &ParseOptions{}
	}
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	tiltAt := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "TILT") {
			tiltAt = i
			break
		}
	}
	if tiltAt < 0 {
		return nil, fmt.Errorf("%w: no TILT line found", ErrMalformedHeader)
	}
	tilt := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(lines[tiltAt], "TILT"), "="))
	if !strings.EqualFold(tilt, tiltNone) {
		return nil, fmt.Errorf("%w: TILT=%s (only TILT=NONE is supported)", ErrUnsupportedTilt, tilt)
	}
	result := &PhotometricRecord{
		Header: append([]string{}, lines[:tiltAt]...),
		Tilt:   tiltNone,
	}
	data := make([][]string, 0, len(lines)-tiltAt)
	for _, line := range lines[tiltAt+1:] {
		if fields := strings.Fields(line); len(fields) > 0 {
			data = append(data, fields)
		}
	}
	params, rest, err := parseParams(data)
	if err != nil {
		return nil, err
	}
	nVert, nHorz, err := angleCounts(params)
	if err != nil {
		return nil, err
	}
	var tokens []string
	for _, fields := range rest {
		tokens = append(tokens, fields...)
	}
	if nVert > len(tokens) || nHorz > len(tokens) {
		return nil, fmt.Errorf("%w: %d vertical and %d horizontal angles declared, only %d values present",
			ErrAngleCountMismatch, nVert, nHorz, len(tokens))
	}
	needed := nVert + nHorz + nVert*nHorz
	hasBallast := options.AssumeBallastLine || versioned(result.Header)
	if hasBallast && len(data[0]) >= minParams && len(rest) > 0 && len(rest[0]) == ballastTokens && len(tokens) >= needed+ballastTokens {
		for _, token := range rest[0] {
			p, err := parseParam(token)
			if err != nil {
				return nil, fmt.Errorf("ballast line: %w", err)
			}
			params = append(params, p)
		}
		tokens = tokens[ballastTokens:]
	}
	result.Params = params
	if len(tokens) < needed {
		return nil, fmt.Errorf("%w: expected %d angle and candela values (%d vertical, %d horizontal), got %d",
			ErrAngleCountMismatch, needed, nVert, nHorz, len(tokens))
	}
	if result.VerticalAngles, err = parseFloats(tokens[:nVert], "vertical angle"); err != nil {
		return nil, err
	}
	tokens = tokens[nVert:]
	if result.HorizontalAngles, err = parseFloats(tokens[:nHorz], "horizontal angle"); err != nil {
		return nil, err
	}
	tokens = tokens[nHorz:]
	result.Candela = make([][]float64, nHorz)
	for h := range result.Candela {
		if result.Candela[h], err = parseFloats(tokens[h*nVert:(h+1)*nVert], "candela value"); err != nil {
			return nil, err
		}
	}
	if err = checkAscending(result.VerticalAngles, "vertical", options); err != nil {
		return nil, err
	}
	if err = checkAscending(result.HorizontalAngles, "horizontal", options); err != nil {
		return nil, err
	}
	return result, nil
}

var versionPrefixes = []string{"IESNA:LM-63-", "IESNA91"}

func versioned(header []string) bool {
	if len(header) == 0 {
		return false
	}
	for _, prefix := range versionPrefixes {
		if strings.HasPrefix(strings.ToUpper(header[0]), prefix) {
			return true
		}
	}
	return false
}

// parseParams reads the photometric line - when the first data line is short, the
// second line is joined onto it
func parseParams(data [][]string) ([]Param, [][]string, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: missing after TILT line", ErrMalformedPhotometricLine)
	}
	tokens := data[0]
	rest := data[1:]
	if len(tokens) < minParams && len(rest) > 0 {
		tokens = append(append([]string{}, tokens...), rest[0]...)
		rest = rest[1:]
	}
	if len(tokens) < minParams {
		return nil, nil, fmt.Errorf("%w: expected at least %d values, got %d", ErrMalformedPhotometricLine, minParams, len(tokens))
	}
	params := make([]Param, len(tokens))
	for i, token := range tokens {
		p, err := parseParam(token)
		if err != nil {
			return nil, nil, fmt.Errorf("photometric line: %w", err)
		}
		params[i] = p
	}
	return params, rest, nil
}

func angleCounts(params []Param) (nVert int, nHorz int, err error) {
	var ok bool
	if nVert, ok = params[ParamVerticalCount].Whole(); !ok || nVert < 2 {
		return 0, 0, fmt.Errorf("%w: invalid number of vertical angles %s", ErrMalformedPhotometricLine, params[ParamVerticalCount])
	}
	if nHorz, ok = params[ParamHorizontalCount].Whole(); !ok || nHorz < 1 {
		return 0, 0, fmt.Errorf("%w: invalid number of horizontal angles %s", ErrMalformedPhotometricLine, params[ParamHorizontalCount])
	}
	return nVert, nHorz, nil
}

func parseFloats(tokens []string, what string) ([]float64, error) {
	result := make([]float64, len(tokens))
	for i, token := range tokens {
		f, err := parseFloat(token)
		if err != nil {
			return nil, fmt.Errorf("%s #%d: %w", what, i+1, err)
		}
		result[i] = f
	}
	return result, nil
}

func checkAscending(angles []float64, axis string, options *ParseOptions) error {
	for i := 1; i < len(angles); i++ {
		if angles[i] < angles[i-1] {
			if options.ErrorOnNonMonotonicAngles {
				return fmt.Errorf("%w: %s angle #%d (%g) is less than #%d (%g)", ErrAngleOrder, axis, i+1, angles[i], i, angles[i-1])
			}
			warnf(options.Logger, "%s angles not in ascending order at #%d (%g < %g)", axis, i+1, angles[i], angles[i-1])
			return nil
		}
	}
	return nil
}

func warnf(logger *log.Logger, format string, args ...any) {
	if logger != nil {
		logger.Printf("[WARN] "+format, args...)
	}
}

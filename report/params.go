package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/frfinder/finder"
)

// Parameter file keys.
const (
	KeyRun      = "run"
	KeyGraph    = "graph"
	KeyAlpha    = "alpha"
	KeyKappa    = "kappa"
	KeyMinSup   = "minSup"
	KeyMaxSup   = "maxSup"
	KeyMinSize  = "minSize"
	KeyMinLen   = "minLen"
	KeyCaseCtrl = "caseCtrl"
	KeyUseRC    = "useRC"
)

// ErrBadParams indicates a parameter file that cannot be turned into a run.
var ErrBadParams = errors.New("report: malformed parameter file")

// RunInfo identifies one search run and the parameters it used.
type RunInfo struct {
	RunID  string
	Graph  string // graph source, informational
	Params finder.Params
}

// NewRunInfo returns RunInfo with a fresh random run ID.
func NewRunInfo(graph string, params finder.Params) RunInfo {
	return RunInfo{RunID: uuid.NewString(), Graph: graph, Params: params}
}

// WriteParams writes info as "key\tvalue" lines.
func WriteParams(w io.Writer, info RunInfo) error {
	p := info.Params
	lines := [][2]string{
		{KeyRun, info.RunID},
		{KeyGraph, info.Graph},
		{KeyAlpha, strconv.FormatFloat(p.Alpha, 'g', -1, 64)},
		{KeyKappa, strconv.Itoa(p.Kappa)},
		{KeyMinSup, strconv.Itoa(p.MinSup)},
		{KeyMaxSup, strconv.Itoa(p.MaxSup)},
		{KeyMinSize, strconv.Itoa(p.MinSize)},
		{KeyMinLen, strconv.Itoa(p.MinLen)},
		{KeyCaseCtrl, strconv.FormatBool(p.CaseCtrl)},
		{KeyUseRC, strconv.FormatBool(p.UseRC)},
	}
	bw := bufio.NewWriter(w)
	for _, kv := range lines {
		if _, err := fmt.Fprintf(bw, "%s%s%s\n", kv[0], sep, kv[1]); err != nil {
			return fmt.Errorf("WriteParams: %w", err)
		}
	}

	return bw.Flush()
}

// ReadParams parses a parameter file written by WriteParams.
//
// Behavior highlights:
//   - Keys missing from the file keep finder.DefaultParams values, except
//     alpha and kappa which are required.
//   - The result is validated with finder.Params.Validate.
//
// Errors:
//   - *ParseError wrapping ErrBadParams for unknown keys or bad values.
//   - ErrBadParams when alpha or kappa is missing.
//   - finder.ErrInvalidParams when the values fail validation.
func ReadParams(r io.Reader) (RunInfo, error) {
	info := RunInfo{Params: finder.DefaultParams(0, 0)}
	seen := make(map[string]bool)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, sep)
		if !ok {
			return RunInfo{}, &ParseError{Line: lineNo, Text: line, Err: fmt.Errorf("no tab: %w", ErrBadParams)}
		}
		if err := setParam(&info, key, value); err != nil {
			return RunInfo{}, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		seen[key] = true
	}
	if err := sc.Err(); err != nil {
		return RunInfo{}, fmt.Errorf("ReadParams: %w", err)
	}
	for _, k := range []string{KeyAlpha, KeyKappa} {
		if !seen[k] {
			return RunInfo{}, fmt.Errorf("ReadParams: %s missing: %w", k, ErrBadParams)
		}
	}
	if err := info.Params.Validate(); err != nil {
		return RunInfo{}, fmt.Errorf("ReadParams: %w", err)
	}

	return info, nil
}

func setParam(info *RunInfo, key, value string) error {
	p := &info.Params
	var err error
	switch key {
	case KeyRun:
		info.RunID = value
	case KeyGraph:
		info.Graph = value
	case KeyAlpha:
		p.Alpha, err = strconv.ParseFloat(value, 64)
	case KeyKappa:
		p.Kappa, err = strconv.Atoi(value)
	case KeyMinSup:
		p.MinSup, err = strconv.Atoi(value)
	case KeyMaxSup:
		p.MaxSup, err = strconv.Atoi(value)
	case KeyMinSize:
		p.MinSize, err = strconv.Atoi(value)
	case KeyMinLen:
		p.MinLen, err = strconv.Atoi(value)
	case KeyCaseCtrl:
		p.CaseCtrl, err = strconv.ParseBool(value)
	case KeyUseRC:
		p.UseRC, err = strconv.ParseBool(value)
	default:
		return fmt.Errorf("unknown key %q: %w", key, ErrBadParams)
	}
	if err != nil {
		return fmt.Errorf("%s: %w: %w", key, ErrBadParams, err)
	}

	return nil
}
